package types

import "time"

// Severity classifies how serious an issue is.
type Severity string

const (
	SeverityMajor   Severity = "MAJOR"
	SeverityMinor   Severity = "MINOR"
	SeverityWarning Severity = "WARNING"
)

// Category identifies the kind of discrepancy an issue reports.
type Category string

const (
	CategoryAccessibilityViolation   Category = "ACCESSIBILITY_VIOLATION"
	CategoryMissingProperty          Category = "MISSING_PROPERTY"
	CategoryTokenMismatch            Category = "TOKEN_MISMATCH"
	CategoryValueDifference          Category = "VALUE_DIFFERENCE"
	CategoryImplementationDifference Category = "IMPLEMENTATION_DIFFERENCE"
)

// Status is the per-component outcome of an analysis.
type Status string

const (
	StatusPerfectMatch Status = "PERFECT_MATCH"
	StatusIssuesFound  Status = "ISSUES_FOUND"
)

// PropertyValue is the normalized descriptor for a single property value.
// It replaces the raw scalar-or-object shapes coming from the design spec
// and the markup with one tagged type; unset fields are omitted from JSON.
type PropertyValue struct {
	Value      any    `json:"value,omitempty"`
	Token      string `json:"token,omitempty"`
	Normalized *int   `json:"normalized,omitempty"`
	Type       string `json:"type,omitempty"`
	Resolved   any    `json:"resolved,omitempty"`
}

// PropertyMap maps canonical property names to their descriptors.
type PropertyMap map[string]PropertyValue

// TokenDictionary maps design-token names to their concrete values
// (strings or numbers). Immutable for the duration of one analysis run.
type TokenDictionary map[string]any

// ReferenceSpec is the design-tool-exported source of truth for a component.
type ReferenceSpec struct {
	Component string         `json:"component,omitempty"`
	Variant   string         `json:"variant,omitempty"`
	Props     map[string]any `json:"props"`
}

// IssueSide cites one side (design or implementation) of an issue.
type IssueSide struct {
	Token    string `json:"token,omitempty"`
	Value    any    `json:"value,omitempty"`
	Resolved any    `json:"resolved,omitempty"`
	Missing  bool   `json:"missing,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// Issue is a single classified discrepancy between the design spec and
// the implementation.
type Issue struct {
	Severity       Severity  `json:"severity"`
	Property       string    `json:"property"`
	Reference      IssueSide `json:"figma"`
	Implementation IssueSide `json:"pr"`
	Recommendation string    `json:"recommendation"`
	Category       Category  `json:"category"`
}

// Summary aggregates issue counts by severity.
type Summary struct {
	Major    int `json:"major"`
	Minor    int `json:"minor"`
	Warnings int `json:"warnings"`
}

// NewSummary counts issues by severity. Anything that is neither MAJOR
// nor MINOR counts as a warning.
func NewSummary(issues []Issue) Summary {
	var s Summary
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityMajor:
			s.Major++
		case SeverityMinor:
			s.Minor++
		default:
			s.Warnings++
		}
	}
	return s
}

// ComponentResult is the per-component portion of an analysis result.
type ComponentResult struct {
	Name        string  `json:"name"`
	Variant     string  `json:"variant,omitempty"`
	Status      Status  `json:"status"`
	TotalIssues int     `json:"totalIssues"`
	Issues      []Issue `json:"issues"`
}

// ParsedValues carries the resolved property maps for both sides.
type ParsedValues struct {
	Reference      PropertyMap `json:"figma"`
	Implementation PropertyMap `json:"pr"`
}

// AnalysisResult is the complete outcome of one analysis invocation.
type AnalysisResult struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Component    ComponentResult `json:"component"`
	ParsedValues ParsedValues    `json:"parsedValues"`
	Summary      Summary         `json:"summary"`
}
