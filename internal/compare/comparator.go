package compare

import (
	"fmt"
	"sort"
	"strings"

	"driftlint/internal/types"
)

// Compare walks the reference property map and emits at most one issue per
// reference key. The scan is reference-driven: implementation-only
// properties are never inspected. Keys are visited in sorted order so
// identical inputs always yield the same issue list.
func Compare(reference, implementation types.PropertyMap) []types.Issue {
	keys := make([]string, 0, len(reference))
	for k := range reference {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var issues []types.Issue
	for _, key := range keys {
		refVal := reference[key]
		implVal, present := implementation[key]
		if !present {
			if issue, ok := missingIssue(key, refVal); ok {
				issues = append(issues, issue)
			}
			continue
		}
		if issue, ok := presentIssue(key, refVal, implVal); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

// missingIssue decides what to report for a reference property absent from
// the implementation.
func missingIssue(key string, refVal types.PropertyValue) (types.Issue, bool) {
	// Hard-coded accessibility rule: a required alt marker missing from the
	// implementation is always a major violation.
	if key == "imageAltRequired" && refVal.Value == true {
		return types.Issue{
			Severity:       types.SeverityMajor,
			Property:       "alt",
			Reference:      types.IssueSide{Required: true},
			Implementation: types.IssueSide{Missing: true},
			Recommendation: "Add alt attribute for accessibility compliance",
			Category:       types.CategoryAccessibilityViolation,
		}, true
	}

	// Interaction-state properties are not required to be statically present.
	if strings.Contains(key, "hover") || strings.Contains(key, "focus") {
		return types.Issue{}, false
	}

	return types.Issue{
		Severity:       types.SeverityMinor,
		Property:       key,
		Reference:      types.IssueSide{Token: refVal.Token, Value: refVal.Value},
		Implementation: types.IssueSide{Missing: true},
		Recommendation: fmt.Sprintf("Add missing property: %s", key),
		Category:       types.CategoryMissingProperty,
	}, true
}

// presentIssue decides what to report when both sides carry the property.
func presentIssue(key string, refVal, implVal types.PropertyValue) (types.Issue, bool) {
	if refVal.Token != "" && implVal.Token != "" {
		if refVal.Token == implVal.Token {
			return types.Issue{}, false
		}
		return types.Issue{
			Severity:       types.SeverityMajor,
			Property:       key,
			Reference:      types.IssueSide{Token: refVal.Token, Value: refVal.Resolved},
			Implementation: types.IssueSide{Token: implVal.Token, Value: implVal.Resolved},
			Recommendation: fmt.Sprintf("Update implementation to use '%s' token instead of '%s'", refVal.Token, implVal.Token),
			Category:       types.CategoryTokenMismatch,
		}, true
	}

	if refVal.Normalized != nil && implVal.Normalized != nil {
		diff := *refVal.Normalized - *implVal.Normalized
		if diff < 0 {
			diff = -diff
		}
		if diff == 0 {
			return types.Issue{}, false
		}
		severity := types.SeverityMinor
		if diff > 2 {
			severity = types.SeverityMajor
		}
		return types.Issue{
			Severity:       severity,
			Property:       key,
			Reference:      types.IssueSide{Value: refVal.Value},
			Implementation: types.IssueSide{Value: implVal.Value},
			Recommendation: fmt.Sprintf("Consider using %v to match design spec (current: %v)", refVal.Value, implVal.Value),
			Category:       types.CategoryValueDifference,
		}, true
	}

	// Pill-shape equivalence: a 9999px radius and 50% render the same.
	if key == "borderRadius" && refVal.Value == "9999px" && implVal.Value == "50%" {
		return types.Issue{
			Severity:       types.SeverityMinor,
			Property:       key,
			Reference:      types.IssueSide{Value: refVal.Value},
			Implementation: types.IssueSide{Value: implVal.Value},
			Recommendation: "Different border-radius approach but same visual effect",
			Category:       types.CategoryImplementationDifference,
		}, true
	}

	// Two present plain values with no token and no normalized magnitude
	// have no comparison rule and are deliberately not reported.
	return types.Issue{}, false
}
