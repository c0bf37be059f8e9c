package review

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"driftlint/internal/analyzer"
	"driftlint/internal/config"
	"driftlint/internal/tokensource"
	"driftlint/internal/types"
)

// Report is the aggregate outcome of a batch review, written to
// diff_result.json.
type Report struct {
	Metadata   Metadata                   `json:"metadata"`
	Components map[string]ComponentReport `json:"components"`
}

// Metadata summarizes a batch review run.
type Metadata struct {
	Timestamp       time.Time     `json:"timestamp"`
	TotalComponents int           `json:"totalComponents"`
	TotalIssues     int           `json:"totalIssues"`
	Summary         types.Summary `json:"summary"`
}

// ComponentReport is the per-component slice of the report.
type ComponentReport struct {
	Status types.Status  `json:"status"`
	Issues []types.Issue `json:"issues"`
}

// ParsedValuesReport carries the resolved property maps for every reviewed
// component, written to parsed_values.json.
type ParsedValuesReport struct {
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentValues `json:"components"`
}

// ComponentValues holds both sides of one component's resolved properties.
type ComponentValues struct {
	Reference      ReferenceValues      `json:"figma"`
	Implementation ImplementationValues `json:"pr"`
}

// ReferenceValues is the design-spec side of ComponentValues.
type ReferenceValues struct {
	Component string            `json:"component"`
	Variant   string            `json:"variant,omitempty"`
	Props     types.PropertyMap `json:"props"`
}

// ImplementationValues is the markup side of ComponentValues.
type ImplementationValues struct {
	Component      string            `json:"component"`
	ExtractedProps types.PropertyMap `json:"extractedProps"`
}

// Runner drives a sequential batch review over the configured components.
type Runner struct {
	log      *zap.Logger
	cfg      *config.Config
	analyzer *analyzer.Analyzer
}

// NewRunner creates a batch review runner.
func NewRunner(log *zap.Logger, cfg *config.Config) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		log:      log.Named("review"),
		cfg:      cfg,
		analyzer: analyzer.New(log),
	}
}

// Run reviews every configured component and writes parsed_values.json and
// diff_result.json to the output directory. Components whose fixtures fail
// to load or analyze are skipped; their errors are accumulated and returned
// alongside the report. A nil report means the run itself failed.
func (r *Runner) Run() (*Report, error) {
	tokenText, err := tokensource.Load(r.cfg.Tokens)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &Report{
		Metadata: Metadata{
			Timestamp:       now,
			TotalComponents: len(r.cfg.Components),
		},
		Components: make(map[string]ComponentReport),
	}
	parsed := &ParsedValuesReport{
		Timestamp:  now,
		Components: make(map[string]ComponentValues),
	}

	var skipped error
	for _, component := range r.cfg.Components {
		r.log.Info("reviewing component", zap.String("component", component))

		result, err := r.reviewComponent(component, tokenText)
		if err != nil {
			r.log.Warn("skipping component",
				zap.String("component", component),
				zap.Error(err))
			skipped = multierr.Append(skipped, fmt.Errorf("%s: %w", component, err))
			continue
		}

		report.Metadata.TotalIssues += result.Component.TotalIssues
		report.Metadata.Summary.Major += result.Summary.Major
		report.Metadata.Summary.Minor += result.Summary.Minor
		report.Metadata.Summary.Warnings += result.Summary.Warnings
		report.Components[component] = ComponentReport{
			Status: result.Component.Status,
			Issues: result.Component.Issues,
		}
		parsed.Components[component] = ComponentValues{
			Reference: ReferenceValues{
				Component: result.Component.Name,
				Variant:   result.Component.Variant,
				Props:     result.ParsedValues.Reference,
			},
			Implementation: ImplementationValues{
				Component:      result.Component.Name,
				ExtractedProps: result.ParsedValues.Implementation,
			},
		}
	}

	if err := r.writeOutputs(parsed, report); err != nil {
		return nil, err
	}

	return report, skipped
}

// reviewComponent loads one component's fixtures and runs the analyzer.
func (r *Runner) reviewComponent(component, tokenText string) (*types.AnalysisResult, error) {
	specPath := filepath.Join(r.cfg.DataDir, fmt.Sprintf("figma_%s.json", component))
	specData, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference spec: %w", err)
	}

	markupPath := filepath.Join(r.cfg.DataDir, fmt.Sprintf("pr_%s.jsx", component))
	markupData, err := os.ReadFile(markupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read implementation markup: %w", err)
	}

	return r.analyzer.Analyze(analyzer.Request{
		ReferenceSpec: string(specData),
		Tokens:        tokenText,
		Markup:        string(markupData),
		ComponentName: component,
	})
}

// writeOutputs writes the two result files to the output directory.
func (r *Runner) writeOutputs(parsed *ParsedValuesReport, report *Report) error {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(r.cfg.OutputDir, "parsed_values.json"), parsed); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(r.cfg.OutputDir, "diff_result.json"), report); err != nil {
		return err
	}

	r.log.Info("results written", zap.String("dir", r.cfg.OutputDir))
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
