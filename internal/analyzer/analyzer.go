package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"driftlint/internal/compare"
	"driftlint/internal/markup"
	"driftlint/internal/schema"
	"driftlint/internal/tokens"
	"driftlint/internal/types"
)

// Request carries the three raw inputs of one analysis plus an optional
// component name used when the reference spec does not name itself.
type Request struct {
	ReferenceSpec string
	Tokens        string
	Markup        string
	ComponentName string
}

// Analyzer runs the extraction, resolution and comparison pipeline.
// It is stateless across invocations and safe for concurrent use.
type Analyzer struct {
	log       *zap.Logger
	extractor *markup.Extractor
}

// New creates an analyzer.
func New(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		log:       log.Named("analyzer"),
		extractor: markup.NewExtractor(log),
	}
}

// Analyze validates the inputs and runs one full analysis. Errors are one
// of *EmptyInputError, *MalformedInputError or *UnexpectedError; panics in
// the pipeline are recovered into the latter.
func (a *Analyzer) Analyze(req Request) (result *types.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UnexpectedError{Err: fmt.Errorf("%v", r)}
			a.log.Error("analysis panicked", zap.Any("cause", r))
		}
	}()

	refText := strings.TrimSpace(req.ReferenceSpec)
	tokenText := strings.TrimSpace(req.Tokens)
	markupText := strings.TrimSpace(req.Markup)

	if refText == "" {
		return nil, &EmptyInputError{Field: "reference spec"}
	}
	if tokenText == "" {
		return nil, &EmptyInputError{Field: "token dictionary"}
	}
	if markupText == "" {
		return nil, &EmptyInputError{Field: "markup"}
	}

	spec, err := schema.ValidateReferenceSpec([]byte(refText))
	if err != nil {
		return nil, &MalformedInputError{Field: "reference spec", Err: err}
	}
	dict, err := schema.ValidateTokens([]byte(tokenText))
	if err != nil {
		return nil, &MalformedInputError{Field: "token dictionary", Err: err}
	}

	implProps := a.extractor.Extract(markupText)
	implResolved := tokens.Resolve(implProps, dict)
	refResolved := tokens.ResolveRaw(harmonize(spec.Props), dict)

	issues := compare.Compare(refResolved, implResolved)

	name := spec.Component
	if name == "" {
		name = req.ComponentName
	}
	if name == "" {
		name = "component"
	}

	status := types.StatusPerfectMatch
	if len(issues) > 0 {
		status = types.StatusIssuesFound
	}

	a.log.Debug("analysis complete",
		zap.String("component", name),
		zap.Int("issues", len(issues)))

	return &types.AnalysisResult{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Component: types.ComponentResult{
			Name:        name,
			Variant:     spec.Variant,
			Status:      status,
			TotalIssues: len(issues),
			Issues:      issues,
		},
		ParsedValues: types.ParsedValues{
			Reference:      refResolved,
			Implementation: implResolved,
		},
		Summary: types.NewSummary(issues),
	}, nil
}

// harmonize maps reference-spec keys through the same canonical name table
// the extractor applies, so both sides of the comparison align.
func harmonize(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[markup.CanonicalName(k)] = v
	}
	return out
}
