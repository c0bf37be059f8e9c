package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"driftlint/internal/config"
	"driftlint/internal/review"
	"driftlint/internal/server"
	"driftlint/internal/types"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driftlint",
		Short: "Design-spec drift analyzer for component implementations",
		Long: `driftlint compares design-tool component specs against their JSX
implementations and reports drift: missing properties, mismatched design
tokens, numeric value differences and accessibility omissions.`,
		RunE: runReview,
	}

	cmd.Flags().StringP("config", "c", "", "Path to configuration file (optional)")
	cmd.Flags().StringP("data", "d", "", "Override data directory")
	cmd.Flags().StringP("out", "o", "", "Override output directory")
	cmd.Flags().StringP("tokens", "t", "", "Override token dictionary path or URL")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newServeCommand())

	return cmd
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			verbose, _ := cmd.Flags().GetBool("verbose")

			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return server.New(log).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringP("addr", "a", ":5000", "Listen address")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data")
	outDir, _ := cmd.Flags().GetString("out")
	tokenSource, _ := cmd.Flags().GetString("tokens")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if tokenSource != "" {
		cfg.Tokens = tokenSource
	}

	report, err := review.NewRunner(log, cfg).Run()
	if report == nil {
		return err
	}
	if err != nil {
		log.Warn("some components were skipped", zap.Error(err))
	}

	// Print results
	components := make([]string, 0, len(report.Components))
	for component := range report.Components {
		components = append(components, component)
	}
	sort.Strings(components)

	for _, component := range components {
		for _, issue := range report.Components[component].Issues {
			// Skip minor issues if not verbose
			if !verbose && issue.Severity == types.SeverityMinor {
				continue
			}
			if severityRank(issue.Severity) < severityRank(types.Severity(cfg.MinSeverity)) {
				continue
			}
			fmt.Printf("[%s] %s/%s: %s\n", issue.Severity, component, issue.Property, issue.Recommendation)
		}
	}

	fmt.Printf("Total issues: %d (major: %d, minor: %d, warnings: %d)\n",
		report.Metadata.TotalIssues,
		report.Metadata.Summary.Major,
		report.Metadata.Summary.Minor,
		report.Metadata.Summary.Warnings)

	return nil
}

// severityRank orders severities for the minSeverity display filter.
// Unknown (including unset) ranks lowest so nothing is filtered by default.
func severityRank(s types.Severity) int {
	switch s {
	case types.SeverityMajor:
		return 2
	case types.SeverityMinor:
		return 1
	default:
		return 0
	}
}

// newLogger builds the process logger; verbose switches to debug level
// development output.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
