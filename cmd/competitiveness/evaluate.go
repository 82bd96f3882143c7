package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/observability"
	"github.com/jonathan/competitiveness/internal/profile"
	"github.com/jonathan/competitiveness/internal/schemas"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a single candidate profile",
	Long:  "Loads a profile JSON file, scores it against the competitiveness policy, prints a summary and optionally writes the full report as JSON.",
	RunE:  runEvaluate,
}

var (
	evalProfile  string
	evalPolicy   string
	evalAsOf     string
	evalOut      string
	evalStrategy string
	evalStages   bool
	evalVerbose  bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evalProfile, "profile", "p", "", "Path to profile JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evalPolicy, "policy", "c", "", "Path to scoring policy (YAML or JSON); defaults to the built-in policy")
	evaluateCmd.Flags().StringVar(&evalAsOf, "as-of", "", "Evaluation month (YYYY-MM); defaults to the current month")
	evaluateCmd.Flags().StringVarP(&evalOut, "out", "o", "", "Path to write the JSON report")
	evaluateCmd.Flags().StringVar(&evalStrategy, "strategy", "", "Overall tier reducer to display: majority, weighted or both")
	evaluateCmd.Flags().BoolVar(&evalStages, "stages", false, "Include readiness stages")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	settings, err := resolveSettings(config.Config{
		Profile:  evalProfile,
		Policy:   evalPolicy,
		AsOf:     evalAsOf,
		Out:      evalOut,
		Strategy: evalStrategy,
		Stages:   evalStages,
		Verbose:  evalVerbose,
	})
	if err != nil {
		return err
	}
	if settings.Profile == "" {
		return fmt.Errorf("required flag \"profile\" not set")
	}

	asOf, err := parseAsOf(settings.AsOf)
	if err != nil {
		return err
	}
	policy, err := loadPolicy(settings.Policy)
	if err != nil {
		return err
	}
	if settings.Verbose {
		log.Printf("evaluating %s with policy %s (%s) as of %s", settings.Profile, policy.Name, policy.Version, asOf.Format("2006-01"))
	}

	warnIfSchemaInvalid(schemas.ProfileSchema, settings.Profile)

	p, err := profile.LoadProfile(settings.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	report := buildReport(settings.Profile, p, policy, asOf, settings.Stages)
	if settings.Verbose {
		log.Printf("report %s: total=%.1f level=%q triggered=%v", report.ID, report.Result.Total, report.Result.Level, scoring.Triggered(scoring.NewFacts(p, asOf), policy))
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintEvaluation(report.Result, policy)
	printer.PrintStages(report.Stages)
	printer.PrintGaps(scoring.Gaps(report.Result))
	printer.PrintQualitative(report.Qualitative, settings.Strategy)

	if settings.Out == "" {
		return nil
	}
	if err := checkReport(report); err != nil {
		return err
	}
	if err := writeJSON(settings.Out, report); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", settings.Out)
	return nil
}
