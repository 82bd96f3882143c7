package main

import (
	"fmt"
	"os"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/observability"
	"github.com/jonathan/competitiveness/internal/profile"
	"github.com/jonathan/competitiveness/internal/tiers"
	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the qualitative tier assessment of a profile",
	Long:  "Classifies each category of a profile as Exceptional, Competitive, Developing, Needs Improvement or Unknown, and reduces them to an overall tier by majority vote and/or weighted average.",
	RunE:  runTiers,
}

var (
	tiersProfile  string
	tiersPolicy   string
	tiersAsOf     string
	tiersStrategy string
	tiersOut      string
)

func init() {
	tiersCmd.Flags().StringVarP(&tiersProfile, "profile", "p", "", "Path to profile JSON file (required)")
	tiersCmd.Flags().StringVarP(&tiersPolicy, "policy", "c", "", "Path to scoring policy (YAML or JSON); supplies weights for the weighted reducer")
	tiersCmd.Flags().StringVar(&tiersAsOf, "as-of", "", "Evaluation month (YYYY-MM); defaults to the current month")
	tiersCmd.Flags().StringVar(&tiersStrategy, "strategy", "", "Overall reducer: majority, weighted or both (default both)")
	tiersCmd.Flags().StringVarP(&tiersOut, "out", "o", "", "Path to write the assessment as JSON")

	rootCmd.AddCommand(tiersCmd)
}

func runTiers(_ *cobra.Command, _ []string) error {
	settings, err := resolveSettings(config.Config{
		Profile:  tiersProfile,
		Policy:   tiersPolicy,
		AsOf:     tiersAsOf,
		Strategy: tiersStrategy,
		Out:      tiersOut,
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
	p, err := profile.LoadProfile(settings.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	assessment := tiers.Assess(p, policy, asOf)
	observability.NewPrinter(os.Stdout).PrintQualitative(assessment, settings.Strategy)

	if settings.Out != "" {
		return writeJSON(settings.Out, assessment)
	}
	return nil
}
