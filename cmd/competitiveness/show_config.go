package main

import (
	"fmt"
	"os"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the effective scoring policy",
	Long:  "Prints the scoring policy that evaluate would use, either the built-in default or a validated policy file, as YAML or JSON.",
	RunE:  runShowConfig,
}

var (
	showPolicy string
	showFormat string
)

func init() {
	showConfigCmd.Flags().StringVarP(&showPolicy, "policy", "c", "", "Path to scoring policy (YAML or JSON); defaults to the built-in policy")
	showConfigCmd.Flags().StringVar(&showFormat, "format", "yaml", "Output format: yaml or json")

	rootCmd.AddCommand(showConfigCmd)
}

func runShowConfig(_ *cobra.Command, _ []string) error {
	if showFormat != "yaml" && showFormat != "json" {
		return fmt.Errorf("invalid --format %q: expected yaml or json", showFormat)
	}

	policy, err := loadPolicy(showPolicy)
	if err != nil {
		return err
	}

	out, err := config.MarshalCompetitiveness(policy, showFormat)
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}

	_, _ = os.Stdout.Write(out)
	return nil
}
