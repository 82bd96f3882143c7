// Package main provides the entry point for the competitiveness CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "competitiveness",
	Short: "Candidate competitiveness evaluator",
	Long:  "Scores candidate profiles against a competitiveness policy, maps each category to a readiness stage and produces a qualitative tier assessment.",
}

// configFile is the optional CLI config (JSON or YAML); flags win over its values.
var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to CLI config file (JSON or YAML)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
