package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var evaluateBatchCmd = &cobra.Command{
	Use:   "evaluate-batch",
	Short: "Score every profile in a directory",
	Long:  "Evaluates every *.json profile in a directory concurrently and writes the reports as a JSON array sorted by file name.",
	RunE:  runEvaluateBatch,
}

var (
	batchDir         string
	batchPolicy      string
	batchAsOf        string
	batchOut         string
	batchConcurrency int
	batchStages      bool
	batchVerbose     bool
)

func init() {
	evaluateBatchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of profile JSON files (required)")
	evaluateBatchCmd.Flags().StringVarP(&batchPolicy, "policy", "c", "", "Path to scoring policy (YAML or JSON); defaults to the built-in policy")
	evaluateBatchCmd.Flags().StringVar(&batchAsOf, "as-of", "", "Evaluation month (YYYY-MM); defaults to the current month")
	evaluateBatchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Path to write the JSON reports (default stdout)")
	evaluateBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum profiles evaluated at once (default 4)")
	evaluateBatchCmd.Flags().BoolVar(&batchStages, "stages", false, "Include readiness stages")
	evaluateBatchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(evaluateBatchCmd)
}

func runEvaluateBatch(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(config.Config{
		ProfileDir:  batchDir,
		Policy:      batchPolicy,
		AsOf:        batchAsOf,
		Out:         batchOut,
		Concurrency: batchConcurrency,
		Stages:      batchStages,
		Verbose:     batchVerbose,
	})
	if err != nil {
		return err
	}
	if settings.ProfileDir == "" {
		return fmt.Errorf("required flag \"dir\" not set")
	}

	asOf, err := parseAsOf(settings.AsOf)
	if err != nil {
		return err
	}
	policy, err := loadPolicy(settings.Policy)
	if err != nil {
		return err
	}

	paths, err := profile.ListProfiles(settings.ProfileDir)
	if err != nil {
		return err
	}
	if settings.Verbose {
		log.Printf("evaluating %d profiles from %s with concurrency %d", len(paths), settings.ProfileDir, settings.Concurrency)
	}

	reports, err := evaluateBatch(cmd.Context(), paths, policy, asOf, settings.Concurrency, settings.Stages)
	if err != nil {
		return err
	}

	if settings.Out == "" {
		return printJSON(reports)
	}
	if err := writeJSON(settings.Out, reports); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Evaluated %d profiles\n", len(reports))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", settings.Out)
	return nil
}

// evaluateBatch loads and scores paths with at most limit workers. Reports keep
// the order of paths; the first failure cancels the remaining work.
func evaluateBatch(ctx context.Context, paths []string, policy *config.Competitiveness, asOf time.Time, limit int, withStages bool) ([]Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := profile.LoadProfile(path)
			if err != nil {
				return fmt.Errorf("failed to load profile %s: %w", filepath.Base(path), err)
			}
			reports[i] = buildReport(filepath.Base(path), p, policy, asOf, withStages)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
