package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/jonathan/competitiveness/internal/schemas"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/tiers"
	"github.com/jonathan/competitiveness/internal/types"
)

// Report is the JSON document written by evaluate and evaluate-batch.
type Report struct {
	ID          string                   `json:"id"`
	Profile     string                   `json:"profile,omitempty"`
	AsOf        string                   `json:"as_of"`
	Policy      string                   `json:"policy,omitempty"`
	Result      *types.EvaluationResult  `json:"result"`
	Stages      []types.StageResult      `json:"stages,omitempty"`
	Qualitative *types.QualitativeResult `json:"qualitative,omitempty"`
}

// resolveSettings merges flag values over the optional config file and validates the result.
func resolveSettings(flags config.Config) (config.Config, error) {
	var fileCfg config.Config
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	merged := flags.MergeWithDefaults(fileCfg)
	merged.Stages = flags.Stages || fileCfg.Stages
	merged.Verbose = flags.Verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadPolicy returns the default policy when path is empty.
func loadPolicy(path string) (*config.Competitiveness, error) {
	if path == "" {
		return config.Default(), nil
	}
	policy, err := config.LoadCompetitiveness(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	return policy, nil
}

// parseAsOf converts a YYYY-MM month to its first day in UTC; empty means now.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	ym, ok := dates.ParseYearMonth(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM", s)
	}
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC), nil
}

// buildReport runs both scoring systems over one profile.
func buildReport(name string, p *types.Profile, policy *config.Competitiveness, asOf time.Time, withStages bool) Report {
	result := scoring.Evaluate(p, policy, asOf)
	report := Report{
		ID:          uuid.New().String(),
		Profile:     name,
		AsOf:        dates.FromTime(asOf).String(),
		Policy:      policy.Name,
		Result:      result,
		Qualitative: tiers.Assess(p, policy, asOf),
	}
	if withStages {
		report.Stages = scoring.MapStages(result, policy)
	}
	return report
}

// warnIfSchemaInvalid logs schema problems with a document without failing.
func warnIfSchemaInvalid(schemaFile, docPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaFile)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, docPath); err != nil {
		log.Printf("warning: %s does not match %s: %v", docPath, filepath.Base(schemaFile), err)
	}
}

// checkReport validates a generated report against the result schema when it is available.
func checkReport(v interface{}) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.EvaluationResultSchema)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateValue(schemaPath, v); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}
	return nil
}

// writeJSON writes v as indented JSON, creating the output directory.
func writeJSON(path string, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
