// Package config provides the scoring policy used by the evaluator and the
// configuration loading for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment overrides (COMPETITIVENESS_POLICY, ...).
const envPrefix = "COMPETITIVENESS"

// Strategies accepted by the tiers command.
const (
	StrategyMajority = "majority"
	StrategyWeighted = "weighted"
	StrategyBoth     = "both"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile    string `json:"profile,omitempty" mapstructure:"profile"`         // Path to a profile JSON file
	ProfileDir string `json:"profile_dir,omitempty" mapstructure:"profile_dir"` // Directory of profile JSON files for batch runs
	Policy     string `json:"policy,omitempty" mapstructure:"policy"`           // Path to a scoring policy (YAML or JSON)
	Out        string `json:"out,omitempty" mapstructure:"out"`                 // Path to write the report

	// Evaluation
	AsOf        string `json:"as_of,omitempty" mapstructure:"as_of"`             // Evaluation month (YYYY-MM); defaults to now
	Strategy    string `json:"strategy,omitempty" mapstructure:"strategy"`       // Overall tier reducer: majority, weighted or both
	Concurrency int    `json:"concurrency,omitempty" mapstructure:"concurrency"` // Batch worker limit
	Stages      bool   `json:"stages,omitempty" mapstructure:"stages"`           // Include the stage view in reports
	Verbose     bool   `json:"verbose,omitempty" mapstructure:"verbose"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON or YAML file, applying
// COMPETITIVENESS_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"profile", "profile_dir", "policy", "out", "as_of", "strategy"} {
		v.SetDefault(key, "")
	}
	v.SetDefault("concurrency", 0)
	v.SetDefault("stages", false)
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Profile != "" && c.ProfileDir != "" {
		return fmt.Errorf("config error: 'profile' and 'profile_dir' are mutually exclusive")
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	switch c.Strategy {
	case "", StrategyMajority, StrategyWeighted, StrategyBoth:
	default:
		return fmt.Errorf("config error: 'strategy' must be one of majority, weighted, both (got %q)", c.Strategy)
	}

	if c.AsOf != "" {
		if _, ok := dates.ParseYearMonth(c.AsOf); !ok {
			return fmt.Errorf("config error: 'as_of' must be YYYY-MM (got %q)", c.AsOf)
		}
	}

	if c.Policy != "" {
		if _, err := os.Stat(c.Policy); os.IsNotExist(err) {
			return fmt.Errorf("config error: policy file not found: %s", c.Policy)
		}
	}

	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.ProfileDir == "" {
		result.ProfileDir = defaults.ProfileDir
	}
	if result.Policy == "" {
		result.Policy = defaults.Policy
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.AsOf == "" {
		result.AsOf = defaults.AsOf
	}

	if result.Strategy == "" {
		if defaults.Strategy != "" {
			result.Strategy = defaults.Strategy
		} else {
			result.Strategy = StrategyBoth
		}
	}

	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = 4
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
