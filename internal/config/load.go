package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCompetitiveness reads a scoring policy from a .yaml, .yml or .json file
// and validates it. Each call returns a new, independent policy.
func LoadCompetitiveness(path string) (*Competitiveness, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Message: "policy path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	policy, err := ParseCompetitiveness(data, filepath.Ext(path))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode policy", Cause: err}
	}

	if err := policy.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "policy failed validation", Cause: err}
	}
	return policy, nil
}

// ParseCompetitiveness decodes a policy document. ext selects the format
// (".json" for JSON, anything else is parsed as YAML). The result is not validated.
func ParseCompetitiveness(data []byte, ext string) (*Competitiveness, error) {
	var policy Competitiveness
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &policy); err != nil {
			return nil, err
		}
		return &policy, nil
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// MarshalCompetitiveness encodes a policy as YAML or JSON ("json").
func MarshalCompetitiveness(policy *Competitiveness, format string) ([]byte, error) {
	if strings.EqualFold(format, "json") {
		return json.MarshalIndent(policy, "", "  ")
	}
	return yaml.Marshal(policy)
}
