package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/competitiveness/internal/types"
)

// LoadProfile loads and normalizes a profile from a JSON file
func LoadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseProfile(content)
}

// ParseProfile decodes and normalizes a profile document. Loosely typed scalars
// (numbers and flags) degrade to absent instead of failing; a structurally
// invalid document, or a non-object root, is an error.
func ParseProfile(data []byte) (*types.Profile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &LoadError{Message: "profile must be a JSON object"}
	}

	var p types.Profile
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&p)
	return &p, nil
}

// ListProfiles returns the JSON files directly inside dir, sorted by name
func ListProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read directory %s", dir),
			Cause:   err,
		}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
