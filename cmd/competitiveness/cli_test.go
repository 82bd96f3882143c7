package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCommand_MissingProfileFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestEvaluateCommand_WritesReport(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "report.json")

	cmd := exec.Command(binaryPath, "evaluate", "--profile", testdataPath("profiles", "strong.json"), "--as-of", "2025-03", "--stages", "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "COMPETITIVENESS SCORE")

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 100.0, report.Result.Total)
	assert.NotEmpty(t, report.Stages)
}

func TestEvaluateCommand_InvalidProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate", "--profile", testdataPath("invalid", "malformed.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load profile")
}

func TestEvaluateBatchCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "reports.json")

	cmd := exec.Command(binaryPath, "evaluate-batch", "--dir", testdataPath("profiles"), "--as-of", "2025-03", "--concurrency", "2", "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var reports []Report
	require.NoError(t, json.Unmarshal(data, &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "minimal.json", reports[0].Profile)
	assert.Equal(t, "strong.json", reports[1].Profile)
}

func TestTiersCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "tiers", "--profile", testdataPath("profiles", "strong.json"), "--as-of", "2025-03", "--strategy", "weighted")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "QUALITATIVE ASSESSMENT")
	assert.Contains(t, string(output), "Weighted tier")
	assert.NotContains(t, string(output), "Majority tier")
}

func TestValidateProfileCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate-profile", "--profile", testdataPath("profiles", "strong.json"))
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "is valid")

	cmd = exec.Command(binaryPath, "validate-profile", "--profile", testdataPath("invalid", "wrong_type_profile.json"))
	output, err = cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "driver_licence_class")
}

func TestShowConfigCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "show-config", "--format", "json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var policy map[string]interface{}
	require.NoError(t, json.Unmarshal(output, &policy))
	assert.Equal(t, "default", policy["name"])
	assert.Contains(t, policy, "categories")
}

func TestShowConfigCommand_BadFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "show-config", "--format", "toml")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "expected yaml or json")
}
