package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/competitiveness/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	policy := Default()
	require.NoError(t, policy.Validate())
	assert.Equal(t, 100.0, policy.TotalWeight())

	for _, key := range types.AllCategories {
		_, ok := policy.Category(key)
		assert.True(t, ok, "default policy configures %s", key)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Categories[0].Weight = 99
	a.Levels[0].Level = "mutated"

	assert.Equal(t, 15.0, b.Categories[0].Weight)
	assert.Equal(t, "Highly Competitive", b.Levels[0].Level)
}

func TestSortedLevels_DoesNotMutate(t *testing.T) {
	policy := Default()
	policy.Levels = []LevelThreshold{
		{Level: "Low", Min: 0},
		{Level: "High", Min: 80},
		{Level: "Mid", Min: 50},
	}

	sorted := policy.SortedLevels()

	assert.Equal(t, []string{"High", "Mid", "Low"}, []string{sorted[0].Level, sorted[1].Level, sorted[2].Level})
	assert.Equal(t, "Low", policy.Levels[0].Level)
}

func TestStagesFor_PerCategoryOverride(t *testing.T) {
	policy := Default()
	policy.Stages.PerCategory = map[types.CategoryKey][]StageThreshold{
		types.CategoryFitness: {
			{Stage: types.StageNeedsWork, Min: 0},
			{Stage: types.StageCompetitive, Min: 100},
		},
	}

	fitness := policy.StagesFor(types.CategoryFitness)
	require.Len(t, fitness, 2)
	assert.Equal(t, types.StageCompetitive, fitness[0].Stage)

	work := policy.StagesFor(types.CategoryWork)
	assert.Len(t, work, 4)
}

func TestValidate_WeightsMustSumTo100(t *testing.T) {
	policy := Default()
	policy.Categories[0].Weight = 10

	err := policy.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "weights sum to 95")
}

func TestValidate_StructConstraints(t *testing.T) {
	policy := Default()
	policy.Categories[1].Rules[0].ID = ""
	policy.Disqualifiers = append(policy.Disqualifiers, Disqualifier{ID: "bogus", Effect: DisqualifierEffect{Kind: "explode"}})
	policy.AnchorLifts = append(policy.AnchorLifts, AnchorLift{RuleID: "x", Stage: "SUPERB"})

	err := policy.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rules[0].ID")
	assert.Contains(t, err.Error(), "oneof")
}

func TestValidate_SemanticChecks(t *testing.T) {
	policy := Default()
	policy.Categories[2].Key = types.CategoryWork
	policy.Categories[0].Rules = append(policy.Categories[0].Rules, Rule{ID: RuleEduRecentGrad, Points: 1})
	policy.Disqualifiers[1].Effect.Category = "mystery"

	err := policy.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate category "work"`)
	assert.Contains(t, msg, `duplicate rule "edu_recent_grad"`)
	assert.Contains(t, msg, `unconfigured category "mystery"`)
}

func TestLoadCompetitiveness_YAMLAndJSONAgree(t *testing.T) {
	dir := t.TempDir()

	yamlData, err := MarshalCompetitiveness(Default(), "yaml")
	require.NoError(t, err)
	yamlPath := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(yamlPath, yamlData, 0644))

	jsonData, err := MarshalCompetitiveness(Default(), "json")
	require.NoError(t, err)
	jsonPath := filepath.Join(dir, "policy.json")
	require.NoError(t, os.WriteFile(jsonPath, jsonData, 0644))

	fromYAML, err := LoadCompetitiveness(yamlPath)
	require.NoError(t, err)
	fromJSON, err := LoadCompetitiveness(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, Default(), fromYAML)
	assert.Equal(t, fromYAML, fromJSON)
}

func TestLoadCompetitiveness_Errors(t *testing.T) {
	_, err := LoadCompetitiveness("")
	assert.ErrorContains(t, err, "policy path is empty")

	_, err = LoadCompetitiveness("/nonexistent/policy.yaml")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\ncategories: [\n"), 0644))
	_, err = LoadCompetitiveness(bad)
	assert.ErrorContains(t, err, "failed to decode policy")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("name: tiny\ncategories:\n  - key: work\n    weight: 50\nlevels:\n  - level: Any\n    min: 0\n"), 0644))
	_, err = LoadCompetitiveness(invalid)
	assert.ErrorContains(t, err, "policy failed validation")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
