package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/schemas"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.EvaluationResult{
		Total: 72.5,
		Level: "Competitive",
		Details: []types.EvaluationDetail{
			{Category: types.CategoryWork, RawPoints: 20, CappedPoints: 20, CategoryMax: 20},
			{Category: types.CategoryCerts, RawPoints: 12, CappedPoints: 10, CategoryMax: 10},
			{Category: types.CategoryDriving, RawPoints: 5, CappedPoints: 0, CategoryMax: 5, Zeroed: true},
		},
		Flags: []string{"licence_suspended"},
	}

	p.PrintEvaluation(result, nil)
	output := buf.String()

	assert.Contains(t, output, "COMPETITIVENESS SCORE")
	assert.Contains(t, output, "72.5 / 100")
	assert.Contains(t, output, "Competitive")
	assert.Contains(t, output, "capped from 12")
	assert.Contains(t, output, "zeroed")
	assert.Contains(t, output, "licence_suspended")
}

func TestPrintEvaluation_Disqualified(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(&types.EvaluationResult{Total: 90, Level: "Not Eligible", Disqualified: true, DisqualifierID: "major_conduct_issue"}, nil)

	assert.Contains(t, buf.String(), "Not Eligible")
	assert.Contains(t, buf.String(), "Disqualified by major_conduct_issue")
}

func TestLevelStyle_FollowsPolicyThresholds(t *testing.T) {
	strict := config.Default()
	strict.Levels = []config.LevelThreshold{
		{Level: "Ready", Min: 95},
		{Level: "Close", Min: 85},
		{Level: "Building", Min: 50},
		{Level: "Starting", Min: 0},
	}

	tests := []struct {
		name   string
		result *types.EvaluationResult
		policy *config.Competitiveness
		want   lipgloss.TerminalColor
	}{
		{"default competitive", &types.EvaluationResult{Total: 70, Level: "Competitive"}, nil, styleGood.GetForeground()},
		{"default developing", &types.EvaluationResult{Total: 50, Level: "Developing"}, nil, styleWarn.GetForeground()},
		{"custom upper level", &types.EvaluationResult{Total: 88, Level: "Close"}, strict, styleGood.GetForeground()},
		{"custom lower level above 65", &types.EvaluationResult{Total: 70, Level: "Building"}, strict, styleWarn.GetForeground()},
		{"unknown level", &types.EvaluationResult{Total: 99, Level: "Other"}, strict, styleWarn.GetForeground()},
		{"disqualified", &types.EvaluationResult{Total: 99, Level: "Ready", Disqualified: true}, strict, styleBad.GetForeground()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelStyle(tt.result, tt.policy).GetForeground())
		})
	}
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(nil, nil)
	p.PrintStages(nil)
	p.PrintGaps(nil)
	p.PrintQualitative(nil, "both")

	assert.Empty(t, buf.String())
}

func TestPrintStages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStages([]types.StageResult{
		{Category: types.CategoryWork, Percent: 20, BaseStage: types.StageNeedsWork, Stage: types.StageEffective, LiftedBy: "work_relevant_1y"},
		{Category: types.CategoryFitness, Percent: 100, BaseStage: types.StageCompetitive, Stage: types.StageCompetitive},
	})
	output := buf.String()

	assert.Contains(t, output, "READINESS STAGES")
	assert.Contains(t, output, "EFFECTIVE")
	assert.Contains(t, output, "lifted from NEEDS_WORK by work_relevant_1y")
	assert.Contains(t, output, "100%")
}

func TestPrintGaps_LimitsItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gaps := make([]scoring.Gap, 0, len(types.AllCategories))
	for i, c := range types.AllCategories {
		gaps = append(gaps, scoring.Gap{Category: c, Missing: float64(10 - i)})
	}

	p.PrintGaps(gaps)
	output := buf.String()

	assert.Contains(t, output, "WHERE TO IMPROVE")
	assert.Contains(t, output, "education")
	assert.Contains(t, output, "... and 4 more")
	assert.NotContains(t, output, "references")
}

func TestPrintQualitative_Strategies(t *testing.T) {
	q := &types.QualitativeResult{
		Categories: []types.CategoryAssessment{
			{Category: types.CategoryWork, Tier: types.TierExceptional, Status: "Experience anchor met (3y FT / 14m relevant) • public-facing • leadership"},
			{Category: types.CategoryFitness, Tier: types.TierUnknown, Status: "No information provided"},
		},
		MajorityTier:  types.TierUnknown,
		WeightedTier:  types.TierDeveloping,
		WeightedScore: 0.43,
	}

	var both bytes.Buffer
	NewPrinter(&both).PrintQualitative(q, "both")
	assert.Contains(t, both.String(), "Majority tier")
	assert.Contains(t, both.String(), "Weighted tier")
	assert.Contains(t, both.String(), "0.43")
	assert.Contains(t, both.String(), "Experience anchor met (3y FT / 14m relevant)")

	var majority bytes.Buffer
	NewPrinter(&majority).PrintQualitative(q, "majority")
	assert.NotContains(t, majority.String(), "Weighted tier")

	var weighted bytes.Buffer
	NewPrinter(&weighted).PrintQualitative(q, "weighted")
	assert.NotContains(t, weighted.String(), "Majority tier")
}

func TestPrintValidation(t *testing.T) {
	var ok bytes.Buffer
	NewPrinter(&ok).PrintValidation("profile.json", nil)
	assert.Contains(t, ok.String(), "profile.json is valid")

	var failed bytes.Buffer
	NewPrinter(&failed).PrintValidation("profile.json", &schemas.ValidationError{Errors: []schemas.FieldError{
		{Field: "driver_licence_class", Message: "Invalid type. Expected: string, given: integer"},
	}})
	assert.Contains(t, failed.String(), "VALIDATION FAILED")
	assert.Contains(t, failed.String(), "Found 1 problems")
	assert.Contains(t, failed.String(), "driver_licence_class")

	var other bytes.Buffer
	NewPrinter(&other).PrintValidation("profile.json", errors.New("schema file not found"))
	assert.Contains(t, other.String(), "schema file not found")
}

func TestPrintBox_LinesAlignedAndTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short • line\n"+strings.Repeat("x", 200))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(stripANSI(line))), "line %q", line)
	}
	assert.Contains(t, lines[4], "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "••••...", truncate(strings.Repeat("•", 20), 7))
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
