package tiers

import (
	"testing"
	"time"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

func strongProfile() *types.Profile {
	return &types.Profile{
		WorkHistory: []types.WorkEntry{
			{
				Role: "Security Guard", StartDate: "2020-01", EndDate: "2024-01",
				HoursPerWeek: types.NewNumber(40),
				PublicFacing: types.NewFlag(true), ShiftWork: types.NewFlag(true), Leadership: types.NewFlag(true),
			},
		},
		VolunteerHistory: []types.VolunteerEntry{
			{Organization: "Food Bank", StartDate: "2022-03", Current: types.NewFlag(true), HoursPerWeek: types.NewNumber(3), RoleType: "coordinator"},
		},
		EducationDetails: []types.EducationEntry{
			{CredentialLevel: "Diploma", Program: "Police Foundations", EndDate: "2019-05"},
			{CredentialLevel: "Bachelor's Degree", Program: "Criminology", EndDate: "2022-05"},
		},
		CertsDetails: []types.CertEntry{
			{Name: "Standard First Aid CPR-C", IssueDate: "2024-01"},
			{Name: "Mental Health First Aid"},
			{Name: "CPI Nonviolent Crisis Intervention"},
			{Name: "Naloxone Administration"},
		},
		RefsList: []types.ReferenceEntry{
			{Name: "A", Context: "work", Known2Y: types.NewFlag(true)},
			{Name: "B", Context: "volunteer", Known2Y: types.NewFlag(true)},
			{Name: "C", Context: "school"},
		},
		DriverLicenceClass:          "G",
		DriverCleanAbstract:         types.NewFlag(true),
		ConductNoMajorIssues:        types.NewFlag(true),
		FitnessPrepObservedVerified: types.NewFlag(true),
		Languages:                   []string{"English", "French"},
	}
}

func assessments(tiers ...types.Tier) []types.CategoryAssessment {
	out := make([]types.CategoryAssessment, len(tiers))
	for i, t := range tiers {
		out[i] = types.CategoryAssessment{Category: types.AllCategories[i%len(types.AllCategories)], Tier: t}
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		anchor     bool
		supporting int
		info       bool
		want       types.Tier
	}{
		{"no info", true, 3, false, types.TierUnknown},
		{"anchor and two supporting", true, 2, true, types.TierExceptional},
		{"anchor alone", true, 1, true, types.TierCompetitive},
		{"supporting only", false, 2, true, types.TierDeveloping},
		{"weak", false, 1, true, types.TierNeedsImprovement},
		{"info only", false, 0, true, types.TierNeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.anchor, tt.supporting, tt.info))
		})
	}
}

func TestMajorityTier(t *testing.T) {
	E, C, D, N, U := types.TierExceptional, types.TierCompetitive, types.TierDeveloping, types.TierNeedsImprovement, types.TierUnknown

	tests := []struct {
		name  string
		tiers []types.Tier
		want  types.Tier
	}{
		{"two exceptional no low", []types.Tier{E, E, C, U, U}, E},
		{"two exceptional with a low", []types.Tier{E, E, D}, U},
		{"high majority", []types.Tier{C, C, C, D, D}, C},
		{"high tie with low", []types.Tier{E, C, C, D, D, N}, C},
		{"low outnumbers high", []types.Tier{C, C, C, D, D, N, N}, D},
		{"needs improvement dominates", []types.Tier{N, N, D, C}, N},
		{"insufficient verdict", []types.Tier{C, D, U, U}, U},
		{"all unknown", []types.Tier{U, U, U}, U},
		{"empty", nil, U},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MajorityTier(assessments(tt.tiers...)))
		})
	}
}

func TestWeightedTier(t *testing.T) {
	policy := config.Default()

	all := func(tier types.Tier) []types.CategoryAssessment {
		tiers := make([]types.Tier, len(types.AllCategories))
		for i := range tiers {
			tiers[i] = tier
		}
		return assessments(tiers...)
	}

	tier, score := WeightedTier(all(types.TierExceptional), policy)
	assert.Equal(t, types.TierExceptional, tier)
	assert.InDelta(t, 1.0, score, 1e-9)

	tier, score = WeightedTier(all(types.TierCompetitive), policy)
	assert.Equal(t, types.TierCompetitive, tier)
	assert.InDelta(t, 0.75, score, 1e-9)

	tier, score = WeightedTier(all(types.TierNeedsImprovement), policy)
	assert.Equal(t, types.TierNeedsImprovement, tier)
	assert.InDelta(t, 0.2, score, 1e-9)

	tier, score = WeightedTier(all(types.TierUnknown), policy)
	assert.Equal(t, types.TierUnknown, tier)
	assert.Equal(t, 0.0, score)
}

func TestWeightedTier_UnknownKeepsItsWeight(t *testing.T) {
	policy := config.Default()
	list := []types.CategoryAssessment{
		{Category: types.CategoryWork, Tier: types.TierExceptional},
		{Category: types.CategoryEducation, Tier: types.TierUnknown},
	}

	tier, score := WeightedTier(list, policy)

	// 20*1.0 / (20+15)
	assert.InDelta(t, 20.0/35.0, score, 1e-9)
	assert.Equal(t, types.TierDeveloping, tier)
}

func TestWeightedTier_CategoriesOutsidePolicyIgnored(t *testing.T) {
	policy := config.Default()
	policy.Categories = policy.Categories[:1]
	list := []types.CategoryAssessment{
		{Category: types.CategoryEducation, Tier: types.TierCompetitive},
		{Category: types.CategoryWork, Tier: types.TierNeedsImprovement},
	}

	tier, score := WeightedTier(list, policy)
	assert.Equal(t, types.TierCompetitive, tier)
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestAssess_EmptyProfile(t *testing.T) {
	result := Assess(&types.Profile{}, config.Default(), asOf)

	require.Len(t, result.Categories, len(types.AllCategories))
	for _, a := range result.Categories {
		assert.Equal(t, types.TierUnknown, a.Tier, "category %s", a.Category)
		assert.False(t, a.InfoPresent)
		assert.Equal(t, "No information provided", a.Status)
	}
	assert.Equal(t, types.TierUnknown, result.MajorityTier)
	assert.Equal(t, types.TierUnknown, result.WeightedTier)
	assert.Equal(t, 0.0, result.WeightedScore)
}

func TestAssess_StrongProfile(t *testing.T) {
	result := Assess(strongProfile(), config.Default(), asOf)

	want := map[types.CategoryKey]types.Tier{
		types.CategoryEducation:  types.TierExceptional,
		types.CategoryWork:       types.TierExceptional,
		types.CategoryVolunteer:  types.TierExceptional,
		types.CategoryCerts:      types.TierExceptional,
		types.CategoryFitness:    types.TierCompetitive,
		types.CategoryDriving:    types.TierExceptional,
		types.CategoryBackground: types.TierCompetitive,
		types.CategorySoftSkills: types.TierExceptional,
		types.CategoryReferences: types.TierExceptional,
	}
	for _, a := range result.Categories {
		assert.Equal(t, want[a.Category], a.Tier, "category %s", a.Category)
		assert.True(t, a.AnchorMet, "category %s", a.Category)
	}

	assert.Equal(t, types.TierExceptional, result.MajorityTier)
	assert.Equal(t, types.TierExceptional, result.WeightedTier)
	assert.InDelta(t, 0.95, result.WeightedScore, 1e-9)
}

func TestAssessCategory_WorkStatus(t *testing.T) {
	profile := &types.Profile{WorkHistory: []types.WorkEntry{
		{Role: "Electrician", StartDate: "2020-01", EndDate: "2022-01", HoursPerWeek: types.NewNumber(40), Leadership: types.NewFlag(true)},
		{Role: "Security Guard", StartDate: "2023-01", EndDate: "2024-03", HoursPerWeek: types.NewNumber(40), PublicFacing: types.NewFlag(true)},
	}}

	a := AssessCategory(types.CategoryWork, scoring.NewFacts(profile, asOf))

	assert.Equal(t, "Experience anchor met (3y FT / 14m relevant) • public-facing • leadership • police-related exposure", a.Status)
	assert.Equal(t, 3, a.SupportingMet)
	assert.Equal(t, types.TierExceptional, a.Tier)
}

func TestAssessCategory_ConductIssueNeedsImprovement(t *testing.T) {
	profile := &types.Profile{ConductNoMajorIssues: types.NewFlag(false)}

	a := AssessCategory(types.CategoryBackground, scoring.NewFacts(profile, asOf))

	assert.True(t, a.InfoPresent)
	assert.False(t, a.AnchorMet)
	assert.Equal(t, types.TierNeedsImprovement, a.Tier)
	assert.Equal(t, "Major conduct issue reported", a.Status)
}

func TestAssessCategory_ReferencesSupportingOnly(t *testing.T) {
	profile := &types.Profile{RefsList: []types.ReferenceEntry{
		{Name: "A", Context: "work", Known2Y: types.NewFlag(true)},
		{Name: "B", Context: "church", Known2Y: types.NewFlag(true)},
	}}

	a := AssessCategory(types.CategoryReferences, scoring.NewFacts(profile, asOf))

	assert.Equal(t, types.TierDeveloping, a.Tier)
	assert.Equal(t, "2 references • known 2+ years • diverse contexts", a.Status)
}

func TestAssessCategory_FlagCategoryTiers(t *testing.T) {
	tests := []struct {
		name     string
		category types.CategoryKey
		profile  *types.Profile
		want     types.Tier
	}{
		{"fitness nothing supplied", types.CategoryFitness, &types.Profile{}, types.TierUnknown},
		{"fitness observed", types.CategoryFitness, &types.Profile{FitnessPrepObservedVerified: types.NewFlag(true)}, types.TierCompetitive},
		{"fitness observed and digital", types.CategoryFitness, &types.Profile{FitnessPrepObservedVerified: types.NewFlag(true), FitnessPrepDigitalAttempted: types.NewFlag(true)}, types.TierCompetitive},
		{"fitness digital only", types.CategoryFitness, &types.Profile{FitnessPrepDigitalAttempted: types.NewFlag(true)}, types.TierNeedsImprovement},
		{"driving nothing supplied", types.CategoryDriving, &types.Profile{}, types.TierUnknown},
		{"driving full and clean", types.CategoryDriving, &types.Profile{DriverLicenceClass: "G", DriverCleanAbstract: types.NewFlag(true)}, types.TierExceptional},
		{"driving probationary and clean", types.CategoryDriving, &types.Profile{DriverLicenceClass: "G2", DriverCleanAbstract: types.NewFlag(true)}, types.TierDeveloping},
		{"driving full without abstract", types.CategoryDriving, &types.Profile{DriverLicenceClass: "G"}, types.TierNeedsImprovement},
		{"background conduct absent", types.CategoryBackground, &types.Profile{DriverCleanAbstract: types.NewFlag(true)}, types.TierUnknown},
		{"background clean", types.CategoryBackground, &types.Profile{ConductNoMajorIssues: types.NewFlag(true), DriverCleanAbstract: types.NewFlag(true)}, types.TierCompetitive},
		{"background issue with clean abstract", types.CategoryBackground, &types.Profile{ConductNoMajorIssues: types.NewFlag(false), DriverCleanAbstract: types.NewFlag(true)}, types.TierNeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessCategory(tt.category, scoring.NewFacts(tt.profile, asOf))
			assert.Equal(t, tt.want, a.Tier)
		})
	}
}

func TestAssessCategory_FlagCategoriesNeverReach(t *testing.T) {
	flags := []types.Flag{{}, types.NewFlag(true), types.NewFlag(false)}
	classes := []string{"", "G", "G2", "XYZ"}

	for _, observed := range flags {
		for _, digital := range flags {
			p := &types.Profile{FitnessPrepObservedVerified: observed, FitnessPrepDigitalAttempted: digital}
			tier := AssessCategory(types.CategoryFitness, scoring.NewFacts(p, asOf)).Tier
			assert.NotContains(t, []types.Tier{types.TierDeveloping, types.TierExceptional}, tier, "fitness %+v", p)
		}
	}

	for _, conduct := range flags {
		for _, clean := range flags {
			p := &types.Profile{ConductNoMajorIssues: conduct, DriverCleanAbstract: clean}
			tier := AssessCategory(types.CategoryBackground, scoring.NewFacts(p, asOf)).Tier
			assert.NotEqual(t, types.TierExceptional, tier, "background %+v", p)
		}
	}

	// The driving anchor implies both supporting signals.
	for _, class := range classes {
		for _, clean := range flags {
			p := &types.Profile{DriverLicenceClass: class, DriverCleanAbstract: clean}
			tier := AssessCategory(types.CategoryDriving, scoring.NewFacts(p, asOf)).Tier
			assert.NotEqual(t, types.TierCompetitive, tier, "driving %+v", p)
		}
	}
}

func TestAssessCategory_UnknownCategory(t *testing.T) {
	a := AssessCategory("hobbies", scoring.NewFacts(strongProfile(), asOf))
	assert.Equal(t, types.TierUnknown, a.Tier)
}

func TestAssess_Deterministic(t *testing.T) {
	policy := config.Default()
	p := strongProfile()
	assert.Equal(t, Assess(p, policy, asOf), Assess(p, policy, asOf))
}
