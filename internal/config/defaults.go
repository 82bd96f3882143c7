package config

import "github.com/jonathan/competitiveness/internal/types"

// Rule identifiers used by the default policy.
const (
	RuleEduBachelorRelevant   = "edu_bachelor_relevant"
	RuleEduDiplomaSpecific    = "edu_diploma_specific"
	RuleEduPostSecondary      = "edu_post_secondary"
	RuleEduHighSchool         = "edu_high_school"
	RuleEduRecentGrad         = "edu_recent_grad"
	RuleEduExtraPostSecondary = "edu_extra_post_secondary"

	RuleWorkRelevant3Y   = "work_relevant_3y"
	RuleWorkRelevant1Y   = "work_relevant_1y"
	RuleWorkFullTime3Y   = "work_ft_3y"
	RuleWorkFullTime1Y   = "work_ft_1y"
	RuleWorkLeadership   = "work_leadership"
	RuleWorkPublicFacing = "work_public_facing"
	RuleWorkShift        = "work_shift"
	RuleWorkContinuous   = "work_continuous"

	RuleVolSustainedHigh = "vol_sustained_high"
	RuleVolSustainedMid  = "vol_sustained_mid"
	RuleVolOccasional    = "vol_occasional"
	RuleVolRecent        = "vol_recent"
	RuleVolLead          = "vol_lead"

	RuleCertFirstAid     = "cert_first_aid"
	RuleCertMentalHealth = "cert_mental_health"
	RuleCertDeEscalation = "cert_deescalation"
	RuleCertNaloxone     = "cert_naloxone"
	RuleCertExtra        = "cert_extra"
	RuleCertRecent       = "cert_recent"

	RuleFitObservedVerified = "fit_observed_verified"
	RuleFitDigitalAttempted = "fit_digital_attempted"

	RuleDrvFullClean    = "drv_full_clean"
	RuleDrvFull         = "drv_full"
	RuleDrvProbationary = "drv_probationary"

	RuleBgNoMajorIssues = "bg_no_major_issues"
	RuleBgCleanAbstract = "bg_clean_abstract"

	RuleSoftPublicContact  = "soft_public_contact"
	RuleSoftSecondLanguage = "soft_second_language"
	RuleSoftLeadership     = "soft_leadership"

	RuleRefThreePlus  = "ref_three_plus"
	RuleRefTwo        = "ref_two"
	RuleRefOne        = "ref_one"
	RuleRefLongTenure = "ref_long_tenure"
	RuleRefDiverse    = "ref_diverse"
)

// Disqualifier identifiers used by the default policy.
const (
	DisqualifierMajorConduct     = "major_conduct_issue"
	DisqualifierLicenceSuspended = "licence_suspended"
)

// LevelNotEligible is the level forced by the conduct disqualifier.
const LevelNotEligible = "Not Eligible"

// Default returns a fresh copy of the default scoring policy. The point
// values are hand-tuned product policy.
func Default() *Competitiveness {
	return &Competitiveness{
		Name:    "default",
		Version: "2025.1",
		Categories: []CategoryConfig{
			{
				Key: types.CategoryEducation, Label: "Education", Weight: 15,
				Rules: []Rule{
					{ID: RuleEduBachelorRelevant, Points: 12},
					{ID: RuleEduDiplomaSpecific, Points: 10},
					{ID: RuleEduPostSecondary, Points: 7},
					{ID: RuleEduHighSchool, Points: 3},
					{ID: RuleEduRecentGrad, Points: 2},
					{ID: RuleEduExtraPostSecondary, Points: 1, Repeatable: true, Cap: 2},
				},
			},
			{
				Key: types.CategoryWork, Label: "Work Experience", Weight: 20,
				Rules: []Rule{
					{ID: RuleWorkRelevant3Y, Points: 14},
					{ID: RuleWorkRelevant1Y, Points: 10},
					{ID: RuleWorkFullTime3Y, Points: 9},
					{ID: RuleWorkFullTime1Y, Points: 6},
					{ID: RuleWorkLeadership, Points: 5},
					{ID: RuleWorkPublicFacing, Points: 2},
					{ID: RuleWorkShift, Points: 2},
					{ID: RuleWorkContinuous, Points: 2},
				},
			},
			{
				Key: types.CategoryVolunteer, Label: "Volunteer", Weight: 15,
				Rules: []Rule{
					{ID: RuleVolSustainedHigh, Points: 12},
					{ID: RuleVolSustainedMid, Points: 8},
					{ID: RuleVolOccasional, Points: 4},
					{ID: RuleVolRecent, Points: 2},
					{ID: RuleVolLead, Points: 1},
				},
			},
			{
				Key: types.CategoryCerts, Label: "Certifications", Weight: 10,
				Rules: []Rule{
					{ID: RuleCertFirstAid, Points: 4},
					{ID: RuleCertMentalHealth, Points: 2},
					{ID: RuleCertDeEscalation, Points: 2},
					{ID: RuleCertNaloxone, Points: 1},
					{ID: RuleCertExtra, Points: 1, Repeatable: true, Cap: 2},
					{ID: RuleCertRecent, Points: 1},
				},
			},
			{
				Key: types.CategoryFitness, Label: "Fitness", Weight: 10,
				Rules: []Rule{
					{ID: RuleFitObservedVerified, Points: 10},
					{ID: RuleFitDigitalAttempted, Points: 5},
				},
			},
			{
				Key: types.CategoryDriving, Label: "Driving", Weight: 5,
				Rules: []Rule{
					{ID: RuleDrvFullClean, Points: 5},
					{ID: RuleDrvFull, Points: 3},
					{ID: RuleDrvProbationary, Points: 1},
				},
			},
			{
				Key: types.CategoryBackground, Label: "Background", Weight: 10,
				Rules: []Rule{
					{ID: RuleBgNoMajorIssues, Points: 8},
					{ID: RuleBgCleanAbstract, Points: 2},
				},
			},
			{
				Key: types.CategorySoftSkills, Label: "Soft Skills", Weight: 5,
				Rules: []Rule{
					{ID: RuleSoftPublicContact, Points: 2},
					{ID: RuleSoftSecondLanguage, Points: 2},
					{ID: RuleSoftLeadership, Points: 1},
				},
			},
			{
				Key: types.CategoryReferences, Label: "References", Weight: 10,
				Rules: []Rule{
					{ID: RuleRefThreePlus, Points: 7},
					{ID: RuleRefTwo, Points: 4},
					{ID: RuleRefOne, Points: 2},
					{ID: RuleRefLongTenure, Points: 2},
					{ID: RuleRefDiverse, Points: 1},
				},
			},
		},
		Levels: []LevelThreshold{
			{Level: "Highly Competitive", Min: 80},
			{Level: "Competitive", Min: 65},
			{Level: "Developing", Min: 45},
			{Level: "Early Stage", Min: 0},
		},
		Disqualifiers: []Disqualifier{
			{ID: DisqualifierMajorConduct, Effect: DisqualifierEffect{Kind: EffectForceLevel, Level: LevelNotEligible}},
			{ID: DisqualifierLicenceSuspended, Effect: DisqualifierEffect{Kind: EffectZeroCategory, Category: types.CategoryDriving}},
		},
		Stages: StageConfig{
			Global: []StageThreshold{
				{Stage: types.StageCompetitive, Min: 75},
				{Stage: types.StageEffective, Min: 50},
				{Stage: types.StageDeveloping, Min: 25},
				{Stage: types.StageNeedsWork, Min: 0},
			},
		},
		AnchorLifts: []AnchorLift{
			{RuleID: RuleWorkRelevant3Y, Stage: types.StageCompetitive},
			{RuleID: RuleEduBachelorRelevant, Stage: types.StageCompetitive},
			{RuleID: RuleFitObservedVerified, Stage: types.StageCompetitive},
			{RuleID: RuleWorkRelevant1Y, Stage: types.StageEffective},
			{RuleID: RuleEduDiplomaSpecific, Stage: types.StageEffective},
			{RuleID: RuleVolSustainedHigh, Stage: types.StageEffective},
			{RuleID: RuleRefThreePlus, Stage: types.StageEffective},
			{RuleID: RuleCertFirstAid, Stage: types.StageDeveloping},
		},
		Tiers: TierPolicy{
			Scores: TierScores{
				Exceptional:      1.0,
				Competitive:      0.75,
				Developing:       0.4,
				NeedsImprovement: 0.2,
				Unknown:          0.0,
			},
			Cutoffs: TierCutoffs{
				Exceptional: 0.85,
				Competitive: 0.65,
				Developing:  0.40,
			},
		},
	}
}
