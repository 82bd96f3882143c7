package tiers

import (
	"time"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/types"
)

// Assess classifies every category of a profile and applies both reducers.
// The policy only supplies weights and tier scores for the weighted reducer.
func Assess(p *types.Profile, policy *config.Competitiveness, asOf time.Time) *types.QualitativeResult {
	f := scoring.NewFacts(p, asOf)

	result := &types.QualitativeResult{
		Categories: make([]types.CategoryAssessment, 0, len(types.AllCategories)),
	}
	for _, cat := range types.AllCategories {
		result.Categories = append(result.Categories, AssessCategory(cat, f))
	}

	result.MajorityTier = MajorityTier(result.Categories)
	result.WeightedTier, result.WeightedScore = WeightedTier(result.Categories, policy)
	return result
}

// AssessCategory gathers the signals of one category and classifies them.
func AssessCategory(cat types.CategoryKey, f *scoring.Facts) types.CategoryAssessment {
	collect, ok := collectors[cat]
	if !ok {
		return types.CategoryAssessment{Category: cat, Tier: types.TierUnknown, Status: "No information provided"}
	}

	s := collect(f)
	return types.CategoryAssessment{
		Category:      cat,
		Tier:          Classify(s.anchor, len(s.supporting), s.info),
		AnchorMet:     s.anchor,
		SupportingMet: len(s.supporting),
		InfoPresent:   s.info,
		Status:        s.status(),
	}
}
