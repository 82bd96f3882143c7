// Package tiers assigns coaching-style qualitative tiers per category from an
// anchor signal and supporting signals, and reduces them to an overall tier.
package tiers

import (
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/types"
)

// minSupporting is the number of supporting signals that upgrades a tier.
const minSupporting = 2

// Majority reducer thresholds.
const (
	majorityVerdict     = 3
	majorityExceptional = 2
)

// Classify returns the tier for one category's signals.
func Classify(anchor bool, supporting int, info bool) types.Tier {
	switch {
	case !info:
		return types.TierUnknown
	case anchor && supporting >= minSupporting:
		return types.TierExceptional
	case anchor:
		return types.TierCompetitive
	case supporting >= minSupporting:
		return types.TierDeveloping
	default:
		return types.TierNeedsImprovement
	}
}

// MajorityTier reduces category tiers by vote. Unknown categories abstain.
// Without three votes in one bucket the verdict is Unknown.
func MajorityTier(assessments []types.CategoryAssessment) types.Tier {
	var exceptional, high, low, developing, needsImprovement int
	for _, a := range assessments {
		switch a.Tier {
		case types.TierExceptional:
			exceptional++
		case types.TierDeveloping:
			developing++
		case types.TierNeedsImprovement:
			needsImprovement++
		}
		if a.Tier.IsHigh() {
			high++
		}
		if a.Tier.IsLow() {
			low++
		}
	}

	switch {
	case exceptional >= majorityExceptional && low == 0:
		return types.TierExceptional
	case high >= majorityVerdict && high >= low:
		return types.TierCompetitive
	case low >= majorityVerdict:
		if needsImprovement > developing {
			return types.TierNeedsImprovement
		}
		return types.TierDeveloping
	default:
		return types.TierUnknown
	}
}

// WeightedTier averages tier scores by category weight and buckets the result
// with the policy cutoffs. Unknown categories score zero but keep their weight.
// Returns Unknown when no category carries information.
func WeightedTier(assessments []types.CategoryAssessment, policy *config.Competitiveness) (types.Tier, float64) {
	var sum, weights float64
	informed := false
	for _, a := range assessments {
		w := policy.Weight(a.Category)
		if w <= 0 {
			continue
		}
		if a.Tier != types.TierUnknown {
			informed = true
		}
		sum += w * policy.Tiers.Scores.Score(a.Tier)
		weights += w
	}
	if !informed || weights == 0 {
		return types.TierUnknown, 0
	}

	score := sum / weights
	cut := policy.Tiers.Cutoffs
	switch {
	case score >= cut.Exceptional:
		return types.TierExceptional, score
	case score >= cut.Competitive:
		return types.TierCompetitive, score
	case score >= cut.Developing:
		return types.TierDeveloping, score
	default:
		return types.TierNeedsImprovement, score
	}
}
