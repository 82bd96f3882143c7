package scoring

import (
	"strconv"
	"time"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/types"
)

// Evaluate scores a profile against a policy as of asOf. It is pure: the
// profile and policy are never modified, and identical inputs always produce
// identical results.
func Evaluate(p *types.Profile, policy *config.Competitiveness, asOf time.Time) *types.EvaluationResult {
	return EvaluateFacts(NewFacts(p, asOf), policy)
}

// EvaluateFacts scores pre-derived facts against a policy.
func EvaluateFacts(f *Facts, policy *config.Competitiveness) *types.EvaluationResult {
	result := &types.EvaluationResult{
		Details: make([]types.EvaluationDetail, 0, len(policy.Categories)),
	}

	for _, cat := range policy.Categories {
		result.Details = append(result.Details, EvaluateCategory(cat, f))
	}

	applyDisqualifiers(result, f, policy)

	for _, d := range result.Details {
		result.Total += d.CappedPoints
	}

	if !result.Disqualified {
		result.Level = LevelFor(result.Total, policy)
	}
	return result
}

// EvaluateCategory applies one category's rules to the facts. Repeatable rules
// are clamped to their own cap before being summed; the category total is
// then clamped to the category weight.
func EvaluateCategory(cat config.CategoryConfig, f *Facts) types.EvaluationDetail {
	detail := types.EvaluationDetail{
		Category:     cat.Key,
		CategoryMax:  cat.Weight,
		MatchedRules: []string{},
	}

	groupCaps := capGroups(cat.Rules)
	groupUsed := make(map[string]float64)

	for _, rule := range cat.Rules {
		pts := RulePoints(cat.Key, rule, f)

		if group := rule.CapCategory; group != "" {
			if limit := groupCaps[group]; limit > 0 {
				pts = min(pts, max(limit-groupUsed[group], 0))
			}
			groupUsed[group] += pts
		}

		if pts <= 0 {
			continue
		}
		detail.RawPoints += pts
		detail.MatchedRules = append(detail.MatchedRules, rule.ID+":"+formatPoints(pts))
	}

	detail.CappedPoints = min(detail.RawPoints, cat.Weight)
	return detail
}

// RulePoints returns the contribution of a single rule, after its own cap.
// Rules without a registered predicate contribute 0.
func RulePoints(category types.CategoryKey, rule config.Rule, f *Facts) float64 {
	pred := LookupPredicate(category, rule.ID)
	if pred == nil {
		return 0
	}

	units := pred(f)
	if units <= 0 {
		return 0
	}

	if !rule.Repeatable {
		return rule.Points
	}

	pts := units * rule.Points
	if rule.Cap > 0 {
		pts = min(pts, rule.Cap)
	}
	return pts
}

// LevelFor returns the first level whose minimum the total reaches, scanning
// thresholds from highest to lowest. Falls back to the lowest level.
func LevelFor(total float64, policy *config.Competitiveness) string {
	levels := policy.SortedLevels()
	if len(levels) == 0 {
		return ""
	}
	for _, l := range levels {
		if total >= l.Min {
			return l.Level
		}
	}
	return levels[len(levels)-1].Level
}

// capGroups returns the shared cap of each CapCategory group: the largest Cap
// declared by a rule in that group.
func capGroups(rules []config.Rule) map[string]float64 {
	caps := make(map[string]float64)
	for _, r := range rules {
		if r.CapCategory != "" {
			caps[r.CapCategory] = max(caps[r.CapCategory], r.Cap)
		}
	}
	return caps
}

func formatPoints(pts float64) string {
	return strconv.FormatFloat(pts, 'f', -1, 64)
}
