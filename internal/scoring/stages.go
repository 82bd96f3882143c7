package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/types"
)

// MapDetailToStage converts a category's capped points to a percentage,
// looks up the stage for that percentage, then applies anchor lifts. A lift
// only ever raises the stage, and zeroed categories are never lifted.
func MapDetailToStage(detail types.EvaluationDetail, policy *config.Competitiveness) types.StageResult {
	percent := 0.0
	if detail.CategoryMax > 0 {
		percent = detail.CappedPoints / detail.CategoryMax * 100
	}

	base := types.StageNeedsWork
	for _, st := range policy.StagesFor(detail.Category) {
		if percent >= st.Min {
			base = st.Stage
			break
		}
	}

	res := types.StageResult{
		Category:  detail.Category,
		Percent:   percent,
		BaseStage: base,
		Stage:     base,
	}

	if detail.Zeroed {
		return res
	}
	for _, matched := range detail.MatchedRules {
		id := ruleIDOf(matched)
		for _, lift := range policy.AnchorLifts {
			if lift.RuleID == id && lift.Stage.Ordinal() > res.Stage.Ordinal() {
				res.Stage = lift.Stage
				res.LiftedBy = id
			}
		}
	}
	return res
}

// MapStages maps every detail of a result to its stage.
func MapStages(result *types.EvaluationResult, policy *config.Competitiveness) []types.StageResult {
	stages := make([]types.StageResult, 0, len(result.Details))
	for _, d := range result.Details {
		stages = append(stages, MapDetailToStage(d, policy))
	}
	return stages
}

// Gap is the number of points a category is short of its maximum.
type Gap struct {
	Category types.CategoryKey `json:"category"`
	Missing  float64           `json:"missing"`
}

// Gaps lists categories with missing points, largest gap first. Ties keep
// policy order.
func Gaps(result *types.EvaluationResult) []Gap {
	var gaps []Gap
	for _, d := range result.Details {
		if missing := d.CategoryMax - d.CappedPoints; missing > 0 {
			gaps = append(gaps, Gap{Category: d.Category, Missing: missing})
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Missing > gaps[j].Missing
	})
	return gaps
}

// ruleIDOf strips the ":<points>" suffix from a matched rule entry.
func ruleIDOf(matched string) string {
	if i := strings.LastIndex(matched, ":"); i >= 0 {
		return matched[:i]
	}
	return matched
}
