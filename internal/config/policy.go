package config

import (
	"sort"

	"github.com/jonathan/competitiveness/internal/types"
)

// Disqualifier effect kinds.
const (
	EffectForceLevel   = "force_level"
	EffectZeroCategory = "zero_category"
)

// Competitiveness is the scoring policy: categories, rules, thresholds and
// overrides. A policy is treated as an immutable value once built; alternate
// policies (for example per jurisdiction) are separate instances.
type Competitiveness struct {
	Name          string           `json:"name" yaml:"name" validate:"required"`
	Version       string           `json:"version" yaml:"version"`
	Categories    []CategoryConfig `json:"categories" yaml:"categories" validate:"required,min=1,dive"`
	Levels        []LevelThreshold `json:"levels" yaml:"levels" validate:"required,min=1,dive"`
	Disqualifiers []Disqualifier   `json:"disqualifiers" yaml:"disqualifiers" validate:"dive"`
	Stages        StageConfig      `json:"stages" yaml:"stages"`
	AnchorLifts   []AnchorLift     `json:"anchor_lifts" yaml:"anchor_lifts" validate:"dive"`
	Tiers         TierPolicy       `json:"tiers" yaml:"tiers"`
}

// CategoryConfig holds the weight (maximum points) and rules of one category.
type CategoryConfig struct {
	Key    types.CategoryKey `json:"key" yaml:"key" validate:"required"`
	Label  string            `json:"label" yaml:"label"`
	Weight float64           `json:"weight" yaml:"weight" validate:"gt=0,lte=100"`
	Rules  []Rule            `json:"rules" yaml:"rules" validate:"dive"`
}

// Rule is a single scored predicate. Repeatable rules score Points per unit,
// clamped to Cap. Rules sharing a CapCategory are also clamped jointly to the
// largest Cap in that group.
type Rule struct {
	ID          string  `json:"id" yaml:"id" validate:"required"`
	Points      float64 `json:"points" yaml:"points" validate:"gte=0"`
	Repeatable  bool    `json:"repeatable,omitempty" yaml:"repeatable,omitempty"`
	Cap         float64 `json:"cap,omitempty" yaml:"cap,omitempty" validate:"gte=0"`
	CapCategory string  `json:"cap_category,omitempty" yaml:"cap_category,omitempty"`
}

// LevelThreshold maps a minimum total to a level label.
type LevelThreshold struct {
	Level string  `json:"level" yaml:"level" validate:"required"`
	Min   float64 `json:"min" yaml:"min" validate:"gte=0"`
}

// Disqualifier is a hard override triggered by a profile condition.
type Disqualifier struct {
	ID     string             `json:"id" yaml:"id" validate:"required"`
	Effect DisqualifierEffect `json:"effect" yaml:"effect"`
}

// DisqualifierEffect either forces a level or zeroes a category.
type DisqualifierEffect struct {
	Kind     string            `json:"kind" yaml:"kind" validate:"required,oneof=force_level zero_category"`
	Level    string            `json:"level,omitempty" yaml:"level,omitempty" validate:"required_if=Kind force_level"`
	Category types.CategoryKey `json:"category,omitempty" yaml:"category,omitempty" validate:"required_if=Kind zero_category"`
}

// StageThreshold maps a minimum percentage to a stage.
type StageThreshold struct {
	Stage types.Stage `json:"stage" yaml:"stage" validate:"required,oneof=NEEDS_WORK DEVELOPING EFFECTIVE COMPETITIVE"`
	Min   float64     `json:"min" yaml:"min" validate:"gte=0,lte=100"`
}

// StageConfig is the global stage table plus optional per-category tables.
type StageConfig struct {
	Global      []StageThreshold                       `json:"global" yaml:"global" validate:"dive"`
	PerCategory map[types.CategoryKey][]StageThreshold `json:"per_category,omitempty" yaml:"per_category,omitempty" validate:"dive,dive"`
}

// AnchorLift raises a category's stage to at least Stage when RuleID matched.
type AnchorLift struct {
	RuleID string      `json:"rule_id" yaml:"rule_id" validate:"required"`
	Stage  types.Stage `json:"stage" yaml:"stage" validate:"required,oneof=NEEDS_WORK DEVELOPING EFFECTIVE COMPETITIVE"`
}

// TierPolicy holds the numeric tier scores and cutoffs used by the weighted reducer.
type TierPolicy struct {
	Scores  TierScores  `json:"scores" yaml:"scores"`
	Cutoffs TierCutoffs `json:"cutoffs" yaml:"cutoffs"`
}

// TierScores maps each tier to a value in [0,1].
type TierScores struct {
	Exceptional      float64 `json:"exceptional" yaml:"exceptional" validate:"gte=0,lte=1"`
	Competitive      float64 `json:"competitive" yaml:"competitive" validate:"gte=0,lte=1"`
	Developing       float64 `json:"developing" yaml:"developing" validate:"gte=0,lte=1"`
	NeedsImprovement float64 `json:"needs_improvement" yaml:"needs_improvement" validate:"gte=0,lte=1"`
	Unknown          float64 `json:"unknown" yaml:"unknown" validate:"gte=0,lte=1"`
}

// TierCutoffs are the minimum normalized scores for each tier.
type TierCutoffs struct {
	Exceptional float64 `json:"exceptional" yaml:"exceptional" validate:"gte=0,lte=1"`
	Competitive float64 `json:"competitive" yaml:"competitive" validate:"gte=0,lte=1"`
	Developing  float64 `json:"developing" yaml:"developing" validate:"gte=0,lte=1"`
}

// Score returns the configured value for a tier.
func (s TierScores) Score(t types.Tier) float64 {
	switch t {
	case types.TierExceptional:
		return s.Exceptional
	case types.TierCompetitive:
		return s.Competitive
	case types.TierDeveloping:
		return s.Developing
	case types.TierNeedsImprovement:
		return s.NeedsImprovement
	default:
		return s.Unknown
	}
}

// Category returns the configuration for key.
func (c *Competitiveness) Category(key types.CategoryKey) (*CategoryConfig, bool) {
	for i := range c.Categories {
		if c.Categories[i].Key == key {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// Weight returns the weight of key, or 0 when the category is not configured.
func (c *Competitiveness) Weight(key types.CategoryKey) float64 {
	if cat, ok := c.Category(key); ok {
		return cat.Weight
	}
	return 0
}

// TotalWeight returns the sum of all category weights.
func (c *Competitiveness) TotalWeight() float64 {
	total := 0.0
	for _, cat := range c.Categories {
		total += cat.Weight
	}
	return total
}

// SortedLevels returns a copy of the level thresholds sorted by Min, descending.
func (c *Competitiveness) SortedLevels() []LevelThreshold {
	return sortedDescending(c.Levels, func(l LevelThreshold) float64 { return l.Min })
}

// StagesFor returns the stage table for a category, falling back to the
// global table, sorted by Min descending.
func (c *Competitiveness) StagesFor(key types.CategoryKey) []StageThreshold {
	table := c.Stages.Global
	if perCat, ok := c.Stages.PerCategory[key]; ok && len(perCat) > 0 {
		table = perCat
	}
	return sortedDescending(table, func(s StageThreshold) float64 { return s.Min })
}

func sortedDescending[T any](in []T, key func(T) float64) []T {
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}
