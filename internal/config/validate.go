package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/competitiveness/internal/types"
)

// weightTotal is the sum every policy's category weights must reach.
const weightTotal = 100.0

// ValidationError lists every problem found in a policy.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid competitiveness policy:\n")
	for i, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, p))
	}
	return sb.String()
}

// Validate checks struct constraints and the semantic invariants of the policy:
// known and unique categories, unique rule ids, weights summing to 100 and
// disqualifier effects that reference configured categories.
func (c *Competitiveness) Validate() error {
	var problems []string

	if err := validator.New().Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s: failed '%s' constraint", fe.Namespace(), fe.Tag()))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	seen := make(map[types.CategoryKey]bool)
	for _, cat := range c.Categories {
		if !cat.Key.IsValid() {
			problems = append(problems, fmt.Sprintf("unknown category %q", cat.Key))
		}
		if seen[cat.Key] {
			problems = append(problems, fmt.Sprintf("duplicate category %q", cat.Key))
		}
		seen[cat.Key] = true

		ruleIDs := make(map[string]bool)
		for _, r := range cat.Rules {
			if ruleIDs[r.ID] {
				problems = append(problems, fmt.Sprintf("duplicate rule %q in category %q", r.ID, cat.Key))
			}
			ruleIDs[r.ID] = true
			if r.Cap > 0 && !r.Repeatable && r.CapCategory == "" {
				problems = append(problems, fmt.Sprintf("rule %q has a cap but is not repeatable", r.ID))
			}
		}
	}

	if total := c.TotalWeight(); math.Abs(total-weightTotal) > 1e-9 {
		problems = append(problems, fmt.Sprintf("category weights sum to %g, want %g", total, weightTotal))
	}

	for _, d := range c.Disqualifiers {
		if d.Effect.Kind == EffectZeroCategory && !seen[d.Effect.Category] {
			problems = append(problems, fmt.Sprintf("disqualifier %q zeroes unconfigured category %q", d.ID, d.Effect.Category))
		}
	}

	for key := range c.Stages.PerCategory {
		if !key.IsValid() {
			problems = append(problems, fmt.Sprintf("stage table for unknown category %q", key))
		}
	}

	cut := c.Tiers.Cutoffs
	if !(cut.Exceptional >= cut.Competitive && cut.Competitive >= cut.Developing) {
		problems = append(problems, "tier cutoffs must be ordered exceptional >= competitive >= developing")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
