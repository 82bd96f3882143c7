package scoring

import (
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/types"
)

// disqualifierChecks maps a disqualifier id to the condition that triggers it.
// Ids without a check never trigger.
var disqualifierChecks = map[string]func(f *Facts) bool{
	config.DisqualifierMajorConduct: func(f *Facts) bool {
		return f.Profile.ConductNoMajorIssues.IsFalse()
	},
	config.DisqualifierLicenceSuspended: func(f *Facts) bool {
		return f.Profile.DriverLicenceSuspended.IsTrue()
	},
}

// Triggered returns the ids of every disqualifier in the policy that the facts trigger.
func Triggered(f *Facts, policy *config.Competitiveness) []string {
	var ids []string
	for _, d := range policy.Disqualifiers {
		if check, ok := disqualifierChecks[d.ID]; ok && check(f) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// applyDisqualifiers applies triggered disqualifiers to result. The first
// force_level disqualifier sets the level; zero_category effects clear the
// named category and are recorded in Flags.
func applyDisqualifiers(result *types.EvaluationResult, f *Facts, policy *config.Competitiveness) {
	for _, d := range policy.Disqualifiers {
		check, ok := disqualifierChecks[d.ID]
		if !ok || !check(f) {
			continue
		}

		switch d.Effect.Kind {
		case config.EffectForceLevel:
			if result.Disqualified {
				continue
			}
			result.Disqualified = true
			result.DisqualifierID = d.ID
			result.Level = d.Effect.Level
		case config.EffectZeroCategory:
			if detail := result.Detail(d.Effect.Category); detail != nil {
				detail.CappedPoints = 0
				detail.Zeroed = true
			}
			result.Flags = append(result.Flags, d.ID)
		}
	}
}
