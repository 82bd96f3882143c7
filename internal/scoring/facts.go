// Package scoring evaluates a profile against a competitiveness policy,
// producing capped per-category points, a total, a level and a stage view.
package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/competitiveness/internal/metrics"
	"github.com/jonathan/competitiveness/internal/types"
)

// Facts is everything a rule predicate may look at: the raw profile and the
// metrics derived from it at a fixed point in time.
type Facts struct {
	Profile *types.Profile
	Metrics metrics.Metrics
	AsOf    time.Time
}

// NewFacts derives metrics for p as of asOf. A nil profile is treated as empty.
func NewFacts(p *types.Profile, asOf time.Time) *Facts {
	if p == nil {
		p = &types.Profile{}
	}
	return &Facts{
		Profile: p,
		Metrics: metrics.Derive(p, asOf),
		AsOf:    asOf,
	}
}

// LicenceKind classifies a driver's licence class.
type LicenceKind int

const (
	LicenceNone LicenceKind = iota
	LicenceProbationary
	LicenceFull
)

var (
	probationaryClasses = map[string]bool{"G1": true, "G2": true, "7": true, "N": true, "L": true, "M1": true, "M2": true, "GDL": true}
	fullClasses         = map[string]bool{
		"G": true, "5": true, "FULL": true, "A": true, "AZ": true, "B": true, "BZ": true, "C": true, "CZ": true,
		"D": true, "DZ": true, "E": true, "EZ": true, "F": true, "1": true, "2": true, "3": true, "4": true,
	}
)

// ClassifyLicence maps a free-text licence class to a LicenceKind.
// Unrecognized classes are treated as no licence.
func ClassifyLicence(class string) LicenceKind {
	c := strings.ToUpper(strings.TrimSpace(class))
	c = strings.TrimSpace(strings.TrimPrefix(c, "CLASS"))
	switch {
	case c == "":
		return LicenceNone
	case probationaryClasses[c]:
		return LicenceProbationary
	case fullClasses[c]:
		return LicenceFull
	default:
		return LicenceNone
	}
}

// Licence returns the licence kind of the profile.
func (f *Facts) Licence() LicenceKind {
	return ClassifyLicence(f.Profile.DriverLicenceClass)
}

// SecondLanguage reports whether the candidate speaks a language besides English,
// or lists at least two distinct languages.
func (f *Facts) SecondLanguage() bool {
	distinct := make(map[string]bool)
	for _, lang := range f.Profile.Languages {
		if l := strings.ToLower(strings.TrimSpace(lang)); l != "" {
			distinct[l] = true
		}
	}
	if len(distinct) >= 2 {
		return true
	}
	for l := range distinct {
		if l != "english" {
			return true
		}
	}
	return false
}

// ReferenceCount returns the number of listed references.
func (f *Facts) ReferenceCount() int {
	return len(f.Profile.RefsList)
}

// LongTenureReferences returns how many references have known the candidate two years or more.
func (f *Facts) LongTenureReferences() int {
	n := 0
	for _, r := range f.Profile.RefsList {
		if r.Known2Y.IsTrue() {
			n++
		}
	}
	return n
}

// DiverseReferences reports whether references come from more than one context.
func (f *Facts) DiverseReferences() bool {
	contexts := make(map[string]bool)
	for _, r := range f.Profile.RefsList {
		if r.DiverseContext.IsTrue() {
			return true
		}
		ctx := strings.ToLower(strings.TrimSpace(r.Context))
		if ctx == "" {
			ctx = strings.ToLower(strings.TrimSpace(r.Relationship))
		}
		if ctx != "" {
			contexts[ctx] = true
		}
	}
	return len(contexts) >= 2
}
