package tiers

import (
	"fmt"
	"strings"

	"github.com/jonathan/competitiveness/internal/metrics"
	"github.com/jonathan/competitiveness/internal/scoring"
	"github.com/jonathan/competitiveness/internal/types"
)

const (
	eduAnchorRank       = metrics.RankDiploma
	recentGradMonths    = 60
	workAnchorFTYears   = 3.0
	workAnchorRelevant  = 12
	volAnchorCommitment = 12
	volAnchorHours      = 100.0
	volRecentHours      = 50.0
	recentCertMonths    = 24
	refAnchorCount      = 3
	refWideCount        = 4
	refLongTenure       = 2
)

// statusSeparator joins the fragments of a status summary.
const statusSeparator = " • "

// signals is the evidence gathered for one category.
type signals struct {
	anchor     bool
	anchorNote string
	supporting []string
	info       bool
}

func (s *signals) support(ok bool, note string) {
	if ok {
		s.supporting = append(s.supporting, note)
	}
}

func (s signals) status() string {
	if !s.info {
		return "No information provided"
	}
	parts := append([]string{s.anchorNote}, s.supporting...)
	return strings.Join(parts, statusSeparator)
}

var collectors = map[types.CategoryKey]func(f *scoring.Facts) signals{
	types.CategoryEducation:  educationSignals,
	types.CategoryWork:       workSignals,
	types.CategoryVolunteer:  volunteerSignals,
	types.CategoryCerts:      certSignals,
	types.CategoryFitness:    fitnessSignals,
	types.CategoryDriving:    drivingSignals,
	types.CategoryBackground: backgroundSignals,
	types.CategorySoftSkills: softSkillSignals,
	types.CategoryReferences: referenceSignals,
}

func metOrNot(met bool) string {
	if met {
		return "met"
	}
	return "not met"
}

func educationSignals(f *scoring.Facts) signals {
	e := f.Metrics.Education
	s := signals{
		anchor: e.HighestCredentialScore >= eduAnchorRank,
		info:   e.EntryCount > 0,
	}
	s.anchorNote = fmt.Sprintf("Education anchor %s (%s)", metOrNot(s.anchor), e.HighestCredentialLabel)
	s.support(e.RelevantField, "relevant field")
	s.support(e.SpecificProgram, "specific program")
	s.support(e.MonthsSinceGraduation != nil && *e.MonthsSinceGraduation <= recentGradMonths, "recent graduate")
	s.support(e.PostSecondaryCount >= 2, fmt.Sprintf("%d post-secondary credentials", e.PostSecondaryCount))
	return s
}

func workSignals(f *scoring.Facts) signals {
	w := f.Metrics.Work
	s := signals{
		anchor: w.FullTimeYears >= workAnchorFTYears || w.PoliceRelatedMonths >= workAnchorRelevant,
		info:   w.EntryCount > 0,
	}
	s.anchorNote = fmt.Sprintf("Experience anchor %s (%dy FT / %dm relevant)", metOrNot(s.anchor), int(w.FullTimeYears), w.PoliceRelatedMonths)
	s.support(w.PublicFacing, "public-facing")
	s.support(w.Leadership, "leadership")
	s.support(w.ShiftWork, "shift work")
	s.support(w.PoliceRelatedMonths > 0, "police-related exposure")
	return s
}

func volunteerSignals(f *scoring.Facts) signals {
	v := f.Metrics.Volunteer
	s := signals{
		anchor: v.CommitmentMonths >= volAnchorCommitment && v.TotalVolunteerHours >= volAnchorHours,
		info:   v.EntryCount > 0,
	}
	s.anchorNote = fmt.Sprintf("Volunteer anchor %s (%dm / %.0fh)", metOrNot(s.anchor), v.CommitmentMonths, v.TotalVolunteerHours)
	s.support(v.Last12MonthsVolunteerHours >= volRecentHours, "active in last 12 months")
	s.support(v.LeadRole, "lead role")
	s.support(v.PublicFacing, "public-facing")
	s.support(v.Organizations >= 2, fmt.Sprintf("%d organizations", v.Organizations))
	return s
}

func certSignals(f *scoring.Facts) signals {
	c := f.Metrics.Certs
	s := signals{anchor: c.FirstAidCPR, info: c.EntryCount > 0}
	if s.anchor {
		s.anchorNote = "First aid/CPR held"
	} else {
		s.anchorNote = "No first aid/CPR"
	}
	s.support(c.MentalHealth, "mental health")
	s.support(c.DeEscalation, "de-escalation")
	s.support(c.Naloxone, "naloxone")
	s.support(c.MonthsSinceLatest != nil && *c.MonthsSinceLatest <= recentCertMonths, "recent certification")
	return s
}

func fitnessSignals(f *scoring.Facts) signals {
	p := f.Profile
	s := signals{
		anchor: p.FitnessPrepObservedVerified.IsTrue(),
		info:   !p.FitnessPrepObservedVerified.IsZero() || !p.FitnessPrepDigitalAttempted.IsZero(),
	}
	if s.anchor {
		s.anchorNote = "Observed fitness test verified"
	} else {
		s.anchorNote = "No verified fitness test"
	}
	s.support(p.FitnessPrepDigitalAttempted.IsTrue(), "digital prep attempted")
	return s
}

func drivingSignals(f *scoring.Facts) signals {
	p := f.Profile
	licence := f.Licence()
	clean := p.DriverCleanAbstract.IsTrue()
	s := signals{
		anchor: licence == scoring.LicenceFull && clean,
		info:   strings.TrimSpace(p.DriverLicenceClass) != "" || !p.DriverCleanAbstract.IsZero(),
	}
	if s.anchor {
		s.anchorNote = "Full licence with clean abstract"
	} else {
		s.anchorNote = "Full licence with clean abstract not shown"
	}
	s.support(licence != scoring.LicenceNone, fmt.Sprintf("licence held (%s)", strings.TrimSpace(p.DriverLicenceClass)))
	s.support(clean, "clean abstract")
	return s
}

func backgroundSignals(f *scoring.Facts) signals {
	p := f.Profile
	s := signals{
		anchor: p.ConductNoMajorIssues.IsTrue(),
		info:   !p.ConductNoMajorIssues.IsZero(),
	}
	if s.anchor {
		s.anchorNote = "No major conduct issues"
	} else {
		s.anchorNote = "Major conduct issue reported"
	}
	s.support(p.DriverCleanAbstract.IsTrue(), "clean abstract")
	return s
}

func softSkillSignals(f *scoring.Facts) signals {
	m := f.Metrics
	s := signals{
		anchor: m.Work.PublicFacing || m.Volunteer.PublicFacing,
		info:   m.Work.EntryCount > 0 || m.Volunteer.EntryCount > 0 || len(f.Profile.Languages) > 0,
	}
	if s.anchor {
		s.anchorNote = "Public contact experience"
	} else {
		s.anchorNote = "No public contact experience"
	}
	s.support(f.SecondLanguage(), "second language")
	s.support(m.Work.Leadership, "work leadership")
	s.support(m.Volunteer.LeadRole, "volunteer lead")
	return s
}

func referenceSignals(f *scoring.Facts) signals {
	n := f.ReferenceCount()
	s := signals{anchor: n >= refAnchorCount, info: n > 0}
	s.anchorNote = fmt.Sprintf("%d references", n)
	if n == 1 {
		s.anchorNote = "1 reference"
	}
	s.support(f.LongTenureReferences() >= refLongTenure, "known 2+ years")
	s.support(f.DiverseReferences(), "diverse contexts")
	s.support(n >= refWideCount, "wide reference pool")
	return s
}
