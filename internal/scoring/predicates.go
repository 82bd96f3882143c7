package scoring

import (
	"github.com/jonathan/competitiveness/internal/config"
	"github.com/jonathan/competitiveness/internal/metrics"
	"github.com/jonathan/competitiveness/internal/types"
)

// Predicate computes a rule's raw contribution: 1 or 0 for boolean rules, a
// unit count for repeatable rules.
type Predicate func(f *Facts) float64

// Thresholds referenced by the default rule predicates.
const (
	recentGraduationMonths = 60
	recentCertMonths       = 24

	relevantLongMonths  = 36
	relevantShortMonths = 12
	fullTimeLongMonths  = 36
	fullTimeShortMonths = 12
	continuousFTYears   = 2.0

	volHighHoursPerMonth = 8.0
	volHighCommitment    = 12
	volMidHoursPerMonth  = 4.0
	volMidCommitment     = 6
	volRecentHours       = 50.0

	longTenureReferences = 2
)

// predicates maps (category, rule id) to the function that scores it.
var predicates = map[types.CategoryKey]map[string]Predicate{
	types.CategoryEducation: {
		config.RuleEduBachelorRelevant:   educationTier(config.RuleEduBachelorRelevant),
		config.RuleEduDiplomaSpecific:    educationTier(config.RuleEduDiplomaSpecific),
		config.RuleEduPostSecondary:      educationTier(config.RuleEduPostSecondary),
		config.RuleEduHighSchool:         educationTier(config.RuleEduHighSchool),
		config.RuleEduRecentGrad:         recentGraduate,
		config.RuleEduExtraPostSecondary: extraPostSecondary,
	},
	types.CategoryWork: {
		config.RuleWorkRelevant3Y:   workTier(config.RuleWorkRelevant3Y),
		config.RuleWorkRelevant1Y:   workTier(config.RuleWorkRelevant1Y),
		config.RuleWorkFullTime3Y:   workTier(config.RuleWorkFullTime3Y),
		config.RuleWorkFullTime1Y:   workTier(config.RuleWorkFullTime1Y),
		config.RuleWorkLeadership:   workTier(config.RuleWorkLeadership),
		config.RuleWorkPublicFacing: publicFacingWork,
		config.RuleWorkShift:        shiftWork,
		config.RuleWorkContinuous:   continuousTenure,
	},
	types.CategoryVolunteer: {
		config.RuleVolSustainedHigh: volunteerTier(config.RuleVolSustainedHigh),
		config.RuleVolSustainedMid:  volunteerTier(config.RuleVolSustainedMid),
		config.RuleVolOccasional:    volunteerTier(config.RuleVolOccasional),
		config.RuleVolRecent:        recentVolunteering,
		config.RuleVolLead:          volunteerLead,
	},
	types.CategoryCerts: {
		config.RuleCertFirstAid:     firstAid,
		config.RuleCertMentalHealth: mentalHealthTraining,
		config.RuleCertDeEscalation: deEscalationTraining,
		config.RuleCertNaloxone:     naloxoneTraining,
		config.RuleCertExtra:        extraCerts,
		config.RuleCertRecent:       recentCert,
	},
	types.CategoryFitness: {
		config.RuleFitObservedVerified: fitnessObserved,
		config.RuleFitDigitalAttempted: fitnessDigitalOnly,
	},
	types.CategoryDriving: {
		config.RuleDrvFullClean:    fullLicenceClean,
		config.RuleDrvFull:         fullLicenceOnly,
		config.RuleDrvProbationary: probationaryLicence,
	},
	types.CategoryBackground: {
		config.RuleBgNoMajorIssues: noMajorConductIssues,
		config.RuleBgCleanAbstract: cleanAbstract,
	},
	types.CategorySoftSkills: {
		config.RuleSoftPublicContact:  publicContact,
		config.RuleSoftSecondLanguage: secondLanguage,
		config.RuleSoftLeadership:     anyLeadership,
	},
	types.CategoryReferences: {
		config.RuleRefThreePlus:  referenceCountAtLeast(3),
		config.RuleRefTwo:        referenceCountExactly(2),
		config.RuleRefOne:        referenceCountExactly(1),
		config.RuleRefLongTenure: longTenureReferencesMet,
		config.RuleRefDiverse:    diverseReferences,
	},
}

// LookupPredicate returns the predicate for a rule, or nil when none is registered.
func LookupPredicate(category types.CategoryKey, ruleID string) Predicate {
	return predicates[category][ruleID]
}

// educationTier returns a predicate that holds when id is the candidate's
// single education tier.
func educationTier(id string) Predicate {
	return func(f *Facts) float64 {
		return boolf(EducationTier(f) == id)
	}
}

// EducationTier returns the mutually exclusive education rule the profile
// qualifies for, in precedence order, or "" when there is no education data.
// Partial post-secondary studies qualify for edu_post_secondary, while
// edu_extra_post_secondary only counts completed credentials
// (metrics.EducationMetrics.PostSecondaryCount).
func EducationTier(f *Facts) string {
	e := f.Metrics.Education
	switch {
	case e.RelevantDegree:
		return config.RuleEduBachelorRelevant
	case e.SpecificProgram:
		return config.RuleEduDiplomaSpecific
	case e.HighestCredentialScore >= metrics.RankSomePostSec:
		return config.RuleEduPostSecondary
	case e.EntryCount > 0:
		return config.RuleEduHighSchool
	default:
		return ""
	}
}

func workTier(id string) Predicate {
	return func(f *Facts) float64 {
		return boolf(WorkTier(f) == id)
	}
}

// WorkTier returns the work experience tier: police-related years first,
// then full-time tenure, then the leadership path.
func WorkTier(f *Facts) string {
	w := f.Metrics.Work
	switch {
	case w.PoliceRelatedMonths >= relevantLongMonths:
		return config.RuleWorkRelevant3Y
	case w.PoliceRelatedMonths >= relevantShortMonths:
		return config.RuleWorkRelevant1Y
	case w.FullTimeMonths >= fullTimeLongMonths:
		return config.RuleWorkFullTime3Y
	case w.FullTimeMonths >= fullTimeShortMonths:
		return config.RuleWorkFullTime1Y
	case w.Leadership && w.TotalMonthsWorked > 0:
		return config.RuleWorkLeadership
	default:
		return ""
	}
}

func volunteerTier(id string) Predicate {
	return func(f *Facts) float64 {
		return boolf(VolunteerTier(f) == id)
	}
}

// VolunteerTier returns the sustained-commitment volunteer tier.
func VolunteerTier(f *Facts) string {
	v := f.Metrics.Volunteer
	switch {
	case v.CommitmentMonths >= volHighCommitment && v.AvgHoursPerMonth >= volHighHoursPerMonth:
		return config.RuleVolSustainedHigh
	case v.CommitmentMonths >= volMidCommitment && v.AvgHoursPerMonth >= volMidHoursPerMonth:
		return config.RuleVolSustainedMid
	case v.TotalVolunteerHours > 0:
		return config.RuleVolOccasional
	default:
		return ""
	}
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func recentGraduate(f *Facts) float64 {
	since := f.Metrics.Education.MonthsSinceGraduation
	return boolf(since != nil && *since <= recentGraduationMonths)
}

func extraPostSecondary(f *Facts) float64 {
	return float64(max(f.Metrics.Education.PostSecondaryCount-1, 0))
}

func publicFacingWork(f *Facts) float64 {
	return boolf(f.Metrics.Work.PublicFacing)
}

func shiftWork(f *Facts) float64 {
	return boolf(f.Metrics.Work.ShiftWork)
}

// continuousTenure approximates near-continuous employment by full-time years.
func continuousTenure(f *Facts) float64 {
	return boolf(f.Metrics.Work.FullTimeYears >= continuousFTYears)
}

func recentVolunteering(f *Facts) float64 {
	return boolf(f.Metrics.Volunteer.Last12MonthsVolunteerHours >= volRecentHours)
}

func volunteerLead(f *Facts) float64 {
	return boolf(f.Metrics.Volunteer.LeadRole)
}

func firstAid(f *Facts) float64 {
	return boolf(f.Metrics.Certs.FirstAidCPR)
}

func mentalHealthTraining(f *Facts) float64 {
	return boolf(f.Metrics.Certs.MentalHealth)
}

func deEscalationTraining(f *Facts) float64 {
	return boolf(f.Metrics.Certs.DeEscalation)
}

func naloxoneTraining(f *Facts) float64 {
	return boolf(f.Metrics.Certs.Naloxone)
}

func extraCerts(f *Facts) float64 {
	return float64(f.Metrics.Certs.ExtraRelevant)
}

func recentCert(f *Facts) float64 {
	since := f.Metrics.Certs.MonthsSinceLatest
	return boolf(since != nil && *since <= recentCertMonths)
}

func fitnessObserved(f *Facts) float64 {
	return boolf(f.Profile.FitnessPrepObservedVerified.IsTrue())
}

func fitnessDigitalOnly(f *Facts) float64 {
	p := f.Profile
	return boolf(!p.FitnessPrepObservedVerified.IsTrue() && p.FitnessPrepDigitalAttempted.IsTrue())
}

func fullLicenceClean(f *Facts) float64 {
	return boolf(f.Licence() == LicenceFull && f.Profile.DriverCleanAbstract.IsTrue())
}

func fullLicenceOnly(f *Facts) float64 {
	return boolf(f.Licence() == LicenceFull && !f.Profile.DriverCleanAbstract.IsTrue())
}

func probationaryLicence(f *Facts) float64 {
	return boolf(f.Licence() == LicenceProbationary)
}

func noMajorConductIssues(f *Facts) float64 {
	return boolf(f.Profile.ConductNoMajorIssues.IsTrue())
}

func cleanAbstract(f *Facts) float64 {
	return boolf(f.Profile.DriverCleanAbstract.IsTrue())
}

func publicContact(f *Facts) float64 {
	return boolf(f.Metrics.Work.PublicFacing || f.Metrics.Volunteer.PublicFacing)
}

func secondLanguage(f *Facts) float64 {
	return boolf(f.SecondLanguage())
}

func anyLeadership(f *Facts) float64 {
	return boolf(f.Metrics.Work.Leadership || f.Metrics.Volunteer.LeadRole)
}

func referenceCountAtLeast(n int) Predicate {
	return func(f *Facts) float64 {
		return boolf(f.ReferenceCount() >= n)
	}
}

func referenceCountExactly(n int) Predicate {
	return func(f *Facts) float64 {
		return boolf(f.ReferenceCount() == n)
	}
}

func longTenureReferencesMet(f *Facts) float64 {
	return boolf(f.LongTenureReferences() >= longTenureReferences)
}

func diverseReferences(f *Facts) float64 {
	return boolf(f.DiverseReferences())
}
