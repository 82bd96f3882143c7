package metrics

import (
	"regexp"
	"time"

	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/jonathan/competitiveness/internal/types"
)

const (
	// fullTimeHoursPerWeek is the weekly hours at or above which a job is full-time.
	fullTimeHoursPerWeek = 30.0
	// assumedHoursPerWeek is used when an entry does not state its hours.
	assumedHoursPerWeek = 40.0
)

// policeRelatedRoles is the curated set of roles counted as police-related experience.
var policeRelatedRoles = regexp.MustCompile(`(?i)\b(` +
	`security (guard|officer)|` +
	`corrections?(al)? officer|` +
	`by-?law (enforcement )?officer|` +
	`border services|` +
	`(ems|paramedic) support|` +
	`(shelter|crisis) worker|` +
	`loss prevention|` +
	`special constable|` +
	`youth worker|` +
	`(911 )?dispatcher` +
	`)\b`)

var (
	publicFacingRoles = regexp.MustCompile(`(?i)\b(customer service|retail|server|cashier|sales|hospitality|front desk|reception|barista|call cent(er|re))\b`)
	shiftWorkRoles    = regexp.MustCompile(`(?i)\b(night|shift|overnight)\b`)
)

// WorkMetrics summarizes employment history.
type WorkMetrics struct {
	TotalMonthsWorked   int     `json:"total_months_worked"`
	PoliceRelatedMonths int     `json:"police_related_months"`
	FullTimeMonths      int     `json:"full_time_months"`
	TotalWorkHours      float64 `json:"total_work_hours"`
	TotalYearsWorked    float64 `json:"total_years_worked"`
	PoliceRelatedYears  float64 `json:"police_related_years"`
	FullTimeYears       float64 `json:"full_time_years"`
	PublicFacing        bool    `json:"public_facing"`
	ShiftWork           bool    `json:"shift_work"`
	Leadership          bool    `json:"leadership"`
	EntryCount          int     `json:"entry_count"`
}

// IsPoliceRelated reports whether a work entry counts as police-related experience.
func IsPoliceRelated(w types.WorkEntry) bool {
	return w.HasTag("police-related") || policeRelatedRoles.MatchString(w.RoleLabel())
}

// IsFullTime reports whether a work entry is full-time. Entries without hours
// are treated as full-time so that missing data is not penalized.
func IsFullTime(w types.WorkEntry) bool {
	hours, ok := w.HoursPerWeek.Get()
	if !ok {
		return true
	}
	return hours >= fullTimeHoursPerWeek
}

// DeriveWork aggregates work history as of now.
func DeriveWork(entries []types.WorkEntry, now time.Time) WorkMetrics {
	var m WorkMetrics
	m.EntryCount = len(entries)

	for _, w := range entries {
		months := dates.MonthsBetween(w.StartMonth(), w.EndMonth(), w.Current.IsTrue(), now)

		m.TotalMonthsWorked += months
		if IsPoliceRelated(w) {
			m.PoliceRelatedMonths += months
		}
		if IsFullTime(w) {
			m.FullTimeMonths += months
		}

		hours, ok := w.HoursPerWeek.Get()
		if !ok || hours < 0 {
			hours = assumedHoursPerWeek
		}
		m.TotalWorkHours += hours * float64(months) * dates.WeeksPerMonth

		if w.PublicFacing.IsTrue() || w.HasTag("public-facing") || publicFacingRoles.MatchString(w.RoleLabel()) {
			m.PublicFacing = true
		}
		if w.ShiftWork.IsTrue() || w.HasTag("shift") || w.HasTag("shift-work") || shiftWorkRoles.MatchString(w.RoleLabel()) {
			m.ShiftWork = true
		}
		if w.Leadership.IsTrue() || w.HasTag("leadership") {
			m.Leadership = true
		}
	}

	m.TotalYearsWorked = float64(m.TotalMonthsWorked) / 12
	m.PoliceRelatedYears = float64(m.PoliceRelatedMonths) / 12
	m.FullTimeYears = float64(m.FullTimeMonths) / 12
	return m
}
