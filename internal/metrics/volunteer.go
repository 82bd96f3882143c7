package metrics

import (
	"strings"
	"time"

	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/jonathan/competitiveness/internal/types"
)

// trailingWindowMonths is the size of the "recent volunteering" window.
const trailingWindowMonths = 12

// VolunteerMetrics summarizes volunteer history.
type VolunteerMetrics struct {
	TotalVolunteerHours        float64 `json:"total_volunteer_hours"`
	AvgVolunteerHoursPerYear   float64 `json:"avg_volunteer_hours_per_year"`
	AvgHoursPerMonth           float64 `json:"avg_hours_per_month"`
	Last12MonthsVolunteerHours float64 `json:"last_12_months_volunteer_hours"`
	CommitmentMonths           int     `json:"commitment_months"`
	LeadRole                   bool    `json:"lead_role"`
	PublicFacing               bool    `json:"public_facing"`
	Organizations              int     `json:"organizations"`
	EntryCount                 int     `json:"entry_count"`
}

// EntryHours returns the hours an entry represents: the explicit total when
// given, otherwise weekly hours over the entry's months.
func EntryHours(v types.VolunteerEntry, now time.Time) float64 {
	if total, ok := v.TotalHours.Get(); ok {
		return max(total, 0)
	}
	weekly, ok := v.HoursPerWeek.Get()
	if !ok || weekly <= 0 {
		return 0
	}
	months := dates.MonthsBetween(v.StartMonth(), v.EndMonth(), v.Current.IsTrue(), now)
	return weekly * float64(months) * dates.WeeksPerMonth
}

// DeriveVolunteer aggregates volunteer history as of now.
func DeriveVolunteer(entries []types.VolunteerEntry, now time.Time) VolunteerMetrics {
	var m VolunteerMetrics
	m.EntryCount = len(entries)

	window := dates.TrailingWindow(now, trailingWindowMonths)
	orgs := make(map[string]bool)

	var earliest, latest dates.YearMonth
	haveSpan := false

	for _, v := range entries {
		hours := EntryHours(v, now)
		m.TotalVolunteerHours += hours

		if name := strings.ToLower(v.OrganizationName()); name != "" {
			orgs[name] = true
		}
		if v.IsLead() {
			m.LeadRole = true
		}
		if v.PublicFacing.IsTrue() {
			m.PublicFacing = true
		}

		span, ok := dates.ResolveSpan(v.StartMonth(), v.EndMonth(), v.Current.IsTrue(), now)
		if !ok {
			continue
		}
		if !haveSpan || span.Start.Before(earliest) {
			earliest = span.Start
		}
		if !haveSpan || latest.Before(span.End) {
			latest = span.End
		}
		haveSpan = true

		m.Last12MonthsVolunteerHours += recentHours(v, span, window, hours)
	}

	m.Organizations = len(orgs)
	if haveSpan {
		m.CommitmentMonths = max(dates.Span{Start: earliest, End: latest}.Months(), 1)
	}

	spanYears := max(float64(m.CommitmentMonths)/12, 1)
	m.AvgVolunteerHoursPerYear = m.TotalVolunteerHours / spanYears
	m.AvgHoursPerMonth = m.TotalVolunteerHours / float64(max(m.CommitmentMonths, 1))
	return m
}

// recentHours returns the part of an entry's hours that falls inside window.
func recentHours(v types.VolunteerEntry, span, window dates.Span, hours float64) float64 {
	entryMonths := span.Months()
	if entryMonths == 0 {
		if window.Contains(span.Start) {
			return hours
		}
		return 0
	}

	overlap := dates.OverlapMonths(span, window)
	if overlap == 0 {
		return 0
	}
	if _, ok := v.TotalHours.Get(); ok {
		return hours * float64(overlap) / float64(entryMonths)
	}
	weekly, _ := v.HoursPerWeek.Get()
	return max(weekly, 0) * float64(overlap) * dates.WeeksPerMonth
}
