package metrics

import (
	"regexp"
	"time"

	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/jonathan/competitiveness/internal/types"
)

var (
	firstAidPattern     = regexp.MustCompile(`(?i)(first aid|\bcpr\b|\baed\b|basic life support|\bbls\b)`)
	mentalHealthPattern = regexp.MustCompile(`(?i)(mental health|\basist\b|safetalk|suicide intervention)`)
	deEscalationPattern = regexp.MustCompile(`(?i)(de-?escalation|\bcpi\b|crisis intervention|non-?violent|nonviolent)`)
	naloxonePattern     = regexp.MustCompile(`(?i)(naloxone|narcan)`)
)

// mentalHealthFirstAidPattern is removed from a label before the first aid
// check. The course is mental health training, not first aid.
var mentalHealthFirstAidPattern = regexp.MustCompile(`(?i)mental health first aid`)

// CertMetrics summarizes certifications and training.
type CertMetrics struct {
	FirstAidCPR       bool `json:"first_aid_cpr"`
	MentalHealth      bool `json:"mental_health"`
	DeEscalation      bool `json:"de_escalation"`
	Naloxone          bool `json:"naloxone"`
	ExtraRelevant     int  `json:"extra_relevant"`
	MonthsSinceLatest *int `json:"months_since_latest,omitempty"`
	EntryCount        int  `json:"entry_count"`
}

// DeriveCerts classifies certifications by keyword and finds the most recent issue date.
func DeriveCerts(entries []types.CertEntry, now time.Time) CertMetrics {
	m := CertMetrics{EntryCount: len(entries)}

	var latest dates.YearMonth
	haveLatest := false

	for _, c := range entries {
		label := c.Label()
		classified := false
		if firstAidPattern.MatchString(mentalHealthFirstAidPattern.ReplaceAllString(label, "")) {
			m.FirstAidCPR = true
			classified = true
		}
		if mentalHealthPattern.MatchString(label) {
			m.MentalHealth = true
			classified = true
		}
		if deEscalationPattern.MatchString(label) {
			m.DeEscalation = true
			classified = true
		}
		if naloxonePattern.MatchString(label) {
			m.Naloxone = true
			classified = true
		}
		if !classified && label != "" {
			m.ExtraRelevant++
		}

		if ym, ok := dates.ParseYearMonth(c.IssueMonth()); ok {
			if !haveLatest || latest.Before(ym) {
				latest = ym
				haveLatest = true
			}
		}
	}

	if haveLatest {
		since := dates.MonthsSince(latest, now)
		m.MonthsSinceLatest = &since
	}
	return m
}
