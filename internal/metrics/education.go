package metrics

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/competitiveness/internal/dates"
	"github.com/jonathan/competitiveness/internal/types"
)

// Credential ranks. Higher is stronger.
const (
	RankOther       = 0
	RankSomePostSec = 1
	RankCertificate = 2
	RankDiploma     = 3
	RankAdvDiploma  = 4
	RankBachelor    = 5
	RankMaster      = 6
	RankDoctorate   = 7

	// postSecondaryRank is the lowest rank that counts as a completed
	// post-secondary credential. Partial studies rank below it.
	postSecondaryRank = RankCertificate
)

// credentialRank pairs a pattern with the rank it assigns.
type credentialRank struct {
	rank    int
	pattern *regexp.Regexp
}

// credentialRanks is checked in order; the first match wins. Qualified phrases
// ("some college", "high school diploma", "associate degree") are checked
// before the bare words they contain. Levels are normalized first so that
// "post-secondary" never reads as "secondary school".
var credentialRanks = []credentialRank{
	{RankDoctorate, regexp.MustCompile(`(?i)\b(ph\.?d|doctor(ate|al)?|ed\.?d)\b`)},
	{RankMaster, regexp.MustCompile(`(?i)\b(master'?s?|mba|m\.?sc|m\.a\.?|llm)\b`)},
	{RankSomePostSec, regexp.MustCompile(`(?i)\b(some|incomplete|partial)\b.*\b(college|university|post-?secondary)\b`)},
	{RankOther, regexp.MustCompile(`(?i)\b(high school|secondary school|ged|grade 12)\b`)},
	{RankDiploma, regexp.MustCompile(`(?i)\bassociate'?s?\b`)},
	{RankAdvDiploma, regexp.MustCompile(`(?i)\b(advanced diploma|post-?grad(uate)? (certificate|diploma)|graduate certificate)\b`)},
	{RankBachelor, regexp.MustCompile(`(?i)\b(bachelor'?s?|baccalaureate|university degree|undergrad(uate)? degree|honours|b\.?sc|b\.a\.?|ba|bba|b\.?comm?|llb|degree)\b`)},
	{RankDiploma, regexp.MustCompile(`(?i)\b(diploma|college|cegep)\b`)},
	{RankCertificate, regexp.MustCompile(`(?i)\b(certificate|apprentice(ship)?|trade|journeyman|red seal)\b`)},
	{RankSomePostSec, regexp.MustCompile(`(?i)\b(post-?secondary|university)\b`)},
}

var postSecondaryPrefix = regexp.MustCompile(`(?i)\bpost[\s-]+secondary`)

var (
	relevantFieldPattern   = regexp.MustCompile(`(?i)(criminolog|justice|police|policing|\blaw\b|security|psycholog|sociolog|social work|forensic|public safety|emergency)`)
	specificProgramPattern = regexp.MustCompile(`(?i)(police foundations|law and security|law & security|community and justice|protection,? security,? and investigation)`)
)

// EducationMetrics summarizes education history.
type EducationMetrics struct {
	HighestCredentialLabel string `json:"highest_credential_label"`
	HighestCredentialScore int    `json:"highest_credential_score"`
	RelevantField          bool   `json:"relevant_field"`
	RelevantDegree         bool   `json:"relevant_degree"`
	SpecificProgram        bool   `json:"specific_program"`
	PostSecondaryCount     int    `json:"post_secondary_count"`
	MonthsSinceGraduation  *int   `json:"months_since_graduation,omitempty"`
	EntryCount             int    `json:"entry_count"`
}

// CredentialRank scores a free-text credential level on the 0..7 scale.
// Unrecognized text ranks as RankOther.
func CredentialRank(level string) int {
	level = strings.TrimSpace(level)
	if level == "" {
		return RankOther
	}
	level = postSecondaryPrefix.ReplaceAllString(level, "postsecondary")
	for _, cr := range credentialRanks {
		if cr.pattern.MatchString(level) {
			return cr.rank
		}
	}
	return RankOther
}

// DeriveEducation selects the highest credential across all entries and
// collects program relevance and recency signals.
func DeriveEducation(entries []types.EducationEntry, now time.Time) EducationMetrics {
	m := EducationMetrics{EntryCount: len(entries)}

	best := -1
	var latestGrad dates.YearMonth
	haveGrad := false

	for _, e := range entries {
		level := e.LevelText()
		rank := CredentialRank(level)
		if rank > best {
			best = rank
			m.HighestCredentialScore = rank
			m.HighestCredentialLabel = level
			if level == "" {
				m.HighestCredentialLabel = "Other"
			}
		}

		text := e.ProgramText() + " " + level
		relevant := relevantFieldPattern.MatchString(text)
		if relevant {
			m.RelevantField = true
		}
		if relevant && rank >= RankBachelor {
			m.RelevantDegree = true
		}
		if rank >= RankDiploma && specificProgramPattern.MatchString(text) {
			m.SpecificProgram = true
		}
		if rank >= postSecondaryRank {
			m.PostSecondaryCount++
		}

		if e.Current.IsTrue() {
			continue
		}
		if ym, ok := dates.ParseYearMonth(e.EndMonth()); ok {
			if !haveGrad || latestGrad.Before(ym) {
				latestGrad = ym
				haveGrad = true
			}
		}
	}

	if haveGrad {
		since := dates.MonthsSince(latestGrad, now)
		m.MonthsSinceGraduation = &since
	}
	return m
}
