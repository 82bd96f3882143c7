package profile

import (
	"strings"

	"github.com/jonathan/competitiveness/internal/types"
)

// Normalize trims text fields, drops entries that carry no information and
// deduplicates languages. It never rejects a profile.
func Normalize(p *types.Profile) {
	p.WorkHistory = filterWork(p.WorkHistory)
	p.VolunteerHistory = filterVolunteer(p.VolunteerHistory)
	p.EducationDetails = filterEducation(p.EducationDetails)
	p.CertsDetails = filterCerts(p.CertsDetails)
	p.RefsList = filterRefs(p.RefsList)
	p.DriverLicenceClass = strings.ToUpper(strings.TrimSpace(p.DriverLicenceClass))
	p.Languages = NormalizeLanguages(p.Languages)
}

// NormalizeLanguages trims and deduplicates languages case-insensitively,
// keeping the first spelling seen.
func NormalizeLanguages(langs []string) []string {
	if langs == nil {
		return nil
	}
	normalized := make([]string, 0, len(langs))
	seen := make(map[string]struct{})

	for _, lang := range langs {
		l := strings.TrimSpace(lang)
		if l == "" {
			continue
		}
		key := strings.ToLower(l)
		if _, exists := seen[key]; !exists {
			normalized = append(normalized, l)
			seen[key] = struct{}{}
		}
	}
	return normalized
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func filterWork(in []types.WorkEntry) []types.WorkEntry {
	out := in[:0:0]
	for _, w := range in {
		trimAll(&w.Employer, &w.Role, &w.Title, &w.StartDate, &w.Start, &w.From, &w.EndDate, &w.End, &w.To)
		if w.Employer == "" && w.RoleLabel() == "" && w.StartMonth() == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

func filterVolunteer(in []types.VolunteerEntry) []types.VolunteerEntry {
	out := in[:0:0]
	for _, v := range in {
		trimAll(&v.Organization, &v.Org, &v.Role, &v.StartDate, &v.EndDate, &v.Date, &v.RoleType)
		if v.OrganizationName() == "" && v.Role == "" && v.StartMonth() == "" && v.TotalHours.IsZero() {
			continue
		}
		out = append(out, v)
	}
	return out
}

func filterEducation(in []types.EducationEntry) []types.EducationEntry {
	out := in[:0:0]
	for _, e := range in {
		trimAll(&e.Institution, &e.CredentialLevel, &e.Level, &e.Program, &e.Field, &e.EndDate, &e.GraduationDate)
		if e.Institution == "" && e.LevelText() == "" && e.ProgramText() == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func filterCerts(in []types.CertEntry) []types.CertEntry {
	out := in[:0:0]
	for _, c := range in {
		trimAll(&c.Name, &c.Type, &c.IssueDate, &c.Issued, &c.ExpiryDate)
		if c.Label() == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func filterRefs(in []types.ReferenceEntry) []types.ReferenceEntry {
	out := in[:0:0]
	for _, r := range in {
		trimAll(&r.Name, &r.Relationship, &r.Context, &r.Email, &r.Phone)
		if r.Name == "" && r.Relationship == "" && r.Context == "" && r.Email == "" && r.Phone == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
