// Package types provides type definitions for profile documents and evaluation results.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Profile is the self-reported candidate history consumed by the evaluator.
// Every field is optional; absent data contributes nothing to any score.
type Profile struct {
	WorkHistory      []WorkEntry      `json:"work_history,omitempty"`
	VolunteerHistory []VolunteerEntry `json:"volunteer_history,omitempty"`
	EducationDetails []EducationEntry `json:"education_details,omitempty"`
	CertsDetails     []CertEntry      `json:"certs_details,omitempty"`
	RefsList         []ReferenceEntry `json:"refs_list,omitempty"`

	DriverLicenceClass          string   `json:"driver_licence_class,omitempty"`
	DriverCleanAbstract         Flag     `json:"driver_clean_abstract,omitzero"`
	DriverLicenceSuspended      Flag     `json:"driver_licence_suspended,omitzero"`
	ConductNoMajorIssues        Flag     `json:"conduct_no_major_issues,omitzero"`
	FitnessPrepObservedVerified Flag     `json:"fitness_prep_observed_verified,omitzero"`
	FitnessPrepDigitalAttempted Flag     `json:"fitness_prep_digital_attempted,omitzero"`
	Languages                   []string `json:"languages,omitempty"`
}

// WorkEntry is a single employment record. Start/End/From/To are legacy
// aliases of StartDate/EndDate kept for older profile documents.
type WorkEntry struct {
	Employer     string   `json:"employer,omitempty"`
	Role         string   `json:"role,omitempty"`
	Title        string   `json:"title,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	Start        string   `json:"start,omitempty"`
	From         string   `json:"from,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	End          string   `json:"end,omitempty"`
	To           string   `json:"to,omitempty"`
	Current      Flag     `json:"current,omitzero"`
	HoursPerWeek Number   `json:"hours_per_week,omitzero"`
	Leadership   Flag     `json:"leadership,omitzero"`
	PublicFacing Flag     `json:"public_facing,omitzero"`
	ShiftWork    Flag     `json:"shift_work,omitzero"`
	Tags         []string `json:"tags,omitempty"`
}

// RoleLabel returns the role, falling back to the legacy title field.
func (w WorkEntry) RoleLabel() string {
	return firstNonEmpty(w.Role, w.Title)
}

// StartMonth returns the resolved "YYYY-MM" start.
func (w WorkEntry) StartMonth() string {
	return firstNonEmpty(w.StartDate, w.Start, w.From)
}

// EndMonth returns the resolved "YYYY-MM" end.
func (w WorkEntry) EndMonth() string {
	return firstNonEmpty(w.EndDate, w.End, w.To)
}

// HasTag reports whether the entry carries the given relevance tag.
func (w WorkEntry) HasTag(tag string) bool {
	return hasTag(w.Tags, tag)
}

// VolunteerEntry is a volunteering record, either a range or a single Date.
type VolunteerEntry struct {
	Organization string `json:"organization,omitempty"`
	Org          string `json:"org,omitempty"`
	Role         string `json:"role,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Date         string `json:"date,omitempty"`
	Current      Flag   `json:"current,omitzero"`
	HoursPerWeek Number `json:"hours_per_week,omitzero"`
	TotalHours   Number `json:"total_hours,omitzero"`
	LeadRole     Flag   `json:"lead_role,omitzero"`
	RoleType     string `json:"role_type,omitempty"`
	PublicFacing Flag   `json:"public_facing,omitzero"`
}

// OrganizationName returns the organization, falling back to the short alias.
func (v VolunteerEntry) OrganizationName() string {
	return firstNonEmpty(v.Organization, v.Org)
}

// StartMonth returns the range start, or the single date.
func (v VolunteerEntry) StartMonth() string {
	return firstNonEmpty(v.StartDate, v.Date)
}

// EndMonth returns the range end. Single-date entries end where they start.
func (v VolunteerEntry) EndMonth() string {
	if v.StartDate == "" && v.Date != "" {
		return firstNonEmpty(v.EndDate, v.Date)
	}
	return v.EndDate
}

// IsLead reports whether the entry describes a leadership role.
func (v VolunteerEntry) IsLead() bool {
	if v.LeadRole.IsTrue() {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(v.RoleType)) {
	case "lead", "leader", "coordinator", "supervisor", "organizer", "captain":
		return true
	}
	return false
}

// EducationEntry is a single education record. Level and Field are legacy aliases.
type EducationEntry struct {
	Institution     string `json:"institution,omitempty"`
	CredentialLevel string `json:"credential_level,omitempty"`
	Level           string `json:"level,omitempty"`
	Program         string `json:"program,omitempty"`
	Field           string `json:"field,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	GraduationDate  string `json:"graduation_date,omitempty"`
	Current         Flag   `json:"current,omitzero"`
}

// LevelText returns the free-text credential level.
func (e EducationEntry) LevelText() string {
	return firstNonEmpty(e.CredentialLevel, e.Level)
}

// ProgramText returns the program or field of study.
func (e EducationEntry) ProgramText() string {
	return firstNonEmpty(e.Program, e.Field)
}

// EndMonth returns the graduation month.
func (e EducationEntry) EndMonth() string {
	return firstNonEmpty(e.EndDate, e.GraduationDate)
}

// CertEntry is a certification or training record.
type CertEntry struct {
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	IssueDate  string `json:"issue_date,omitempty"`
	Issued     string `json:"issued,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

// Label returns the text used for keyword classification.
func (c CertEntry) Label() string {
	return strings.TrimSpace(c.Name + " " + c.Type)
}

// IssueMonth returns the issue month.
func (c CertEntry) IssueMonth() string {
	return firstNonEmpty(c.IssueDate, c.Issued)
}

// ReferenceEntry is a personal or professional reference.
type ReferenceEntry struct {
	Name           string `json:"name,omitempty"`
	Relationship   string `json:"relationship,omitempty"`
	Context        string `json:"context,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Known2Y        Flag   `json:"known_2y,omitzero"`
	DiverseContext Flag   `json:"diverse_context,omitzero"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
