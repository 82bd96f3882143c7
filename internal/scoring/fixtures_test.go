package scoring

import (
	"time"

	"github.com/jonathan/competitiveness/internal/types"
)

var asOf = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

// strongProfile maxes out every category of the default policy.
func strongProfile() *types.Profile {
	return &types.Profile{
		WorkHistory: []types.WorkEntry{
			{
				Employer: "Garda", Role: "Security Guard",
				StartDate: "2020-01", EndDate: "2024-01",
				HoursPerWeek: types.NewNumber(40),
				PublicFacing: types.NewFlag(true), ShiftWork: types.NewFlag(true), Leadership: types.NewFlag(true),
			},
		},
		VolunteerHistory: []types.VolunteerEntry{
			{Organization: "Food Bank", StartDate: "2022-03", Current: types.NewFlag(true), HoursPerWeek: types.NewNumber(3), RoleType: "coordinator"},
		},
		EducationDetails: []types.EducationEntry{
			{Institution: "Humber", CredentialLevel: "Diploma", Program: "Police Foundations", EndDate: "2019-05"},
			{Institution: "York", CredentialLevel: "Bachelor's Degree", Program: "Criminology", EndDate: "2022-05"},
		},
		CertsDetails: []types.CertEntry{
			{Name: "Standard First Aid CPR-C", IssueDate: "2024-01"},
			{Name: "Mental Health First Aid"},
			{Name: "CPI Nonviolent Crisis Intervention"},
			{Name: "Naloxone Administration"},
			{Name: "Smart Serve"},
			{Name: "WHMIS"},
			{Name: "Crowd Management"},
		},
		RefsList: []types.ReferenceEntry{
			{Name: "A", Context: "work", Known2Y: types.NewFlag(true)},
			{Name: "B", Context: "volunteer", Known2Y: types.NewFlag(true)},
			{Name: "C", Context: "school"},
		},
		DriverLicenceClass:          "G",
		DriverCleanAbstract:         types.NewFlag(true),
		ConductNoMajorIssues:        types.NewFlag(true),
		FitnessPrepObservedVerified: types.NewFlag(true),
		Languages:                   []string{"English", "French"},
	}
}

// moderateProfile scores in the middle of the range.
func moderateProfile() *types.Profile {
	return &types.Profile{
		WorkHistory: []types.WorkEntry{
			{Role: "Retail Associate", StartDate: "2023-09", Current: types.NewFlag(true), HoursPerWeek: types.NewNumber(32)},
		},
		VolunteerHistory: []types.VolunteerEntry{
			{Organization: "Charity Run", Date: "2024-10", TotalHours: types.NewNumber(8)},
		},
		EducationDetails: []types.EducationEntry{
			{CredentialLevel: "High School", EndDate: "2012-06"},
		},
		CertsDetails: []types.CertEntry{
			{Name: "CPR Level C", IssueDate: "2021-02"},
		},
		RefsList: []types.ReferenceEntry{
			{Name: "Manager", Relationship: "supervisor"},
		},
		DriverLicenceClass:          "G2",
		FitnessPrepDigitalAttempted: types.NewFlag(true),
	}
}
