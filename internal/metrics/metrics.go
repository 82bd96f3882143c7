// Package metrics derives aggregate measures from raw profile history.
// All derivations are pure: missing or malformed data contributes zero.
package metrics

import (
	"time"

	"github.com/jonathan/competitiveness/internal/types"
)

// Metrics bundles every derived measure for one profile.
type Metrics struct {
	Work      WorkMetrics
	Volunteer VolunteerMetrics
	Education EducationMetrics
	Certs     CertMetrics
}

// Derive computes all metrics for p as of now.
func Derive(p *types.Profile, now time.Time) Metrics {
	if p == nil {
		return Metrics{}
	}
	return Metrics{
		Work:      DeriveWork(p.WorkHistory, now),
		Volunteer: DeriveVolunteer(p.VolunteerHistory, now),
		Education: DeriveEducation(p.EducationDetails, now),
		Certs:     DeriveCerts(p.CertsDetails, now),
	}
}
