// Package desk wires one instance of each container service together and
// drives them from the interactive front-desk menu.
package desk

import (
	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/domain/appointment"
	"github.com/ehr/patientdesk/internal/domain/emergency"
	"github.com/ehr/patientdesk/internal/domain/patient"
	"github.com/ehr/patientdesk/internal/domain/visit"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

// Desk owns the registry and the three bounded orderings. The four are
// independent; no operation on one consults another.
type Desk struct {
	Patients     *patient.Service
	Appointments *appointment.Service
	Emergencies  *emergency.Service
	Visits       *visit.Service
}

// New builds a Desk. m may be nil.
func New(logger zerolog.Logger, m *metrics.Metrics) *Desk {
	d := &Desk{
		Patients:     patient.NewService(logger),
		Appointments: appointment.NewService(logger),
		Emergencies:  emergency.NewService(logger),
		Visits:       visit.NewService(logger),
	}
	d.Patients.SetMetrics(m)
	d.Appointments.SetMetrics(m)
	d.Emergencies.SetMetrics(m)
	d.Visits.SetMetrics(m)
	return d
}
