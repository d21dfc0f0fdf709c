package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is a client booking with a barber.
// The agenda only reads appointments, it never mutates them.
type Appointment struct {
	ID          uuid.UUID
	UnitID      uuid.UUID
	BarberID    *uuid.UUID // NULL = not assigned to a barber yet
	ClientName  string
	ServiceName string
	StartTime   time.Time
	EndTime     time.Time
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// IsActive returns true if the appointment occupies the barber's time
func (a *Appointment) IsActive() bool {
	for _, s := range InactiveStatuses {
		if a.Status == s {
			return false
		}
	}
	return true
}

// HasBarber returns true if the appointment is assigned to a barber
func (a *Appointment) HasBarber() bool {
	return a.BarberID != nil
}

// AppointmentsFilter filter for the unit agenda query
type AppointmentsFilter struct {
	UnitID           uuid.UUID  // Required
	BarberID         *uuid.UUID // nil - all barbers
	From             time.Time  // Inclusive
	To               time.Time  // Exclusive
	IncludeCancelled bool
}
