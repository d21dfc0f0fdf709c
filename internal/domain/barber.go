package domain

import "github.com/google/uuid"

// Barber is a bookable staff member (the "resource" of the agenda)
type Barber struct {
	ID            uuid.UUID
	UnitID        uuid.UUID
	Name          string
	CalendarColor *string
	IsActive      bool
	LunchBreak    *LunchBreak // nil = no lunch configured
}

// LunchBreak per-barber lunch configuration.
// Start and End are kept as stored ("HH:MM" or "HH:MM:SS") and parsed by the agenda.
type LunchBreak struct {
	Enabled bool
	Start   string
	End     string
}

// IsConfigured returns true if the lunch break is enabled and both bounds are set
func (l *LunchBreak) IsConfigured() bool {
	return l != nil && l.Enabled && l.Start != "" && l.End != ""
}
