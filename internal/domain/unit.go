package domain

import "github.com/google/uuid"

// Unit a barbershop location (tenant-level scope of the agenda)
type Unit struct {
	ID       uuid.UUID
	Name     string
	Timezone *string // IANA name, NULL = service default

	// Default opening hours of the unit, used when no rule resolves the day
	OpeningTime *string
	ClosingTime *string
}
