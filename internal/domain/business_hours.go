package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessHour opening rule of a unit.
// A rule with SpecificDate overrides the weekday rule for that date.
type BusinessHour struct {
	ID           uuid.UUID
	UnitID       uuid.UUID
	DayOfWeek    time.Weekday
	SpecificDate *time.Time
	OpeningTime  string
	ClosingTime  string
	IsOpen       bool
}

// IsOverride returns true if the rule applies to a single date
func (b *BusinessHour) IsOverride() bool {
	return b.SpecificDate != nil
}

// Holiday a date on which the unit is fully closed
type Holiday struct {
	ID     uuid.UUID
	UnitID uuid.UUID
	Date   time.Time
	Name   string
}
