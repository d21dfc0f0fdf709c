package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// TimeSlot one 15-minute cell of the agenda
type TimeSlot struct {
	Hour   int
	Minute int
	Key    string // "HH:MM"
}

// Minutes returns the slot start in minutes since midnight
func (s TimeSlot) Minutes() int {
	return s.Hour*60 + s.Minute
}

// Grid ordered slots of one render pass
type Grid struct {
	Slots []TimeSlot
	index map[string]int
}

// BuildGrid produces one slot per 15 minutes in [startHour:00, endHour:00).
// An invalid range yields an empty grid, not an error.
func BuildGrid(startHour, endHour int) *Grid {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return &Grid{Slots: []TimeSlot{}, index: map[string]int{}}
	}

	n := (endHour - startHour) * domain.SlotsPerHour
	g := &Grid{
		Slots: make([]TimeSlot, 0, n),
		index: make(map[string]int, n),
	}

	for h := startHour; h < endHour; h++ {
		for m := 0; m < 60; m += domain.SlotMinutes {
			key := SlotKey(h, m)
			g.index[key] = len(g.Slots)
			g.Slots = append(g.Slots, TimeSlot{Hour: h, Minute: m, Key: key})
		}
	}

	return g
}

// SlotKey formats hour and minute as "HH:MM"
func SlotKey(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// SlotKeyFromTime truncates t (in loc) down to the 15-minute boundary
func SlotKeyFromTime(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	return SlotKey(local.Hour(), local.Minute()/domain.SlotMinutes*domain.SlotMinutes)
}

// Len number of slots
func (g *Grid) Len() int {
	return len(g.Slots)
}

// IsEmpty true when the range was invalid
func (g *Grid) IsEmpty() bool {
	return len(g.Slots) == 0
}

// Has reports whether the key belongs to the grid
func (g *Grid) Has(key string) bool {
	_, ok := g.index[key]
	return ok
}

// First returns the first slot
func (g *Grid) First() (TimeSlot, bool) {
	if g.IsEmpty() {
		return TimeSlot{}, false
	}
	return g.Slots[0], true
}

// Last returns the last slot
func (g *Grid) Last() (TimeSlot, bool) {
	if g.IsEmpty() {
		return TimeSlot{}, false
	}
	return g.Slots[len(g.Slots)-1], true
}
