package calendar

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const (
	DefaultSlotHeightPx = 28
	MinSlotHeightPx     = 20
	DayHeaderHeightPx   = 64
	WeekHeaderHeightPx  = 56
)

// IndicatorOffset pixel offset of the "now" line from the top of the grid.
// now must already be in the unit timezone. ok=false when now is outside
// [first slot, last slot + 15 min) or the grid is empty.
func IndicatorOffset(now time.Time, grid *Grid, slotHeightPx float64) (float64, bool) {
	first, ok := grid.First()
	if !ok {
		return 0, false
	}
	last, _ := grid.Last()

	current := now.Hour()*60 + now.Minute()
	firstMin := first.Minutes()
	endMin := last.Minutes() + domain.SlotMinutes

	if current < firstMin || current >= endMin {
		return 0, false
	}

	return float64(current-firstMin) / float64(domain.SlotMinutes) * slotHeightPx, true
}

// SlotHeight row height in pixels. Compact mode fits the whole grid into the
// container, but never below MinSlotHeightPx.
func SlotHeight(compact bool, containerPx, headerPx, slotCount, defaultPx int) int {
	if !compact || containerPx <= 0 || slotCount <= 0 {
		return defaultPx
	}

	h := (containerPx - headerPx) / slotCount
	if h < MinSlotHeightPx {
		return MinSlotHeightPx
	}
	return h
}
