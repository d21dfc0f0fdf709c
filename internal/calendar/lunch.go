package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// IsLunchSlot reports whether the slot start falls into [lunch start, lunch end).
// A malformed configuration fails closed: false plus an ErrMalformedTime error.
// An empty or inverted lunch (end <= start) fails the same way with ErrInvalidWindow.
func IsLunchSlot(barber domain.Barber, hour, minute int) (bool, error) {
	if !barber.LunchBreak.IsConfigured() {
		return false, nil
	}

	start, end, err := lunchBounds(barber)
	if err != nil {
		return false, err
	}

	slot := hour*60 + minute
	return slot >= start && slot < end, nil
}

// LunchMask classifies every slot of the grid for one barber.
// The lunch strings are parsed once; on error all slots are unblocked.
func LunchMask(barber domain.Barber, grid *Grid) (map[string]bool, error) {
	mask := make(map[string]bool, grid.Len())
	for _, s := range grid.Slots {
		mask[s.Key] = false
	}

	if !barber.LunchBreak.IsConfigured() {
		return mask, nil
	}

	start, end, err := lunchBounds(barber)
	if err != nil {
		return mask, err
	}

	for _, s := range grid.Slots {
		m := s.Minutes()
		mask[s.Key] = m >= start && m < end
	}

	return mask, nil
}

func lunchBounds(barber domain.Barber) (int, int, error) {
	start, err := types.ParseMinutes(barber.LunchBreak.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: lunch start of barber %s: %v", ErrMalformedTime, barber.ID, err)
	}
	end, err := types.ParseMinutes(barber.LunchBreak.End)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: lunch end of barber %s: %v", ErrMalformedTime, barber.ID, err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: lunch of barber %s %s-%s", ErrInvalidWindow, barber.ID,
			barber.LunchBreak.Start, barber.LunchBreak.End)
	}
	return start, end, nil
}
