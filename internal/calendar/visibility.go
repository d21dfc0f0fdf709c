package calendar

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// VisibleBarbers columns of the agenda.
// With a selected barber only that barber is shown, active or not;
// otherwise every active barber in the given order.
func VisibleBarbers(barbers []*domain.Barber, selected *uuid.UUID) []*domain.Barber {
	visible := make([]*domain.Barber, 0, len(barbers))
	for _, b := range barbers {
		if b == nil {
			continue
		}
		if selected != nil {
			if b.ID == *selected {
				visible = append(visible, b)
			}
			continue
		}
		if b.IsActive {
			visible = append(visible, b)
		}
	}
	return visible
}

// BarberIDs column keys for BucketByBarber
func BarberIDs(barbers []*domain.Barber) []uuid.UUID {
	ids := make([]uuid.UUID, len(barbers))
	for i, b := range barbers {
		ids[i] = b.ID
	}
	return ids
}
