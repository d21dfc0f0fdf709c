package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Buckets column -> slot key -> appointments, in input order.
// A column is a barber ID (day view) or a YYYY-MM-DD date (week view).
type Buckets map[string]map[string][]*domain.Appointment

// Get returns the appointments of one cell; unknown cells yield nil
func (b Buckets) Get(column, slotKey string) []*domain.Appointment {
	return b[column][slotKey]
}

// BucketByBarber groups appointments by assigned barber and slot.
// Appointments without a barber, with an inactive/unknown barber or
// starting outside the grid are left out.
func BucketByBarber(grid *Grid, barberIDs []uuid.UUID, appointments []*domain.Appointment, loc *time.Location) (Buckets, error) {
	columns := make([]string, len(barberIDs))
	for i, id := range barberIDs {
		columns[i] = id.String()
	}

	return bucketize(grid, columns, appointments, loc, func(a *domain.Appointment) (string, bool) {
		if !a.HasBarber() {
			return "", false
		}
		return a.BarberID.String(), true
	})
}

// BucketByDay groups appointments by calendar day (in loc) and slot
func BucketByDay(grid *Grid, days []time.Time, appointments []*domain.Appointment, loc *time.Location) (Buckets, error) {
	columns := make([]string, len(days))
	for i, d := range days {
		columns[i] = DateKey(d)
	}

	return bucketize(grid, columns, appointments, loc, func(a *domain.Appointment) (string, bool) {
		return DateKey(a.StartTime.In(loc)), true
	})
}

func bucketize(
	grid *Grid,
	columns []string,
	appointments []*domain.Appointment,
	loc *time.Location,
	columnOf func(*domain.Appointment) (string, bool),
) (Buckets, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	buckets := make(Buckets, len(columns))
	for _, col := range columns {
		cells := make(map[string][]*domain.Appointment, grid.Len())
		for _, s := range grid.Slots {
			cells[s.Key] = []*domain.Appointment{}
		}
		buckets[col] = cells
	}

	for _, a := range appointments {
		if a == nil {
			continue
		}
		col, ok := columnOf(a)
		if !ok {
			continue
		}
		cells, ok := buckets[col]
		if !ok {
			continue
		}
		key := SlotKeyFromTime(a.StartTime, loc)
		if _, ok := cells[key]; !ok {
			continue
		}
		cells[key] = append(cells[key], a)
	}

	return buckets, nil
}
