package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Lunch blocking a slot for new bookings must not hide appointments already in it.
func TestLunchSlotKeepsExistingAppointment(t *testing.T) {
	grid := BuildGrid(7, 23)
	require.Equal(t, 64, grid.Len())

	barber := barberWithLunch("12:00", "13:00", true)
	apt := appointmentAt(&barber.ID, time.Date(2026, 4, 21, 12, 30, 0, 0, saoPaulo))

	blocked, err := IsLunchSlot(barber, 12, 30)
	require.NoError(t, err)
	assert.True(t, blocked)

	buckets, err := BucketByBarber(grid, []uuid.UUID{barber.ID}, []*domain.Appointment{apt}, saoPaulo)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Appointment{apt}, buckets.Get(barber.ID.String(), "12:30"))
}
