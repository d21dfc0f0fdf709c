package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var appointmentColumns = []string{
	"id", "unit_id", "barber_id", "client_name", "service_name",
	"start_time", "end_time", "status", "created_at",
}

func TestGetByUnitWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	unitID := uuid.New()
	barberID := uuid.New()
	from := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(10 * time.Hour)

	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(uuid.New().String(), unitID.String(), barberID.String(), "Ana", "Corte",
			start, start.Add(30*time.Minute), "confirmed", from).
		AddRow(uuid.New().String(), unitID.String(), nil, "Bia", "Barba",
			start, start.Add(15*time.Minute), "pending", nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE unit_id = $1 AND start_time >= $2 AND start_time < $3 AND status <> $4 ORDER BY start_time ASC, created_at ASC")).
		WithArgs(unitID, from, to, domain.StatusCancelled).
		WillReturnRows(rows)

	repo := NewRepository(db)
	apts, err := repo.GetByUnitWithFilter(context.Background(), domain.AppointmentsFilter{
		UnitID: unitID,
		From:   from,
		To:     to,
	})

	require.NoError(t, err)
	require.Len(t, apts, 2)
	require.NotNil(t, apts[0].BarberID)
	assert.Equal(t, barberID, *apts[0].BarberID)
	assert.Equal(t, "Ana", apts[0].ClientName)
	assert.Equal(t, domain.StatusConfirmed, apts[0].Status)
	assert.Nil(t, apts[1].BarberID)
	assert.True(t, apts[1].CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUnitWithFilter_BarberAndCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	unitID := uuid.New()
	barberID := uuid.New()
	from := time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE unit_id = $1 AND start_time >= $2 AND start_time < $3 AND barber_id = $4 ORDER BY")).
		WithArgs(unitID, from, to, barberID).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	repo := NewRepository(db)
	apts, err := repo.GetByUnitWithFilter(context.Background(), domain.AppointmentsFilter{
		UnitID:           unitID,
		BarberID:         &barberID,
		From:             from,
		To:               to,
		IncludeCancelled: true,
	})

	require.NoError(t, err)
	assert.Empty(t, apts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUnitWithFilter_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM appointments").WillReturnError(errors.New("connection reset"))

	repo := NewRepository(db)
	_, err = repo.GetByUnitWithFilter(context.Background(), domain.AppointmentsFilter{UnitID: uuid.New()})

	assert.ErrorIs(t, err, ErrExecQuery)
}
