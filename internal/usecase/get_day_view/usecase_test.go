package get_day_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/calendar"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessHoursSvc "github.com/m04kA/SMC-AgendaService/internal/service/businesshours"
	bhModels "github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

type stubHoursService struct {
	loadedInSnapshot bool
	unitErr          error
	rules            []domain.BusinessHour
	holidays         []domain.Holiday
	warned           []string
}

func (s *stubHoursService) LoadUnit(ctx context.Context, unitID uuid.UUID) (*bhModels.UnitCalendar, error) {
	s.loadedInSnapshot = ctx.Value(snapshotKey{}) != nil
	if s.unitErr != nil {
		return nil, s.unitErr
	}
	return &bhModels.UnitCalendar{
		Unit:                &domain.Unit{ID: unitID, Name: "Centro"},
		Location:            saoPaulo,
		FallbackOpeningHour: 7,
		FallbackClosingHour: 21,
		Warnings:            []string{},
	}, nil
}

func (s *stubHoursService) Resolver(_ context.Context, _ uuid.UUID, _, _ time.Time) (*calendar.WindowResolver, error) {
	return calendar.NewWindowResolver(s.rules, s.holidays), nil
}

func (s *stubHoursService) RecordWindowWarning(_ string, w calendar.DayWindow) string {
	s.warned = append(s.warned, w.Warning.Error())
	return w.Warning.Error()
}

type stubBarberRepo struct {
	barbers []*domain.Barber
	err     error
}

func (r *stubBarberRepo) ListByUnit(_ context.Context, _ uuid.UUID) ([]*domain.Barber, error) {
	return r.barbers, r.err
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentsFilter
}

func (r *stubAppointmentRepo) GetByUnitWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	return r.appointments, r.err
}

type snapshotKey struct{}

// passThroughTx помечает контекст, чтобы стабы видели, что чтение идет внутри снимка
type passThroughTx struct{}

func (passThroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, snapshotKey{}, true))
}

type countingRecorder struct{ kinds []string }

func (r *countingRecorder) ConfigWarning(kind string) { r.kinds = append(r.kinds, kind) }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testSettings = Settings{
	WideStartHour:           7,
	WideEndHour:             23,
	SlotHeightPx:            28,
	IndicatorRefreshSeconds: 60,
}

type fixture struct {
	uc       *UseCase
	hours    *stubHoursService
	barbers  *stubBarberRepo
	apts     *stubAppointmentRepo
	recorder *countingRecorder

	ana, bruno, caio *domain.Barber
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		ana: &domain.Barber{ID: uuid.New(), Name: "Ana", IsActive: true,
			LunchBreak: &domain.LunchBreak{Enabled: true, Start: "12:00", End: "13:00"}},
		bruno: &domain.Barber{ID: uuid.New(), Name: "Bruno"},
		caio: &domain.Barber{ID: uuid.New(), Name: "Caio", IsActive: true,
			LunchBreak: &domain.LunchBreak{Enabled: true, Start: "doze", End: "13:00"}},
		recorder: &countingRecorder{},
	}

	f.hours = &stubHoursService{rules: []domain.BusinessHour{
		{DayOfWeek: time.Tuesday, OpeningTime: "09:00", ClosingTime: "18:00", IsOpen: true},
	}}
	f.barbers = &stubBarberRepo{barbers: []*domain.Barber{f.ana, f.bruno, f.caio}}
	f.apts = &stubAppointmentRepo{}

	f.uc = NewUseCase(f.hours, f.barbers, f.apts, passThroughTx{}, f.recorder, testSettings, logger.NewNop())
	f.uc.timeProvider = fixedClock{now: now}
	return f
}

func appointmentAt(barber *domain.Barber, local time.Time) *domain.Appointment {
	id := barber.ID
	return &domain.Appointment{
		ID:        uuid.New(),
		BarberID:  &id,
		StartTime: local.UTC(),
		EndTime:   local.Add(30 * time.Minute).UTC(),
		Status:    domain.StatusConfirmed,
	}
}

var tuesday = time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)

func TestExecute_BusinessHoursOnly(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 30, 0, 0, saoPaulo))
	f.apts.appointments = []*domain.Appointment{
		appointmentAt(f.ana, time.Date(2026, 4, 21, 10, 7, 0, 0, saoPaulo)),
		appointmentAt(f.caio, time.Date(2026, 4, 21, 18, 30, 0, 0, saoPaulo)),
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		UnitID:            uuid.New(),
		Date:              tuesday,
		BusinessHoursOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-04-21", calendar.DateKey(resp.Date))
	assert.True(t, resp.Window.IsOpen)
	require.Len(t, resp.Slots, 36)
	assert.Equal(t, "09:00", resp.Slots[0].Key)
	assert.Equal(t, "17:45", resp.Slots[35].Key)
	assert.True(t, resp.Slots[0].WithinBusinessHours)

	require.Len(t, resp.Columns, 2)
	ana, caio := resp.Columns[0], resp.Columns[1]
	assert.Equal(t, "Ana", ana.Barber.Name)
	assert.Equal(t, "Caio", caio.Barber.Name)

	assert.Len(t, ana.Appointments["10:00"], 1)
	assert.Empty(t, ana.Appointments["10:15"])
	_, outside := caio.Appointments["18:30"]
	assert.False(t, outside)

	assert.True(t, ana.LunchSlots["12:00"])
	assert.True(t, ana.LunchSlots["12:45"])
	assert.False(t, ana.LunchSlots["13:00"])
	assert.False(t, caio.LunchSlots["12:00"])

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "lunch start")
	assert.Equal(t, []string{"malformed_time"}, f.recorder.kinds)

	assert.Equal(t, 28, resp.SlotHeightPx)
	assert.True(t, resp.Indicator.Visible)
	assert.InDelta(t, 6*28.0, resp.Indicator.OffsetPx, 1e-9)
	assert.Equal(t, 60, resp.RefreshAfterSeconds)
}

func TestExecute_WideWindow(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 25, 10, 0, 0, 0, saoPaulo))
	f.apts.appointments = []*domain.Appointment{
		appointmentAt(f.caio, time.Date(2026, 4, 21, 18, 30, 0, 0, saoPaulo)),
	}

	resp, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 64)
	assert.Equal(t, "07:00", resp.Slots[0].Key)
	assert.False(t, resp.Slots[0].WithinBusinessHours)
	assert.Len(t, resp.Columns[1].Appointments["18:30"], 1)

	// не сегодня - индикатора нет
	assert.False(t, resp.Indicator.Visible)
}

func TestExecute_AppointmentFilterCoversLocalDay(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))

	_, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday})
	require.NoError(t, err)

	assert.True(t, f.apts.lastFilter.From.Equal(time.Date(2026, 4, 21, 3, 0, 0, 0, time.UTC)))
	assert.True(t, f.apts.lastFilter.To.Equal(time.Date(2026, 4, 22, 3, 0, 0, 0, time.UTC)))
	assert.False(t, f.apts.lastFilter.IncludeCancelled)
}

func TestExecute_SelectedInactiveBarber(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))

	resp, err := f.uc.Execute(context.Background(), &Request{
		UnitID:   uuid.New(),
		Date:     tuesday,
		BarberID: &f.bruno.ID,
	})
	require.NoError(t, err)

	require.Len(t, resp.Columns, 1)
	assert.Equal(t, "Bruno", resp.Columns[0].Barber.Name)
	require.NotNil(t, f.apts.lastFilter.BarberID)
	assert.Equal(t, f.bruno.ID, *f.apts.lastFilter.BarberID)
}

func TestExecute_UnknownBarber(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))
	unknown := uuid.New()

	_, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday, BarberID: &unknown})

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_ClosedDayUsesFallbackGrid(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))
	sunday := time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UnitID:            uuid.New(),
		Date:              sunday,
		BusinessHoursOnly: true,
	})
	require.NoError(t, err)

	assert.False(t, resp.Window.IsOpen)
	require.Len(t, resp.Slots, 56)
	for _, row := range resp.Slots {
		assert.False(t, row.WithinBusinessHours, row.Key)
	}
}

func TestExecute_HolidayIsClosedEvenWithoutRules(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))
	f.hours.rules = nil
	f.hours.holidays = []domain.Holiday{{Date: tuesday, Name: "Tiradentes"}}

	resp, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday})
	require.NoError(t, err)

	assert.False(t, resp.Window.IsOpen)
	assert.Equal(t, "Tiradentes", resp.Window.HolidayName)
}

func TestExecute_NoRulesUsesFallbackWindow(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))
	f.hours.rules = nil

	resp, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday})
	require.NoError(t, err)

	assert.True(t, resp.Window.IsOpen)
	assert.True(t, resp.Slots[0].WithinBusinessHours)   // 07:00
	assert.False(t, resp.Slots[56].WithinBusinessHours) // 21:00
}

func TestExecute_UnitLoadedInsideSnapshot(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))

	_, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday})
	require.NoError(t, err)

	assert.True(t, f.hours.loadedInSnapshot)
}

func TestExecute_MalformedRuleIsReported(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))
	f.hours.rules = []domain.BusinessHour{
		{DayOfWeek: time.Tuesday, OpeningTime: "18:00", ClosingTime: "09:00", IsOpen: true},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New(), Date: tuesday, BusinessHoursOnly: true})
	require.NoError(t, err)

	assert.False(t, resp.Window.IsOpen)
	require.Len(t, f.hours.warned, 1)
	assert.Contains(t, resp.Warnings, f.hours.warned[0])
}

func TestExecute_CompactHeight(t *testing.T) {
	f := newFixture(time.Date(2026, 4, 21, 10, 0, 0, 0, saoPaulo))

	resp, err := f.uc.Execute(context.Background(), &Request{
		UnitID:            uuid.New(),
		Date:              tuesday,
		BusinessHoursOnly: true,
		ContainerHeightPx: 1000,
	})
	require.NoError(t, err)

	// (1000 - 64) / 36 = 26
	assert.Equal(t, 26, resp.SlotHeightPx)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("unit not found", func(t *testing.T) {
		f := newFixture(time.Now())
		f.hours.unitErr = businessHoursSvc.ErrUnitNotFound

		_, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New()})
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(time.Now())
		f.apts.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), &Request{UnitID: uuid.New()})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(time.Now())

		_, err := f.uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
