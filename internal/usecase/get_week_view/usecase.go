package get_week_view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/calendar"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	businessHoursSvc "github.com/m04kA/SMC-AgendaService/internal/service/businesshours"
	bhModels "github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
)

const op = "GetWeekView"

// UseCase use case построения недельной агенды филиала
type UseCase struct {
	hoursService    BusinessHoursService
	barberRepo      BarberRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	warnings        WarningRecorder
	timeProvider    TimeProvider
	logger          Logger
	settings        Settings
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursService BusinessHoursService,
	barberRepo BarberRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	warnings WarningRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursService:    hoursService,
		barberRepo:      barberRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		warnings:        warnings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		settings:        settings,
	}
}

// Execute выполняет use case построения недельной агенды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("%s: unit=%s, date=%s, barber=%v, businessHoursOnly=%t",
		op, req.UnitID, req.Date.Format(domain.DateFormat), req.BarberID, req.BusinessHoursOnly)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("%s: validation failed: %v", op, err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Снимок данных недели: филиал, правила, барберы и записи в одной транзакции
	var (
		unitCal      *bhModels.UnitCalendar
		days         []time.Time
		resolver     *calendar.WindowResolver
		barbers      []*domain.Barber
		appointments []*domain.Appointment
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		// Филиал и его таймзона
		unitCal, err = uc.hoursService.LoadUnit(txCtx, req.UnitID)
		if err != nil {
			return err
		}

		date := req.Date
		if date.IsZero() {
			date = now.In(unitCal.Location)
		}
		days = calendar.WeekDays(calendar.LocalDay(date, unitCal.Location))

		resolver, err = uc.hoursService.Resolver(txCtx, req.UnitID, days[0], days[len(days)-1])
		if err != nil {
			return err
		}

		barbers, err = uc.barberRepo.ListByUnit(txCtx, req.UnitID)
		if err != nil {
			return fmt.Errorf("%w: failed to get barbers: %v", ErrInternal, err)
		}

		appointments, err = uc.appointmentRepo.GetByUnitWithFilter(txCtx, domain.AppointmentsFilter{
			UnitID:   req.UnitID,
			BarberID: req.BarberID,
			From:     days[0],
			To:       days[len(days)-1].AddDate(0, 0, 1),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		err = mapServiceError(err)
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("%s: failed to load agenda of unit id=%s: %v", op, req.UnitID, err)
		} else {
			uc.logger.Warn("%s: unit id=%s: %v", op, req.UnitID, err)
		}
		return nil, err
	}
	loc := unitCal.Location
	warnings := append([]string{}, unitCal.Warnings...)
	weekStart := days[0]

	// 3. Колонки барберов
	visible := calendar.VisibleBarbers(barbers, req.BarberID)
	if req.BarberID != nil && len(visible) == 0 {
		uc.logger.Warn("%s: barber id=%s not found in unit id=%s", op, *req.BarberID, req.UnitID)
		return nil, ErrBarberNotFound
	}

	// 4. Рабочее окно каждого дня (без правил - часы по умолчанию)
	windows := make([]calendar.DayWindow, len(days))
	for i, day := range days {
		w := resolver.ResolveWithFallback(day, unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour)
		if w.Warning != nil {
			warnings = append(warnings, uc.hoursService.RecordWindowWarning(op, w))
		}
		windows[i] = w
	}

	// 5. Сетка: объединение рабочих окон недели или широкое окно
	startHour, endHour := uc.gridBounds(req.BusinessHoursOnly, windows, unitCal)
	grid := calendar.BuildGrid(startHour, endHour)

	// 6. Раскладываем записи по дням и ячейкам
	buckets, err := calendar.BucketByDay(grid, days, appointments, loc)
	if err != nil {
		uc.logger.Error("%s: failed to bucket appointments: %v", op, err)
		return nil, fmt.Errorf("%w: bucket appointments: %v", ErrInternal, err)
	}

	indicator := Indicator{DayIndex: -1}
	columns := make([]DayColumn, len(days))
	for i, day := range days {
		isToday := calendar.SameDay(now, day, loc)
		if isToday {
			indicator.DayIndex = i
		}
		columns[i] = DayColumn{
			Date:                day,
			IsToday:             isToday,
			Window:              toWindow(windows[i]),
			WithinBusinessHours: shading(grid, windows[i]),
			Appointments:        buckets[calendar.DateKey(day)],
		}
	}

	// 7. Обед - только для одного выбранного барбера
	var lunch map[string]bool
	if req.BarberID != nil {
		lunch, err = calendar.LunchMask(*visible[0], grid)
		if err != nil {
			warnings = append(warnings, uc.warn(calendar.WarningKind(err), err))
		}
	}

	// 8. Высота строк и индикатор: только в колонке сегодняшнего дня, если филиал открыт
	slotHeight := calendar.SlotHeight(req.ContainerHeightPx > 0, req.ContainerHeightPx,
		calendar.WeekHeaderHeightPx, grid.Len(), uc.settings.SlotHeightPx)
	if indicator.DayIndex >= 0 && windows[indicator.DayIndex].Open {
		indicator.OffsetPx, indicator.Visible = calendar.IndicatorOffset(now.In(loc), grid, float64(slotHeight))
	}

	uc.logger.Info("%s: built %d slots x %d days with %d appointments for unit=%s, week=%s",
		op, grid.Len(), len(days), len(appointments), req.UnitID, calendar.DateKey(weekStart))

	return &Response{
		UnitID:              req.UnitID,
		WeekStart:           weekStart,
		Timezone:            loc.String(),
		Slots:               toSlotRows(grid),
		Days:                columns,
		Barbers:             visible,
		LunchSlots:          lunch,
		SlotHeightPx:        slotHeight,
		Indicator:           indicator,
		RefreshAfterSeconds: uc.settings.IndicatorRefreshSeconds,
		Warnings:            warnings,
	}, nil
}

// gridBounds границы сетки недели
func (uc *UseCase) gridBounds(businessHoursOnly bool, windows []calendar.DayWindow, unitCal *bhModels.UnitCalendar) (int, int) {
	if !businessHoursOnly {
		return uc.settings.WideStartHour, uc.settings.WideEndHour
	}
	return calendar.UnionHours(windows, unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour)
}

func (uc *UseCase) warn(kind string, err error) string {
	uc.logger.Warn("%s: configuration warning (%s): %v", op, kind, err)
	uc.warnings.ConfigWarning(kind)
	return err.Error()
}

func shading(grid *calendar.Grid, w calendar.DayWindow) map[string]bool {
	within := make(map[string]bool, grid.Len())
	for _, s := range grid.Slots {
		within[s.Key] = w.Contains(s.Hour, s.Minute)
	}
	return within
}

func toWindow(w calendar.DayWindow) Window {
	window := Window{
		IsOpen:  w.Open,
		Opening: w.Opening,
		Closing: w.Closing,
	}
	if w.Holiday != nil {
		window.HolidayName = w.Holiday.Name
	}
	return window
}

func toSlotRows(grid *calendar.Grid) []SlotRow {
	rows := make([]SlotRow, grid.Len())
	for i, s := range grid.Slots {
		rows[i] = SlotRow{Key: s.Key, Hour: s.Hour, Minute: s.Minute}
	}
	return rows
}

// mapServiceError переводит ошибки сервиса рабочего времени в ошибки use case
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, businessHoursSvc.ErrUnitNotFound):
		return ErrUnitNotFound
	case errors.Is(err, businessHoursSvc.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
