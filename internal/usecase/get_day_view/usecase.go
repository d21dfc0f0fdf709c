package get_day_view

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

const op = "GetDayView"

// UseCase use case построения дневной агенды филиала
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

// Execute выполняет use case построения дневной агенды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("%s: unit=%s, date=%s, barber=%v, businessHoursOnly=%t",
		op, req.UnitID, req.Date.Format(domain.DateFormat), req.BarberID, req.BusinessHoursOnly)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("%s: validation failed: %v", op, err)
		return nil, err
	}

	// 2. Текущее время - один раз на весь рендер
	now := uc.timeProvider.Now()

	// 3. Снимок данных: филиал, правила, барберы и записи читаются в одной транзакции
	var (
		unitCal      *bhModels.UnitCalendar
		day          time.Time
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
		day = calendar.LocalDay(date, unitCal.Location)

		resolver, err = uc.hoursService.Resolver(txCtx, req.UnitID, day, day)
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
			From:     day,
			To:       day.AddDate(0, 0, 1),
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

	// 4. Колонки: выбранный барбер или все активные
	visible := calendar.VisibleBarbers(barbers, req.BarberID)
	if req.BarberID != nil && len(visible) == 0 {
		uc.logger.Warn("%s: barber id=%s not found in unit id=%s", op, *req.BarberID, req.UnitID)
		return nil, ErrBarberNotFound
	}

	// 5. Рабочее окно дня (без правил - часы по умолчанию)
	window := resolver.ResolveWithFallback(day, unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour)
	if window.Warning != nil {
		warnings = append(warnings, uc.hoursService.RecordWindowWarning(op, window))
	}

	// 6. Сетка
	startHour, endHour := uc.gridBounds(req.BusinessHoursOnly, window, unitCal)
	grid := calendar.BuildGrid(startHour, endHour)

	// 7. Раскладываем записи по ячейкам
	buckets, err := calendar.BucketByBarber(grid, calendar.BarberIDs(visible), appointments, loc)
	if err != nil {
		uc.logger.Error("%s: failed to bucket appointments: %v", op, err)
		return nil, fmt.Errorf("%w: bucket appointments: %v", ErrInternal, err)
	}

	columns := make([]BarberColumn, 0, len(visible))
	for _, barber := range visible {
		mask, err := calendar.LunchMask(*barber, grid)
		if err != nil {
			warnings = append(warnings, uc.warn(calendar.WarningKind(err), err))
		}
		columns = append(columns, BarberColumn{
			Barber:       barber,
			LunchSlots:   mask,
			Appointments: buckets[barber.ID.String()],
		})
	}

	// 8. Высота строк и индикатор текущего времени (только для сегодняшнего дня)
	slotHeight := calendar.SlotHeight(req.ContainerHeightPx > 0, req.ContainerHeightPx,
		calendar.DayHeaderHeightPx, grid.Len(), uc.settings.SlotHeightPx)

	var indicator Indicator
	if calendar.SameDay(now, day, loc) {
		indicator.OffsetPx, indicator.Visible = calendar.IndicatorOffset(now.In(loc), grid, float64(slotHeight))
	}

	uc.logger.Info("%s: built %d slots x %d barbers with %d appointments for unit=%s, date=%s",
		op, grid.Len(), len(columns), len(appointments), req.UnitID, calendar.DateKey(day))

	return &Response{
		UnitID:              req.UnitID,
		Date:                day,
		Timezone:            loc.String(),
		Window:              toWindow(window),
		Slots:               toSlotRows(grid, window),
		Columns:             columns,
		SlotHeightPx:        slotHeight,
		Indicator:           indicator,
		RefreshAfterSeconds: uc.settings.IndicatorRefreshSeconds,
		Warnings:            warnings,
	}, nil
}

// gridBounds границы сетки: рабочее окно дня (или часы по умолчанию) либо широкое окно
func (uc *UseCase) gridBounds(businessHoursOnly bool, window calendar.DayWindow, unitCal *bhModels.UnitCalendar) (int, int) {
	if !businessHoursOnly {
		return uc.settings.WideStartHour, uc.settings.WideEndHour
	}
	if window.Open {
		return window.StartHour(), window.EndHour()
	}
	return unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour
}

func (uc *UseCase) warn(kind string, err error) string {
	uc.logger.Warn("%s: configuration warning (%s): %v", op, kind, err)
	uc.warnings.ConfigWarning(kind)
	return err.Error()
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

func toSlotRows(grid *calendar.Grid, window calendar.DayWindow) []SlotRow {
	rows := make([]SlotRow, grid.Len())
	for i, s := range grid.Slots {
		rows[i] = SlotRow{
			Key:                 s.Key,
			Hour:                s.Hour,
			Minute:              s.Minute,
			WithinBusinessHours: window.Contains(s.Hour, s.Minute),
		}
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
