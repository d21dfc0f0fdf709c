package get_available_slots

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

// UseCase use case для получения доступных слотов барбера
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: unit=%s, barber=%s, date=%s, duration=%d",
		req.UnitID, req.BarberID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Снимок данных: филиал, правила, барбер и его записи на день в одной транзакции
	var (
		unitCal      *bhModels.UnitCalendar
		day          time.Time
		resolver     *calendar.WindowResolver
		barbers      []*domain.Barber
		appointments []*domain.Appointment
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		// Филиал и таймзона
		unitCal, err = uc.hoursService.LoadUnit(txCtx, req.UnitID)
		if err != nil {
			return err
		}
		day = calendar.LocalDay(req.Date, unitCal.Location)

		// Дата не в прошлом
		if err := validateDate(day, now.In(unitCal.Location)); err != nil {
			return err
		}

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
			BarberID: &req.BarberID,
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
			uc.logger.Error("GetAvailableSlots: failed to load data of unit id=%s: %v", req.UnitID, err)
		} else {
			uc.logger.Warn("GetAvailableSlots: unit id=%s, date=%s: %v",
				req.UnitID, req.Date.Format(domain.DateFormat), err)
		}
		return nil, err
	}
	loc := unitCal.Location
	warnings := append([]string{}, unitCal.Warnings...)

	visible := calendar.VisibleBarbers(barbers, &req.BarberID)
	if len(visible) == 0 {
		uc.logger.Warn("GetAvailableSlots: barber id=%s not found in unit id=%s", req.BarberID, req.UnitID)
		return nil, ErrBarberNotFound
	}
	barber := visible[0]

	resp := &Response{
		UnitID:          req.UnitID,
		BarberID:        req.BarberID,
		Date:            day,
		Timezone:        loc.String(),
		DurationMinutes: req.DurationMinutes,
		Slots:           []Slot{},
		Warnings:        warnings,
	}

	// Неактивный барбер не принимает записи
	if !barber.IsActive {
		uc.logger.Info("GetAvailableSlots: barber id=%s is inactive", req.BarberID)
		return resp, nil
	}

	// 4. Рабочее окно дня (без правил - часы по умолчанию)
	window := resolver.ResolveWithFallback(day, unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour)
	if window.Warning != nil {
		resp.Warnings = append(resp.Warnings, uc.hoursService.RecordWindowWarning("GetAvailableSlots", window))
	}
	if !window.Open {
		uc.logger.Info("GetAvailableSlots: unit is closed on %s", calendar.DateKey(day))
		return resp, nil
	}

	// 5. Кандидаты по рабочему окну и времени до записи
	candidates := generateTimeSlots(window, req.DurationMinutes, day, now, uc.settings.MinBookingNoticeMinutes)

	// 6. Сломанный обед не блокирует слоты, но попадает в предупреждения
	checkLunch := true
	if _, err := calendar.IsLunchSlot(*barber, 0, 0); err != nil {
		resp.Warnings = append(resp.Warnings, uc.warn(calendar.WarningKind(err), err))
		checkLunch = false
	}

	// 7. Отбрасываем обед и пересечения с записями
	for _, start := range candidates {
		startMin, err := start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s: %v", ErrInternal, start, err)
		}

		if checkLunch {
			if lunch, _ := calendar.IsLunchSlot(*barber, startMin/60, startMin%60); lunch {
				continue
			}
		}

		slotStart := atMinutes(day, startMin)
		slotEnd := slotStart.Add(time.Duration(req.DurationMinutes) * time.Minute)
		if hasOverlap(slotStart, slotEnd, appointments) {
			continue
		}

		end, err := start.AddMinutes(req.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s: %v", ErrInternal, start, err)
		}
		resp.Slots = append(resp.Slots, Slot{StartTime: start, EndTime: end})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for barber=%s, date=%s",
		len(resp.Slots), req.BarberID, calendar.DateKey(day))

	return resp, nil
}

func (uc *UseCase) warn(kind string, err error) string {
	uc.logger.Warn("GetAvailableSlots: configuration warning (%s): %v", kind, err)
	uc.warnings.ConfigWarning(kind)
	return err.Error()
}

// mapServiceError переводит ошибки сервиса рабочего времени в ошибки use case
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, businessHoursSvc.ErrUnitNotFound):
		return ErrUnitNotFound
	case errors.Is(err, businessHoursSvc.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
