package businesshours

import (
	"context"
	"errors"
	"fmt"
	"time"
	// таймзоны филиалов доступны и без /usr/share/zoneinfo
	_ "time/tzdata"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/calendar"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	unitRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Settings настройки сервиса из секции [calendar]
type Settings struct {
	DefaultTimezone     string
	FallbackOpeningHour int
	FallbackClosingHour int
}

// Service сервис рабочего времени филиалов
type Service struct {
	unitRepo     UnitRepository
	hoursRepo    HoursRepository
	txManager    TransactionManager
	warnings     WarningRecorder
	timeProvider TimeProvider
	logger       Logger

	settings   Settings
	defaultLoc *time.Location
}

// NewService создает новый экземпляр сервиса рабочего времени.
// Таймзона по умолчанию загружается сразу: без неё сервис работать не может.
func NewService(
	unitRepo UnitRepository,
	hoursRepo HoursRepository,
	txManager TransactionManager,
	warnings WarningRecorder,
	settings Settings,
	logger Logger,
) (*Service, error) {
	loc, err := time.LoadLocation(settings.DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: default timezone %q: %v", ErrInvalidSettings, settings.DefaultTimezone, err)
	}

	if settings.FallbackClosingHour <= settings.FallbackOpeningHour {
		return nil, fmt.Errorf("%w: fallback hours %d-%d", ErrInvalidSettings,
			settings.FallbackOpeningHour, settings.FallbackClosingHour)
	}

	return &Service{
		unitRepo:     unitRepo,
		hoursRepo:    hoursRepo,
		txManager:    txManager,
		warnings:     warnings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		settings:     settings,
		defaultLoc:   loc,
	}, nil
}

// LoadUnit получает филиал и разрешает его таймзону и часы по умолчанию.
// Некорректная таймзона или часы филиала не ломают запрос:
// используются значения из настроек, а ошибка попадает в Warnings.
func (s *Service) LoadUnit(ctx context.Context, unitID uuid.UUID) (*models.UnitCalendar, error) {
	if unitID == uuid.Nil {
		return nil, fmt.Errorf("%w: unitID is required", ErrInvalidInput)
	}

	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, unitRepo.ErrUnitNotFound) {
			s.logger.Warn("LoadUnit: unit id=%s not found", unitID)
			return nil, ErrUnitNotFound
		}
		s.logger.Error("LoadUnit: failed to get unit id=%s: %v", unitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	result := &models.UnitCalendar{
		Unit:                unit,
		Location:            s.defaultLoc,
		FallbackOpeningHour: s.settings.FallbackOpeningHour,
		FallbackClosingHour: s.settings.FallbackClosingHour,
		Warnings:            []string{},
	}

	// 1. Таймзона филиала
	if unit.Timezone != nil {
		loc, err := time.LoadLocation(*unit.Timezone)
		if err != nil {
			result.Warnings = append(result.Warnings, s.warn("LoadUnit", WarningInvalidTimezone,
				fmt.Sprintf("unit %s: invalid timezone %q, using %s", unitID, *unit.Timezone, s.defaultLoc)))
		} else {
			result.Location = loc
		}
	}

	// 2. Часы филиала по умолчанию (если заданы оба значения)
	if unit.OpeningTime != nil && unit.ClosingTime != nil {
		window, err := unitWindow(*unit.OpeningTime, *unit.ClosingTime)
		if err != nil {
			result.Warnings = append(result.Warnings, s.warn("LoadUnit", WarningUnitHours,
				fmt.Sprintf("unit %s: %v", unitID, err)))
		} else {
			result.FallbackOpeningHour = window.StartHour()
			result.FallbackClosingHour = window.EndHour()
		}
	}

	return result, nil
}

// Resolver загружает правила и праздники филиала за период [from, to] и
// возвращает резолвер рабочего окна. Резолвер живет один проход рендера.
func (s *Service) Resolver(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*calendar.WindowResolver, error) {
	rules, err := s.hoursRepo.GetRules(ctx, unitID)
	if err != nil {
		s.logger.Error("Resolver: failed to get business hours of unit id=%s: %v", unitID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	holidays, err := s.hoursRepo.GetHolidays(ctx, unitID, from, to)
	if err != nil {
		s.logger.Error("Resolver: failed to get holidays of unit id=%s: %v", unitID, err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	return calendar.NewWindowResolver(rules, holidays), nil
}

// RecordWindowWarning логирует и считает ошибку конфигурации окна дня.
// Возвращает текст для поля warnings ответа.
func (s *Service) RecordWindowWarning(op string, w calendar.DayWindow) string {
	return s.warn(op, calendar.WarningKind(w.Warning), w.Warning.Error())
}

// GetWindow возвращает рабочее окно филиала на дату
func (s *Service) GetWindow(ctx context.Context, req *models.GetWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("GetWindow: unit=%s, date=%s", req.UnitID, req.Date.Format(domain.DateFormat))

	// 1. Филиал, дата в его таймзоне и окно дня читаются в одной транзакции
	var (
		unitCal *models.UnitCalendar
		day     time.Time
		window  calendar.DayWindow
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		unitCal, err = s.LoadUnit(txCtx, req.UnitID)
		if err != nil {
			return err
		}

		date := req.Date
		if date.IsZero() {
			date = s.timeProvider.Now().In(unitCal.Location)
		}
		day = calendar.LocalDay(date, unitCal.Location)

		resolver, err := s.Resolver(txCtx, req.UnitID, day, day)
		if err != nil {
			return err
		}

		// Правил нет совсем: филиал открыт в часы по умолчанию
		window = resolver.ResolveWithFallback(day, unitCal.FallbackOpeningHour, unitCal.FallbackClosingHour)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 2. Предупреждения конфигурации
	warnings := append([]string{}, unitCal.Warnings...)
	if window.Warning != nil {
		warnings = append(warnings, s.RecordWindowWarning("GetWindow", window))
	}

	resp := &models.WindowResponse{
		UnitID:        req.UnitID,
		Date:          calendar.DateKey(day),
		Timezone:      unitCal.Location.String(),
		IsOpen:        window.Open,
		GridStartHour: unitCal.FallbackOpeningHour,
		GridEndHour:   unitCal.FallbackClosingHour,
		Warnings:      warnings,
	}

	if window.Open {
		resp.OpeningTime = ptr.Ptr(window.Opening)
		resp.ClosingTime = ptr.Ptr(window.Closing)
		resp.GridStartHour = window.StartHour()
		resp.GridEndHour = window.EndHour()
	}

	if window.Holiday != nil {
		resp.Holiday = &models.HolidayInfo{
			Date: calendar.DateKey(window.Holiday.Date),
			Name: window.Holiday.Name,
		}
	}

	return resp, nil
}

func (s *Service) warn(op, kind, msg string) string {
	s.logger.Warn("%s: configuration warning (%s): %s", op, kind, msg)
	s.warnings.ConfigWarning(kind)
	return msg
}

// unitWindow разбирает часы филиала по умолчанию
func unitWindow(opening, closing string) (calendar.DayWindow, error) {
	openMin, err := types.ParseMinutes(opening)
	if err != nil {
		return calendar.DayWindow{}, fmt.Errorf("%w: unit opening time: %v", calendar.ErrMalformedTime, err)
	}
	closeMin, err := types.ParseMinutes(closing)
	if err != nil {
		return calendar.DayWindow{}, fmt.Errorf("%w: unit closing time: %v", calendar.ErrMalformedTime, err)
	}
	if closeMin <= openMin {
		return calendar.DayWindow{}, fmt.Errorf("%w: unit hours %s-%s", calendar.ErrInvalidWindow, opening, closing)
	}
	return calendar.MinutesWindow(time.Time{}, openMin, closeMin), nil
}
