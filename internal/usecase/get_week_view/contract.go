package get_week_view

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/calendar"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	bhModels "github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
)

// BusinessHoursService интерфейс сервиса рабочего времени
type BusinessHoursService interface {
	LoadUnit(ctx context.Context, unitID uuid.UUID) (*bhModels.UnitCalendar, error)
	Resolver(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*calendar.WindowResolver, error)
	RecordWindowWarning(op string, w calendar.DayWindow) string
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*domain.Barber, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByUnitWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// WarningRecorder счетчик ошибок конфигурации
type WarningRecorder interface {
	ConfigWarning(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
