package businesshours

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UnitRepository интерфейс репозитория филиалов
type UnitRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
}

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetRules(ctx context.Context, unitID uuid.UUID) ([]domain.BusinessHour, error)
	GetHolidays(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]domain.Holiday, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// WarningRecorder счетчик ошибок конфигурации (metrics.Metrics)
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
