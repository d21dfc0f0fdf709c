package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UnitID == uuid.Nil {
		return fmt.Errorf("%w: unitID is required", ErrInvalidInput)
	}

	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput,
			domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (в таймзоне филиала)
func validateDate(day, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	if day.Before(today) {
		return ErrInvalidDate
	}
	return nil
}
