package get_week_view

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UnitID == uuid.Nil {
		return fmt.Errorf("%w: unitID is required", ErrInvalidInput)
	}

	if req.BarberID != nil && *req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID must not be empty", ErrInvalidInput)
	}

	if req.ContainerHeightPx < 0 {
		return fmt.Errorf("%w: container height must not be negative", ErrInvalidInput)
	}

	return nil
}
