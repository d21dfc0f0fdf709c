package get_business_window

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	GetWindow(ctx context.Context, req *models.GetWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
