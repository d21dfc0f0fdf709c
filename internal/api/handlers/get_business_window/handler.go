package get_business_window

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	businessHoursSvc "github.com/m04kA/SMC-AgendaService/internal/service/businesshours"
	"github.com/m04kA/SMC-AgendaService/internal/service/businesshours/models"
)

const (
	msgInvalidUnitID = "ID da unidade inválido"
	msgInvalidDate   = "data inválida, formato esperado AAAA-MM-DD"
	msgUnitNotFound  = "unidade não encontrada"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/business-window
// Query params: date (YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := handlers.ParseUUID(mux.Vars(r)["unitId"])
	if err != nil {
		h.logger.Warn("GET /units/{id}/business-window - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /units/{id}/business-window - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetWindow(r.Context(), &models.GetWindowRequest{UnitID: unitID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, businessHoursSvc.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/business-window - Unit not found: unit_id=%s", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, businessHoursSvc.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/business-window - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		default:
			h.logger.Error("GET /units/{id}/business-window - Failed to get window: unit_id=%s, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /units/{id}/business-window - Window resolved: unit_id=%s, date=%s, open=%t",
		unitID, result.Date, result.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, result)
}
