package get_day_view

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	getDayView "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_view"
)

const (
	msgInvalidUnitID   = "ID da unidade inválido"
	msgInvalidBarberID = "ID do barbeiro inválido"
	msgInvalidDate     = "data inválida, formato esperado AAAA-MM-DD"
	msgInvalidFlag     = "parâmetro businessHoursOnly inválido"
	msgInvalidHeight   = "parâmetro compactHeight inválido"
	msgInvalidInput    = "parâmetros inválidos"
	msgUnitNotFound    = "unidade não encontrada"
	msgBarberNotFound  = "barbeiro não encontrado"
)

type Handler struct {
	useCase GetDayViewUseCase
	logger  Logger
}

func NewHandler(useCase GetDayViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/calendar/day
// Query params: date (YYYY-MM-DD, default today), barberId, businessHoursOnly, compactHeight (px)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := handlers.ParseUUID(mux.Vars(r)["unitId"])
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/day - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	barberID, err := handlers.QueryUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/day - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/day - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	businessHoursOnly, err := handlers.QueryBool(r, "businessHoursOnly")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/day - Invalid businessHoursOnly: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	compactHeight, err := handlers.QueryInt(r, "compactHeight", 0)
	if err != nil || compactHeight < 0 {
		h.logger.Warn("GET /units/{id}/calendar/day - Invalid compactHeight: %q", r.URL.Query().Get("compactHeight"))
		handlers.RespondBadRequest(w, msgInvalidHeight)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayView.Request{
		UnitID:            unitID,
		Date:              date,
		BarberID:          barberID,
		BusinessHoursOnly: businessHoursOnly,
		ContainerHeightPx: compactHeight,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayView.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/calendar/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDayView.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/calendar/day - Unit not found: unit_id=%s", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, getDayView.ErrBarberNotFound):
			h.logger.Warn("GET /units/{id}/calendar/day - Barber not found: unit_id=%s, barber_id=%v", unitID, barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /units/{id}/calendar/day - Failed to build day view: unit_id=%s, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /units/{id}/calendar/day - Day view built: unit_id=%s, date=%s, barbers=%d, warnings=%d",
		unitID, response.Date, len(response.Barbers), len(response.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
