package get_week_view

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	getWeekView "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_view"
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
	useCase GetWeekViewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/calendar/week
// Query params: date (YYYY-MM-DD, any day of the week, default today), barberId, businessHoursOnly, compactHeight (px)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := handlers.ParseUUID(mux.Vars(r)["unitId"])
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/week - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	barberID, err := handlers.QueryUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/week - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/week - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	businessHoursOnly, err := handlers.QueryBool(r, "businessHoursOnly")
	if err != nil {
		h.logger.Warn("GET /units/{id}/calendar/week - Invalid businessHoursOnly: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	compactHeight, err := handlers.QueryInt(r, "compactHeight", 0)
	if err != nil || compactHeight < 0 {
		h.logger.Warn("GET /units/{id}/calendar/week - Invalid compactHeight: %q", r.URL.Query().Get("compactHeight"))
		handlers.RespondBadRequest(w, msgInvalidHeight)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekView.Request{
		UnitID:            unitID,
		Date:              date,
		BarberID:          barberID,
		BusinessHoursOnly: businessHoursOnly,
		ContainerHeightPx: compactHeight,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekView.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/calendar/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getWeekView.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/calendar/week - Unit not found: unit_id=%s", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, getWeekView.ErrBarberNotFound):
			h.logger.Warn("GET /units/{id}/calendar/week - Barber not found: unit_id=%s, barber_id=%v", unitID, barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /units/{id}/calendar/week - Failed to build week view: unit_id=%s, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /units/{id}/calendar/week - Week view built: unit_id=%s, week=%s, barbers=%d, warnings=%d",
		unitID, response.WeekStart, len(response.Barbers), len(response.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
