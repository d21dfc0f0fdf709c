package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgInvalidUnitID    = "ID da unidade inválido"
	msgInvalidBarberID  = "ID do barbeiro inválido"
	msgMissingBarberID  = "ID do barbeiro é obrigatório"
	msgMissingDate      = "data é obrigatória"
	msgInvalidDate      = "data inválida, formato esperado AAAA-MM-DD"
	msgInvalidDuration  = "duração do serviço inválida"
	msgPastDate         = "não é possível agendar em uma data passada"
	msgUnitNotFound     = "unidade não encontrada"
	msgBarberNotFound   = "barbeiro não encontrado"
	defaultDurationMins = 30
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/available-slots
// Query params: barberId (required), date (required, YYYY-MM-DD), durationMinutes (default 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем unitId из URL
	unitID, err := handlers.ParseUUID(mux.Vars(r)["unitId"])
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	// barberId обязателен
	barberID, err := handlers.QueryUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}
	if barberID == nil {
		h.logger.Warn("GET /units/{id}/available-slots - Missing barber ID")
		handlers.RespondBadRequest(w, msgMissingBarberID)
		return
	}

	// date обязательна
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		h.logger.Warn("GET /units/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration, err := handlers.QueryInt(r, "durationMinutes", defaultDurationMins)
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UnitID:          unitID,
		BarberID:        *barberID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /units/{id}/available-slots - Date in the past: unit_id=%s, date=%s",
				unitID, date.Format("2006-01-02"))
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/available-slots - Unit not found: unit_id=%s", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /units/{id}/available-slots - Barber not found: unit_id=%s, barber_id=%s", unitID, *barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /units/{id}/available-slots - Failed to get slots: unit_id=%s, barber_id=%s, error=%v",
				unitID, *barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /units/{id}/available-slots - Slots retrieved successfully: unit_id=%s, barber_id=%s, date=%s, slots_count=%d",
		unitID, *barberID, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
