package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Settings параметры из секции [calendar]
type Settings struct {
	MinBookingNoticeMinutes int
}

// Request модель запроса на получение доступных слотов
type Request struct {
	UnitID          uuid.UUID
	BarberID        uuid.UUID
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность услуги
}

// Response модель ответа со списком доступных слотов
type Response struct {
	UnitID          uuid.UUID
	BarberID        uuid.UUID
	Date            time.Time
	Timezone        string
	DurationMinutes int
	Slots           []Slot
	Warnings        []string
}

// Slot свободное время начала записи
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString
}
