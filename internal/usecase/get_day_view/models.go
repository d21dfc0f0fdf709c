package get_day_view

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Settings параметры сетки из секции [calendar]
type Settings struct {
	WideStartHour           int
	WideEndHour             int
	SlotHeightPx            int
	IndicatorRefreshSeconds int
}

// Request модель запроса дневной агенды
type Request struct {
	UnitID            uuid.UUID
	Date              time.Time  // Нулевая дата = сегодня в таймзоне филиала
	BarberID          *uuid.UUID // nil = все активные барберы
	BusinessHoursOnly bool       // Сетка только по рабочему времени дня
	ContainerHeightPx int        // > 0 включает компактный режим
}

// Response модель дневной агенды
type Response struct {
	UnitID   uuid.UUID
	Date     time.Time // Полночь дня в таймзоне филиала
	Timezone string
	Window   Window
	Slots    []SlotRow
	Columns  []BarberColumn

	SlotHeightPx        int
	Indicator           Indicator
	RefreshAfterSeconds int // Через сколько секунд клиенту пересчитать индикатор

	Warnings []string
}

// Window рабочее окно дня
type Window struct {
	IsOpen      bool
	Opening     types.TimeString
	Closing     types.TimeString
	HolidayName string
}

// SlotRow строка сетки
type SlotRow struct {
	Key                 string // "HH:MM"
	Hour                int
	Minute              int
	WithinBusinessHours bool
}

// BarberColumn колонка барбера.
// Appointments содержит все ключи сетки, пустые ячейки - пустые списки.
type BarberColumn struct {
	Barber       *domain.Barber
	LunchSlots   map[string]bool
	Appointments map[string][]*domain.Appointment
}

// Indicator линия текущего времени
type Indicator struct {
	Visible  bool
	OffsetPx float64
}
