package get_week_view

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

// Request модель запроса недельной агенды (неделя с воскресенья, содержащая Date)
type Request struct {
	UnitID            uuid.UUID
	Date              time.Time  // Нулевая дата = текущая неделя
	BarberID          *uuid.UUID // nil = все барберы
	BusinessHoursOnly bool       // Сетка по объединению рабочих окон недели
	ContainerHeightPx int        // > 0 включает компактный режим
}

// Response модель недельной агенды
type Response struct {
	UnitID    uuid.UUID
	WeekStart time.Time // Воскресенье, полночь в таймзоне филиала
	Timezone  string
	Slots     []SlotRow
	Days      []DayColumn
	Barbers   []*domain.Barber

	// Обед показывается только когда выбран один барбер, иначе nil
	LunchSlots map[string]bool

	SlotHeightPx        int
	Indicator           Indicator
	RefreshAfterSeconds int

	Warnings []string
}

// SlotRow строка сетки
type SlotRow struct {
	Key    string
	Hour   int
	Minute int
}

// DayColumn колонка дня недели
type DayColumn struct {
	Date                time.Time
	IsToday             bool
	Window              Window
	WithinBusinessHours map[string]bool
	Appointments        map[string][]*domain.Appointment
}

// Window рабочее окно дня
type Window struct {
	IsOpen      bool
	Opening     types.TimeString
	Closing     types.TimeString
	HolidayName string
}

// Indicator линия текущего времени; DayIndex = -1, если сегодня вне недели
type Indicator struct {
	Visible  bool
	OffsetPx float64
	DayIndex int
}
