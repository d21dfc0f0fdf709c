package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UnitCalendar филиал с разрешенной таймзоной и часами по умолчанию.
// Warnings содержит ошибки конфигурации, найденные при разрешении.
type UnitCalendar struct {
	Unit     *domain.Unit
	Location *time.Location

	// Часы, которые показываются, когда рабочее время дня не определено
	FallbackOpeningHour int
	FallbackClosingHour int

	Warnings []string
}

// GetWindowRequest запрос рабочего окна на дату
type GetWindowRequest struct {
	UnitID uuid.UUID
	Date   time.Time // Нулевая дата = сегодня в таймзоне филиала
}

// WindowResponse рабочее окно филиала на дату
type WindowResponse struct {
	UnitID      uuid.UUID         `json:"unitId"`
	Date        string            `json:"date"`
	Timezone    string            `json:"timezone"`
	IsOpen      bool              `json:"isOpen"`
	OpeningTime *types.TimeString `json:"openingTime,omitempty"`
	ClosingTime *types.TimeString `json:"closingTime,omitempty"`
	Holiday     *HolidayInfo      `json:"holiday,omitempty"`

	// Границы сетки в режиме "только рабочее время" (конец не включается)
	GridStartHour int `json:"gridStartHour"`
	GridEndHour   int `json:"gridEndHour"`

	Warnings []string `json:"warnings"`
}

// HolidayInfo праздник, закрывающий филиал
type HolidayInfo struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
