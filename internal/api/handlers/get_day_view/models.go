package get_day_view

import (
	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getDayView "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_view"
)

// DayViewResponse HTTP response model
type DayViewResponse struct {
	UnitID              string                `json:"unitId"`
	Date                string                `json:"date"`
	Timezone            string                `json:"timezone"`
	Window              handlers.WindowDTO    `json:"window"`
	SlotHeightPx        int                   `json:"slotHeightPx"`
	RefreshAfterSeconds int                   `json:"refreshAfterSeconds"`
	Indicator           handlers.IndicatorDTO `json:"indicator"`
	Slots               []SlotDTO             `json:"slots"`
	Barbers             []BarberColumnDTO     `json:"barbers"`
	Warnings            []string              `json:"warnings"`
}

// SlotDTO строка сетки
type SlotDTO struct {
	Time                string `json:"time"`
	WithinBusinessHours bool   `json:"withinBusinessHours"`
}

// BarberColumnDTO колонка барбера
type BarberColumnDTO struct {
	handlers.BarberDTO
	LunchSlots []string                             `json:"lunchSlots"`
	Cells      map[string][]handlers.AppointmentDTO `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayView.Response) *DayViewResponse {
	loc := resp.Date.Location()

	order := make([]string, len(resp.Slots))
	slots := make([]SlotDTO, len(resp.Slots))
	for i, s := range resp.Slots {
		order[i] = s.Key
		slots[i] = SlotDTO{Time: s.Key, WithinBusinessHours: s.WithinBusinessHours}
	}

	barbers := make([]BarberColumnDTO, len(resp.Columns))
	for i, col := range resp.Columns {
		barbers[i] = BarberColumnDTO{
			BarberDTO:  handlers.FromBarber(col.Barber),
			LunchSlots: handlers.TrueKeys(order, col.LunchSlots),
			Cells:      handlers.FromCells(col.Appointments, loc),
		}
	}

	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &DayViewResponse{
		UnitID:              resp.UnitID.String(),
		Date:                resp.Date.Format(domain.DateFormat),
		Timezone:            resp.Timezone,
		Window:              handlers.FromWindow(resp.Window.IsOpen, resp.Window.Opening, resp.Window.Closing, resp.Window.HolidayName),
		SlotHeightPx:        resp.SlotHeightPx,
		RefreshAfterSeconds: resp.RefreshAfterSeconds,
		Indicator: handlers.IndicatorDTO{
			Visible:  resp.Indicator.Visible,
			OffsetPx: resp.Indicator.OffsetPx,
		},
		Slots:    slots,
		Barbers:  barbers,
		Warnings: warnings,
	}
}
