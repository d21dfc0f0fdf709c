package get_week_view

import (
	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getWeekView "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_view"
)

// WeekViewResponse HTTP response model
type WeekViewResponse struct {
	UnitID              string                `json:"unitId"`
	WeekStart           string                `json:"weekStart"`
	Timezone            string                `json:"timezone"`
	SlotHeightPx        int                   `json:"slotHeightPx"`
	RefreshAfterSeconds int                   `json:"refreshAfterSeconds"`
	Indicator           handlers.IndicatorDTO `json:"indicator"`
	Slots               []string              `json:"slots"`
	LunchSlots          []string              `json:"lunchSlots"`
	Barbers             []handlers.BarberDTO  `json:"barbers"`
	Days                []DayColumnDTO        `json:"days"`
	Warnings            []string              `json:"warnings"`
}

// DayColumnDTO колонка дня
type DayColumnDTO struct {
	Date               string                               `json:"date"`
	IsToday            bool                                 `json:"isToday"`
	Window             handlers.WindowDTO                   `json:"window"`
	BusinessHoursSlots []string                             `json:"businessHoursSlots"`
	Cells              map[string][]handlers.AppointmentDTO `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekView.Response) *WeekViewResponse {
	loc := resp.WeekStart.Location()

	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.Key
	}

	days := make([]DayColumnDTO, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayColumnDTO{
			Date:               d.Date.Format(domain.DateFormat),
			IsToday:            d.IsToday,
			Window:             handlers.FromWindow(d.Window.IsOpen, d.Window.Opening, d.Window.Closing, d.Window.HolidayName),
			BusinessHoursSlots: handlers.TrueKeys(slots, d.WithinBusinessHours),
			Cells:              handlers.FromCells(d.Appointments, loc),
		}
	}

	barbers := make([]handlers.BarberDTO, len(resp.Barbers))
	for i, b := range resp.Barbers {
		barbers[i] = handlers.FromBarber(b)
	}

	indicator := handlers.IndicatorDTO{
		Visible:  resp.Indicator.Visible,
		OffsetPx: resp.Indicator.OffsetPx,
	}
	if resp.Indicator.DayIndex >= 0 {
		idx := resp.Indicator.DayIndex
		indicator.DayIndex = &idx
	}

	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &WeekViewResponse{
		UnitID:              resp.UnitID.String(),
		WeekStart:           resp.WeekStart.Format(domain.DateFormat),
		Timezone:            resp.Timezone,
		SlotHeightPx:        resp.SlotHeightPx,
		RefreshAfterSeconds: resp.RefreshAfterSeconds,
		Indicator:           indicator,
		Slots:               slots,
		LunchSlots:          handlers.TrueKeys(slots, resp.LunchSlots),
		Barbers:             barbers,
		Days:                days,
		Warnings:            warnings,
	}
}
