package handlers

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AppointmentDTO запись в ячейке агенды
type AppointmentDTO struct {
	ID          string `json:"id"`
	BarberID    string `json:"barberId,omitempty"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"` // RFC3339 в таймзоне филиала
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
}

// WindowDTO рабочее окно дня
type WindowDTO struct {
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
	Holiday     string `json:"holiday,omitempty"`
}

// IndicatorDTO линия текущего времени
type IndicatorDTO struct {
	Visible  bool    `json:"visible"`
	OffsetPx float64 `json:"offsetPx"`
	DayIndex *int    `json:"dayIndex,omitempty"`
}

// BarberDTO барбер (колонка или легенда агенды)
type BarberDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CalendarColor *string `json:"calendarColor,omitempty"`
	IsActive      bool    `json:"isActive"`
}

// FromBarber конвертирует барбера в DTO
func FromBarber(b *domain.Barber) BarberDTO {
	return BarberDTO{
		ID:            b.ID.String(),
		Name:          b.Name,
		CalendarColor: b.CalendarColor,
		IsActive:      b.IsActive,
	}
}

// FromAppointment конвертирует запись в DTO, время - в таймзоне филиала
func FromAppointment(a *domain.Appointment, loc *time.Location) AppointmentDTO {
	dto := AppointmentDTO{
		ID:          a.ID.String(),
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		StartTime:   a.StartTime.In(loc).Format(time.RFC3339),
		Status:      string(a.Status),
	}
	if a.BarberID != nil {
		dto.BarberID = a.BarberID.String()
	}
	if !a.EndTime.IsZero() {
		dto.EndTime = a.EndTime.In(loc).Format(time.RFC3339)
	}
	return dto
}

// FromCells конвертирует ячейки колонки; каждая ячейка сетки присутствует
func FromCells(cells map[string][]*domain.Appointment, loc *time.Location) map[string][]AppointmentDTO {
	out := make(map[string][]AppointmentDTO, len(cells))
	for key, apts := range cells {
		list := make([]AppointmentDTO, len(apts))
		for i, a := range apts {
			list[i] = FromAppointment(a, loc)
		}
		out[key] = list
	}
	return out
}

// FromWindow конвертирует рабочее окно
func FromWindow(isOpen bool, opening, closing types.TimeString, holiday string) WindowDTO {
	dto := WindowDTO{IsOpen: isOpen, Holiday: holiday}
	if isOpen {
		dto.OpeningTime = opening.String()
		dto.ClosingTime = closing.String()
	}
	return dto
}

// TrueKeys ключи слотов со значением true, в порядке сетки
func TrueKeys(order []string, mask map[string]bool) []string {
	keys := make([]string, 0)
	for _, k := range order {
		if mask[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
