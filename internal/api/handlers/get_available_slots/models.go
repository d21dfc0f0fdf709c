package get_available_slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	UnitID          string          `json:"unitId"`
	BarberID        string          `json:"barberId"`
	Date            string          `json:"date"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
	Warnings        []string        `json:"warnings"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &AvailableSlotsResponse{
		UnitID:          resp.UnitID.String(),
		BarberID:        resp.BarberID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Warnings:        warnings,
	}
}
