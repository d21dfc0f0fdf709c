package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/calendar"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// generateTimeSlots генерирует времена начала с шагом сетки агенды.
// Запись длительностью duration должна закончиться не позже закрытия.
// Для сегодняшнего дня отбрасываются слоты раньше now + notice.
func generateTimeSlots(window calendar.DayWindow, duration int, day, now time.Time, noticeMinutes int) []types.TimeString {
	if !window.Open {
		return []types.TimeString{}
	}

	openMin := window.OpeningMinutes()
	closeMin := window.ClosingMinutes()

	minStart := openMin
	if calendar.SameDay(now, day, day.Location()) {
		local := now.In(day.Location())
		earliest := local.Hour()*60 + local.Minute() + noticeMinutes
		if earliest > minStart {
			minStart = earliest
		}
	}

	slots := make([]types.TimeString, 0)
	for start := openMin; start+duration <= closeMin; start += domain.SlotMinutes {
		if start < minStart {
			continue
		}
		slots = append(slots, types.FromMinutes(start))
	}

	return slots
}

// hasOverlap проверяет пересечение слота с активными записями барбера.
// Граничащие интервалы (конец одного = начало другого) не пересекаются.
func hasOverlap(slotStart, slotEnd time.Time, appointments []*domain.Appointment) bool {
	for _, apt := range appointments {
		// Пропускаем неактивные записи
		if apt == nil || !apt.IsActive() {
			continue
		}

		aptEnd := apt.EndTime
		if !aptEnd.After(apt.StartTime) {
			aptEnd = apt.StartTime.Add(domain.SlotMinutes * time.Minute)
		}

		if apt.StartTime.Before(slotEnd) && aptEnd.After(slotStart) {
			return true
		}
	}
	return false
}

// atMinutes момент времени дня day через minutes минут после полуночи
func atMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}
