package domain

// Slot grid constants
const (
	SlotMinutes  = 15 // Granularity of the agenda grid
	SlotsPerHour = 60 / SlotMinutes
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = SlotMinutes
	MaxServiceDurationMinutes = 480 // 8 hours
)

// InactiveStatuses statuses that never occupy a barber's time
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
