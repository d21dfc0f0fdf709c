package calendar

import "time"

// DaysPerWeek columns of the week view
const DaysPerWeek = 7

// LocalDay midnight of the calendar date of t, placed in loc.
// Only the year, month and day of t are used, so a date parsed in UTC keeps its date.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekStart Sunday of the week containing day (pt-BR weeks start on Sunday)
func WeekStart(day time.Time) time.Time {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekDays the seven dates Sunday..Saturday of the week containing day
func WeekDays(day time.Time) []time.Time {
	start := WeekStart(day)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameDay reports whether a and b fall on the same date in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ya, ma, da := a.In(loc).Date()
	yb, mb, db := b.In(loc).Date()
	return ya == yb && ma == mb && da == db
}
