package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// DayWindow resolved business window of one calendar date
type DayWindow struct {
	Date    time.Time
	Open    bool
	Opening types.TimeString
	Closing types.TimeString
	Holiday *domain.Holiday

	// Warning is set when the rule for the day is malformed.
	// The day is then reported as closed.
	Warning error

	openMin  int
	closeMin int
}

// StartHour hour of the first grid row needed to show the window
func (w DayWindow) StartHour() int {
	return w.openMin / 60
}

// EndHour exclusive grid end; a partial last hour is rounded up
func (w DayWindow) EndHour() int {
	return (w.closeMin + 59) / 60
}

// OpeningMinutes opening time in minutes since midnight (0 when closed)
func (w DayWindow) OpeningMinutes() int {
	return w.openMin
}

// ClosingMinutes closing time in minutes since midnight (0 when closed)
func (w DayWindow) ClosingMinutes() int {
	return w.closeMin
}

// Contains reports whether the slot start lies in [opening, closing)
func (w DayWindow) Contains(hour, minute int) bool {
	if !w.Open {
		return false
	}
	slot := hour*60 + minute
	return slot >= w.openMin && slot < w.closeMin
}

// WindowResolver answers open/closed questions for one render pass.
// Results are memoised per date; create a new resolver for every grid build.
type WindowResolver struct {
	weekly    map[time.Weekday]domain.BusinessHour
	overrides map[string]domain.BusinessHour
	holidays  map[string]domain.Holiday
	memo      map[string]DayWindow
}

// NewWindowResolver indexes the rules and holidays of a unit.
// When several rules target the same weekday or date the first one wins.
func NewWindowResolver(rules []domain.BusinessHour, holidays []domain.Holiday) *WindowResolver {
	r := &WindowResolver{
		weekly:    make(map[time.Weekday]domain.BusinessHour, 7),
		overrides: make(map[string]domain.BusinessHour),
		holidays:  make(map[string]domain.Holiday, len(holidays)),
		memo:      make(map[string]DayWindow),
	}

	for _, rule := range rules {
		if rule.IsOverride() {
			key := DateKey(*rule.SpecificDate)
			if _, exists := r.overrides[key]; !exists {
				r.overrides[key] = rule
			}
			continue
		}
		if _, exists := r.weekly[rule.DayOfWeek]; !exists {
			r.weekly[rule.DayOfWeek] = rule
		}
	}

	for _, h := range holidays {
		key := DateKey(h.Date)
		if _, exists := r.holidays[key]; !exists {
			r.holidays[key] = h
		}
	}

	return r
}

// DateKey formats the calendar date of t as YYYY-MM-DD (in t's own location)
func DateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// Resolve returns the business window of the date.
// Holiday > date override > weekday rule; no rule means closed.
func (r *WindowResolver) Resolve(date time.Time) DayWindow {
	key := DateKey(date)
	if w, ok := r.memo[key]; ok {
		return w
	}

	w := r.resolve(date, key)
	r.memo[key] = w
	return w
}

func (r *WindowResolver) resolve(date time.Time, key string) DayWindow {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if h, ok := r.holidays[key]; ok {
		holiday := h
		return DayWindow{Date: day, Holiday: &holiday}
	}

	rule, ok := r.overrides[key]
	if !ok {
		rule, ok = r.weekly[day.Weekday()]
	}
	if !ok || !rule.IsOpen {
		return DayWindow{Date: day}
	}

	openMin, err := types.ParseMinutes(rule.OpeningTime)
	if err != nil {
		return DayWindow{Date: day, Warning: fmt.Errorf("%w: opening time of %s: %v", ErrMalformedTime, key, err)}
	}
	closeMin, err := types.ParseMinutes(rule.ClosingTime)
	if err != nil {
		return DayWindow{Date: day, Warning: fmt.Errorf("%w: closing time of %s: %v", ErrMalformedTime, key, err)}
	}
	if closeMin <= openMin {
		return DayWindow{Date: day, Warning: fmt.Errorf("%w: %s %s-%s", ErrInvalidWindow, key, rule.OpeningTime, rule.ClosingTime)}
	}

	return MinutesWindow(day, openMin, closeMin)
}

// HasRules reports whether the unit has any weekday or date rule.
// Without rules the caller shows the unit fallback hours.
func (r *WindowResolver) HasRules() bool {
	return len(r.weekly) > 0 || len(r.overrides) > 0
}

// ResolveWithFallback is Resolve for units that may have no rules at all.
// Such a unit is open during the fallback hours; a holiday still closes the day.
func (r *WindowResolver) ResolveWithFallback(date time.Time, openHour, closeHour int) DayWindow {
	w := r.Resolve(date)
	if r.HasRules() || w.Holiday != nil {
		return w
	}
	return FixedWindow(w.Date, openHour, closeHour)
}

// IsOpen reports whether the unit is open on the date
func (r *WindowResolver) IsOpen(date time.Time) bool {
	return r.Resolve(date).Open
}

// OpeningHours returns the opening and closing time, ok=false when closed
func (r *WindowResolver) OpeningHours(date time.Time) (types.TimeString, types.TimeString, bool) {
	w := r.Resolve(date)
	if !w.Open {
		return "", "", false
	}
	return w.Opening, w.Closing, true
}

// FixedWindow builds an open window from explicit hours (unit fallback hours)
func FixedWindow(date time.Time, openHour, closeHour int) DayWindow {
	if openHour < 0 || closeHour > 24 {
		return DayWindow{Date: date}
	}
	return MinutesWindow(date, openHour*60, closeHour*60)
}

// MinutesWindow builds an open window from minutes since midnight.
// An empty or inverted range gives a closed window.
func MinutesWindow(date time.Time, openMin, closeMin int) DayWindow {
	if openMin < 0 || closeMin > 24*60 || closeMin <= openMin {
		return DayWindow{Date: date}
	}
	return DayWindow{
		Date:     date,
		Open:     true,
		Opening:  types.FromMinutes(openMin),
		Closing:  types.FromMinutes(closeMin),
		openMin:  openMin,
		closeMin: closeMin,
	}
}

// UnionHours returns the smallest hour range covering every open window.
// When no window is open the fallback range is returned.
func UnionHours(windows []DayWindow, fallbackStart, fallbackEnd int) (int, int) {
	start, end := -1, -1
	for _, w := range windows {
		if !w.Open {
			continue
		}
		if start == -1 || w.StartHour() < start {
			start = w.StartHour()
		}
		if end == -1 || w.EndHour() > end {
			end = w.EndHour()
		}
	}

	if start == -1 {
		return fallbackStart, fallbackEnd
	}
	return start, end
}
