package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не похожа на время суток
	ErrInvalidTimeFormat = errors.New("types: invalid time format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString время суток в формате "HH:MM".
// "24:00" допускается как конец суток (например, время закрытия).
type TimeString string

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// ParseMinutes переводит строку времени в минуты от начала суток.
// Отсутствующая минутная часть считается равной 0, секунды игнорируются.
func ParseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric hour in %q", ErrInvalidTimeFormat, s)
	}

	minute := 0
	if len(parts) > 1 && parts[1] != "" {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: non-numeric minute in %q", ErrInvalidTimeFormat, s)
		}
	}

	if hour < 0 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	total := hour*60 + minute
	if total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return total, nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	return ParseMinutes(string(t))
}

// AddMinutes прибавляет минуты. Результат не может выйти за пределы суток.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := minutes + n
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOutOfRange, t, n)
	}

	return FromMinutes(total), nil
}
