package calendar

import "errors"

var (
	// ErrNilGrid programming error: the bucketizer was called without a grid
	ErrNilGrid = errors.New("calendar: nil grid")

	// ErrMalformedTime a schedule time string could not be parsed
	ErrMalformedTime = errors.New("calendar: malformed time in schedule configuration")

	// ErrInvalidWindow closing time is not after opening time
	ErrInvalidWindow = errors.New("calendar: closing time is not after opening time")
)

// WarningKind maps a configuration error to a short label for metrics
func WarningKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedTime):
		return "malformed_time"
	case errors.Is(err, ErrInvalidWindow):
		return "invalid_window"
	default:
		return "unknown"
	}
}
