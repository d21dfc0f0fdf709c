package businesshours

import "errors"

var (
	// ErrUnitNotFound возвращается, когда филиал не найден
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSettings возвращается при некорректных настройках сервиса
	ErrInvalidSettings = errors.New("invalid business hours settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// Виды предупреждений конфигурации, которые считает сам сервис
const (
	WarningInvalidTimezone = "invalid_timezone"
	WarningUnitHours       = "malformed_unit_hours"
)
