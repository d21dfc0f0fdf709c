package get_day_view

import "errors"

var (
	// ErrUnitNotFound возвращается, когда филиал не найден
	ErrUnitNotFound = errors.New("unit not found")

	// ErrBarberNotFound возвращается, когда выбранный барбер не работает в филиале
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
