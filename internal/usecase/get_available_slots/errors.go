package get_available_slots

import "errors"

var (
	// ErrUnitNotFound возвращается, когда филиал не найден
	ErrUnitNotFound = errors.New("unit not found")

	// ErrBarberNotFound возвращается, когда барбер не работает в филиале
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
