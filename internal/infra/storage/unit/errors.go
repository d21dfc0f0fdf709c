package unit

import "errors"

var (
	// ErrUnitNotFound возвращается, когда филиал не найден
	ErrUnitNotFound = errors.New("unit.repository: unit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("unit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("unit.repository: failed to execute query")
)
