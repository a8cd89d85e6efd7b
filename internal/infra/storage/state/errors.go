package state

import "errors"

var (
	// ErrKeyNotFound возвращается, когда логический ключ не найден
	ErrKeyNotFound = errors.New("state key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("state repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("state repository: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("state repository: failed to scan row")
)
