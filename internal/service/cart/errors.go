package cart

import "errors"

var (
	// ErrItemNotFound возвращается, когда занятие отсутствует в каталоге
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrInvalidQuantity возвращается при отрицательном количестве мест
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart service: internal error")
)
