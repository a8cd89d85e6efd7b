package submit_booking

import "errors"

var (
	// ErrEmptyCart возвращается при попытке оформить пустую корзину
	ErrEmptyCart = errors.New("submit_booking: cart is empty")

	// ErrInvalidEmail возвращается, когда контактный email не проходит валидацию
	ErrInvalidEmail = errors.New("submit_booking: invalid contact email")

	// ErrClassUnavailable возвращается, когда занятие из корзины больше
	// не существует в каталоге на момент оформления
	ErrClassUnavailable = errors.New("submit_booking: class is no longer available")

	// ErrCatalogUnavailable возвращается, когда каталог недоступен и
	// повторная валидация корзины невозможна
	ErrCatalogUnavailable = errors.New("submit_booking: catalog is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
