package catalogservice

import "errors"

var (
	// ErrRemoteUnavailable возвращается, когда удаленное хранилище недоступно
	// (ошибка транспорта, timeout, обрыв соединения)
	ErrRemoteUnavailable = errors.New("catalogservice client: remote unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrAuth возвращается при отказе в авторизации (401/403)
	ErrAuth = errors.New("catalogservice client: authorization rejected")

	// ErrQuota возвращается при превышении квоты запросов (429)
	ErrQuota = errors.New("catalogservice client: quota exceeded")

	// ErrConflict возвращается при конфликте конкурентной модификации (409)
	ErrConflict = errors.New("catalogservice client: concurrent modification conflict")

	// ErrServer возвращается, когда удаленное хранилище отклонило операцию (5xx)
	ErrServer = errors.New("catalogservice client: server rejected operation")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")
)
