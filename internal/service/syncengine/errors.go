package syncengine

import "errors"

var (
	// ErrSyncInProgress возвращается при попытке запустить синхронизацию,
	// когда другая еще не достигла терминального состояния
	ErrSyncInProgress = errors.New("syncengine: sync already in progress")

	// ErrNoSyncInProgress возвращается при попытке отменить синхронизацию,
	// когда ни одна не выполняется
	ErrNoSyncInProgress = errors.New("syncengine: no sync in progress")

	// ErrRecordNotFound возвращается, когда запись истории не найдена
	ErrRecordNotFound = errors.New("syncengine: sync record not found")

	// ErrNotRetryable возвращается при попытке повторить синхронизацию,
	// которая не завершилась неудачей
	ErrNotRetryable = errors.New("syncengine: only failed syncs can be retried")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("syncengine: internal error")
)
