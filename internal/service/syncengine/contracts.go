package syncengine

import (
	"context"
	"encoding/json"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// StateRepository интерфейс key-value хранилища состояния сессии
type StateRepository interface {
	Load(ctx context.Context, sessionID, key string) (json.RawMessage, error)
	Save(ctx context.Context, sessionID, key string, value json.RawMessage) error
}

// CatalogServiceClient интерфейс клиента удаленного хранилища
type CatalogServiceClient interface {
	FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error)
	PushRecord(ctx context.Context, rec *domain.PendingRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для учета синхронизаций
type Metrics interface {
	IncSync(status, trigger string)
	ObserveSyncDuration(trigger string, seconds float64)
	AddRecordsUploaded(category string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
