package cart

import (
	"context"
	"encoding/json"

	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

// StateRepository интерфейс key-value хранилища состояния сессии
type StateRepository interface {
	Load(ctx context.Context, sessionID, key string) (json.RawMessage, error)
	Save(ctx context.Context, sessionID, key string, value json.RawMessage) error
}

// CatalogProvider интерфейс поставщика каталога с оценкой свежести
type CatalogProvider interface {
	FetchWithFreshness(ctx context.Context) *freshmodels.Result
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
