package get_sync_history

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine/models"
)

type SyncEngine interface {
	History(ctx context.Context, sessionID string, filter models.HistoryFilter) ([]domain.SyncRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
