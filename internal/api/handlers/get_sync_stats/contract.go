package get_sync_stats

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type SyncEngine interface {
	Stats(ctx context.Context, sessionID string) (*domain.SyncStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
