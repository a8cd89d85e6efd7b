package get_sync_queue

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type SyncEngine interface {
	Queue(ctx context.Context, sessionID string) ([]domain.PendingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
