package retry_sync

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type SyncEngine interface {
	Retry(ctx context.Context, sessionID, recordID string) (*domain.SyncRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
