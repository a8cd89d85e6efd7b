package start_sync

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type SyncEngine interface {
	Start(ctx context.Context, sessionID string, syncType domain.SyncType, trigger domain.SyncTrigger) (*domain.SyncRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
