package queue_change

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type SyncEngine interface {
	QueueChange(ctx context.Context, sessionID string, record domain.PendingRecord) (*domain.PendingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
