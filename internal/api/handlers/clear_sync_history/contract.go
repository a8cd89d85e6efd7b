package clear_sync_history

import "context"

type SyncEngine interface {
	ClearHistory(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
