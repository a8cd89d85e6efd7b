package sync_settings

import "context"

type SyncEngine interface {
	AutoSyncEnabled(ctx context.Context, sessionID string) (bool, error)
	SetAutoSync(ctx context.Context, sessionID string, enabled bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
