package get_sync_progress

import (
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine/models"
)

type SyncEngine interface {
	Progress() *models.Progress
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
