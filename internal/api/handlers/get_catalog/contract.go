package get_catalog

import (
	"context"

	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

type FreshnessService interface {
	FetchWithFreshness(ctx context.Context) *freshmodels.Result
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
