package get_cart

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

type CartService interface {
	Reconcile(ctx context.Context, sessionID string) (survivors, removed []domain.CartEntry, result *freshmodels.Result, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
