package remove_cart_item

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type CartService interface {
	Remove(ctx context.Context, sessionID, itemID string) ([]domain.CartEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
