package update_cart_item

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type CartService interface {
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) ([]domain.CartEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
