package get_bookings

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type CatalogServiceClient interface {
	FetchBookingsByEmail(ctx context.Context, email string) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
