package submit_booking

import (
	"context"
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartEntry, error)
	Clear(ctx context.Context, sessionID string) error
}

// CatalogServiceClient интерфейс клиента удаленного хранилища
type CatalogServiceClient interface {
	FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error)
	CreateBooking(ctx context.Context, payload *catalogservice.BookingPayload) (string, error)
}

// Metrics интерфейс для учета созданных бронирований
type Metrics interface {
	IncBookingCreated(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
