package submit_booking

import (
	"context"
	"fmt"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
)

// UseCase use case оформления бронирования из корзины
type UseCase struct {
	cartService   CartService
	catalogClient CatalogServiceClient
	meter         Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cartService CartService,
	catalogClient CatalogServiceClient,
	meter Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartService:   cartService,
		catalogClient: catalogClient,
		meter:         meter,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case оформления бронирования
// Каждая строка корзины порождает отдельную запись бронирования.
// Существование каждого занятия перепроверяется по живому каталогу
// непосредственно перед созданием записей: снимок корзины мог устареть
// с момента добавления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s, email=%s", req.SessionID, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.meter.IncBookingCreated("rejected")
		return nil, err
	}

	// 2. Читаем корзину сессии
	cart, err := uc.cartService.Items(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to load cart for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}
	if len(cart) == 0 {
		uc.logger.Warn("SubmitBooking: cart is empty for session=%s", req.SessionID)
		uc.meter.IncBookingCreated("rejected")
		return nil, ErrEmptyCart
	}

	// 3. Перепроверяем существование каждого занятия корзины по живому
	// каталогу - валидация по кешу недопустима. Каталог загружается заново
	// на каждую строку: частичное изменение каталога посреди оформления
	// все равно должно быть поймано. Ни одно бронирование не создается,
	// пока не пройдены все проверки
	for _, entry := range cart {
		catalog, err := uc.catalogClient.FetchCatalog(ctx)
		if err != nil {
			uc.logger.Error("SubmitBooking: catalog fetch failed: %v", err)
			uc.meter.IncBookingCreated("failed")
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}

		if err := validateEntryExists(entry, catalog); err != nil {
			uc.logger.Warn("SubmitBooking: live validation failed for session=%s: %v", req.SessionID, err)
			uc.meter.IncBookingCreated("rejected")
			return nil, err
		}
	}

	// 4. Создаем бронирование на каждую строку корзины
	now := uc.timeProvider.Now()
	results := make([]BookingResult, 0, len(cart))

	for _, entry := range cart {
		booking := domain.NewBookingFromCartEntry(entry, req.Email, now)

		id, err := uc.catalogClient.CreateBooking(ctx, catalogservice.FromDomainBooking(&booking))
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to create booking for item=%s: %v", entry.ItemID, err)
			uc.meter.IncBookingCreated("failed")
			return nil, fmt.Errorf("%w: failed to create booking for %s: %v", ErrInternal, entry.Item.Name, err)
		}

		uc.logger.Info("SubmitBooking: created booking id=%s for item=%s x%d", id, entry.ItemID, entry.Quantity)
		results = append(results, newBookingResult(id, &booking))
	}

	// 5. Опустошаем корзину
	if err := uc.cartService.Clear(ctx, req.SessionID); err != nil {
		// Бронирования уже созданы, корзину дочистит следующая сверка
		uc.logger.Warn("SubmitBooking: failed to clear cart for session=%s: %v", req.SessionID, err)
	}

	uc.meter.IncBookingCreated("confirmed")
	uc.logger.Info("SubmitBooking: session=%s created %d bookings, total=%.2f",
		req.SessionID, len(results), domain.CartTotal(cart))

	return &Response{
		Bookings:     results,
		TotalAmount:  domain.CartTotal(cart),
		TotalClasses: domain.CartSize(cart),
	}, nil
}
