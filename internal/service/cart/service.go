package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/storage/state"
	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

// Service сервис корзины сессии
// Корзина хранится одним JSON blob под логическим ключом и перезаписывается
// целиком при каждом изменении. Все мутации выражены чистыми операциями
// над доменной корзиной: load - apply - save
type Service struct {
	stateRepo StateRepository
	catalog   CatalogProvider
	logger    Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(stateRepo StateRepository, catalog CatalogProvider, logger Logger) *Service {
	return &Service{
		stateRepo: stateRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

// Items возвращает текущее содержимое корзины сессии
// Отсутствие ключа означает пустую корзину
func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartEntry, error) {
	raw, err := s.stateRepo.Load(ctx, sessionID, domain.StateKeyCart)
	if err != nil {
		if errors.Is(err, state.ErrKeyNotFound) {
			return []domain.CartEntry{}, nil
		}
		s.logger.Error("Items: failed to load cart for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Items - load cart: %v", ErrInternal, err)
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Error("Items: corrupted cart blob for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Items - unmarshal cart: %v", ErrInternal, err)
	}
	if entries == nil {
		entries = []domain.CartEntry{}
	}

	return entries, nil
}

// Add добавляет занятие каталога в корзину
// Повторное добавление того же занятия накапливает количество
func (s *Service) Add(ctx context.Context, sessionID, itemID string) ([]domain.CartEntry, error) {
	result := s.catalog.FetchWithFreshness(ctx)

	var item *domain.CatalogItem
	for i := range result.Items {
		if result.Items[i].ID == itemID {
			item = &result.Items[i]
			break
		}
	}
	if item == nil {
		s.logger.Warn("Add: item=%s not found in catalog (source=%s)", itemID, result.Source)
		return nil, ErrItemNotFound
	}

	entries, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := domain.AddToCart(entries, *item)
	if err := s.save(ctx, sessionID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Add: session=%s added item=%s, cart size=%d", sessionID, itemID, domain.CartSize(updated))
	return updated, nil
}

// UpdateQuantity устанавливает количество мест для записи корзины
// Нулевое количество удаляет запись, несуществующий идентификатор - no-op
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) ([]domain.CartEntry, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	entries, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := domain.UpdateCartQuantity(entries, itemID, quantity)
	if err := s.save(ctx, sessionID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateQuantity: session=%s item=%s quantity=%d", sessionID, itemID, quantity)
	return updated, nil
}

// Remove удаляет запись корзины
func (s *Service) Remove(ctx context.Context, sessionID, itemID string) ([]domain.CartEntry, error) {
	entries, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := domain.RemoveFromCart(entries, itemID)
	if err := s.save(ctx, sessionID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Remove: session=%s removed item=%s", sessionID, itemID)
	return updated, nil
}

// Clear опустошает корзину сессии
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.save(ctx, sessionID, []domain.CartEntry{}); err != nil {
		return err
	}
	s.logger.Info("Clear: session=%s cart cleared", sessionID)
	return nil
}

// Reconcile сверяет корзину с актуальным каталогом и удаляет записи,
// чьи занятия больше не существуют
//
// Сверка выполняется только по данным удаленного хранилища: кешированный
// или отсутствующий каталог не дает оснований выбрасывать записи
func (s *Service) Reconcile(ctx context.Context, sessionID string) (survivors, removed []domain.CartEntry, result *freshmodels.Result, err error) {
	result = s.catalog.FetchWithFreshness(ctx)

	entries, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, nil, result, err
	}

	if result.Source != freshmodels.SourceRemote {
		s.logger.Warn("Reconcile: catalog source=%s, skipping reconciliation for session=%s", result.Source, sessionID)
		return entries, []domain.CartEntry{}, result, nil
	}

	survivors, removed = domain.ReconcileCart(entries, result.Items)
	if len(removed) > 0 {
		if err := s.save(ctx, sessionID, survivors); err != nil {
			return nil, nil, result, err
		}
		s.logger.Info("Reconcile: session=%s dropped %d stale entries, %d kept", sessionID, len(removed), len(survivors))
	}

	return survivors, removed, result, nil
}

// save перезаписывает blob корзины целиком
func (s *Service) save(ctx context.Context, sessionID string, entries []domain.CartEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: save - marshal cart: %v", ErrInternal, err)
	}

	if err := s.stateRepo.Save(ctx, sessionID, domain.StateKeyCart, raw); err != nil {
		s.logger.Error("save: failed to persist cart for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: save - persist cart: %v", ErrInternal, err)
	}

	return nil
}
