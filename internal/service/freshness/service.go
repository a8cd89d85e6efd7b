package freshness

import (
	"context"
	"errors"
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/cache/catalogcache"
	"github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

// Service сервис оценки свежести каталога
// Свежесть выводится только из меток времени занятий, окно устаревания
// фиксированное. Отсутствие метки трактуется в пользу свежести, чтобы
// неполные данные не запускали бесконечные перезагрузки
type Service struct {
	client CatalogClient
	cache  SnapshotCache
	meter  Metrics
	logger Logger
	now    func() time.Time
}

// NewService создает новый экземпляр сервиса свежести каталога
func NewService(client CatalogClient, cache SnapshotCache, meter Metrics, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		meter:  meter,
		logger: logger,
		now:    time.Now,
	}
}

// IsFresh проверяет, попадает ли метка времени в окно свежести
// nil трактуется как свежее значение
func (s *Service) IsFresh(lastUpdate *time.Time) bool {
	if lastUpdate == nil {
		return true
	}
	return s.now().Sub(*lastUpdate) < domain.StalenessWindow
}

// LatestUpdate возвращает самую позднюю метку обновления каталога
func (s *Service) LatestUpdate(items []domain.CatalogItem) *time.Time {
	return domain.LatestCatalogUpdate(items)
}

// FetchWithFreshness загружает каталог и оценивает его свежесть
// Никогда не возвращает ошибку: при недоступности удаленного хранилища
// отдает последний кешированный снимок, при пустом кеше - пустой результат.
// Удачная удаленная загрузка прозрачно обновляет кеш
func (s *Service) FetchWithFreshness(ctx context.Context) *models.Result {
	items, err := s.client.FetchCatalog(ctx)
	if err == nil {
		latest := s.LatestUpdate(items)

		snapshot := &catalogcache.Snapshot{Items: items, FetchedAt: s.now()}
		if storeErr := s.cache.Store(ctx, snapshot); storeErr != nil {
			s.logger.Warn("FetchWithFreshness: failed to cache catalog snapshot: %v", storeErr)
		}

		s.meter.IncCatalogFetch(string(models.SourceRemote))
		s.logger.Info("FetchWithFreshness: fetched %d items from remote, fresh=%t", len(items), s.IsFresh(latest))
		return &models.Result{
			Items:      items,
			LastUpdate: latest,
			IsFresh:    s.IsFresh(latest),
			Source:     models.SourceRemote,
		}
	}

	s.logger.Warn("FetchWithFreshness: remote catalog unavailable, falling back to cache: %v", err)

	snapshot, cacheErr := s.cache.Latest(ctx)
	if cacheErr == nil {
		latest := s.LatestUpdate(snapshot.Items)
		if latest == nil {
			latest = &snapshot.FetchedAt
		}

		s.meter.IncCatalogFetch(string(models.SourceCache))
		s.logger.Info("FetchWithFreshness: serving %d items from cache snapshot of %s",
			len(snapshot.Items), snapshot.FetchedAt.Format(time.RFC3339))
		return &models.Result{
			Items:      snapshot.Items,
			LastUpdate: latest,
			IsFresh:    s.IsFresh(latest),
			Source:     models.SourceCache,
		}
	}

	if errors.Is(cacheErr, catalogcache.ErrCacheMiss) {
		s.meter.IncCatalogFetch(string(models.SourceNoData))
		s.logger.Warn("FetchWithFreshness: cache is empty, returning empty catalog")
		return &models.Result{
			Items:   []domain.CatalogItem{},
			IsFresh: false,
			Source:  models.SourceNoData,
		}
	}

	s.meter.IncCatalogFetch(string(models.SourceError))
	s.logger.Error("FetchWithFreshness: cache read failed: %v", cacheErr)
	return &models.Result{
		Items:   []domain.CatalogItem{},
		IsFresh: false,
		Source:  models.SourceError,
	}
}
