package syncengine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/storage/state"
	"github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine/models"
)

// Service движок синхронизации локальных изменений с удаленным хранилищем
//
// Инварианты жизненного цикла:
//   - одновременно выполняется не более одной синхронизации
//   - каждая попытка проходит ровно одно терминальное состояние и после
//     него запись истории неизменяема
//   - история ограничена по размеру, статистика накапливается без потерь
//     и при вытеснении старых записей истории не пересчитывается
type Service struct {
	stateRepo StateRepository
	client    CatalogServiceClient
	txManager TransactionManager
	meter     Metrics
	logger    Logger
	now       func() time.Time

	mu        sync.Mutex
	current   *domain.SyncRecord
	cancelRun context.CancelFunc
	progress  models.Progress
}

// NewService создает новый экземпляр движка синхронизации
func NewService(
	stateRepo StateRepository,
	client CatalogServiceClient,
	txManager TransactionManager,
	meter Metrics,
	logger Logger,
) *Service {
	return &Service{
		stateRepo: stateRepo,
		client:    client,
		txManager: txManager,
		meter:     meter,
		logger:    logger,
		now:       time.Now,
	}
}

// Start запускает синхронизацию и выполняет её до терминального состояния
// Возвращает ErrSyncInProgress, если другая синхронизация еще выполняется
func (s *Service) Start(ctx context.Context, sessionID string, syncType domain.SyncType, trigger domain.SyncTrigger) (*domain.SyncRecord, error) {
	return s.start(ctx, sessionID, syncType, trigger, 0)
}

// Retry повторяет неудачную синхронизацию из истории
// Новая попытка наследует счетчик повторов, увеличенный на единицу
func (s *Service) Retry(ctx context.Context, sessionID, recordID string) (*domain.SyncRecord, error) {
	history, err := s.History(ctx, sessionID, models.HistoryFilter{})
	if err != nil {
		return nil, err
	}

	var prev *domain.SyncRecord
	for i := range history {
		if history[i].ID == recordID {
			prev = &history[i]
			break
		}
	}
	if prev == nil {
		s.logger.Warn("Retry: record id=%s not found in history for session=%s", recordID, sessionID)
		return nil, ErrRecordNotFound
	}
	if prev.Status != domain.SyncStatusFailed {
		s.logger.Warn("Retry: record id=%s has status=%s, not retryable", recordID, prev.Status)
		return nil, ErrNotRetryable
	}

	return s.start(ctx, sessionID, prev.Type, domain.TriggerRetry, prev.RetryCount+1)
}

// Cancel отменяет выполняющуюся синхронизацию
// Уже отправленные записи остаются отправленными, откат не выполняется
func (s *Service) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoSyncInProgress
	}

	s.logger.Info("Cancel: cancelling sync id=%s for session=%s", s.current.ID, sessionID)
	s.cancelRun()
	return nil
}

// Progress возвращает снимок состояния выполняющейся синхронизации,
// nil - если синхронизация не выполняется
func (s *Service) Progress() *models.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	snapshot := s.progress
	return &snapshot
}

// start атомарно занимает слот единственной выполняющейся синхронизации
// и проводит попытку до терминального состояния
func (s *Service) start(ctx context.Context, sessionID string, syncType domain.SyncType, trigger domain.SyncTrigger, retryCount int) (*domain.SyncRecord, error) {
	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		s.logger.Warn("start: rejected, sync id=%s still in progress", s.current.ID)
		return nil, ErrSyncInProgress
	}

	// Внутренний контекст не наследует запросный: обрыв соединения клиента
	// не должен ронять синхронизацию, отмена возможна только явным Cancel
	runCtx, cancel := context.WithCancel(context.Background())

	rec := &domain.SyncRecord{
		ID:         uuid.NewString(),
		Timestamp:  s.now(),
		Status:     domain.SyncStatusPending,
		Type:       syncType,
		Trigger:    trigger,
		RetryCount: retryCount,
		Errors:     []domain.SyncError{},
	}

	s.current = rec
	s.cancelRun = cancel
	s.progress = models.Progress{
		SyncID:    rec.ID,
		Status:    domain.SyncStatusPending,
		Trigger:   trigger,
		StartedAt: rec.Timestamp,
	}
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.current = nil
		s.cancelRun = nil
		s.mu.Unlock()
	}()

	s.logger.Info("start: sync id=%s type=%s trigger=%s retry=%d session=%s",
		rec.ID, syncType, trigger, retryCount, sessionID)

	result := s.run(runCtx, sessionID, rec)
	return result, nil
}

// run выполняет одну попытку синхронизации
func (s *Service) run(ctx context.Context, sessionID string, rec *domain.SyncRecord) *domain.SyncRecord {
	started := s.now()
	s.setProgressStatus(domain.SyncStatusInProgress, 0, 0)
	rec.Status = domain.SyncStatusInProgress

	queue, err := s.Queue(ctx, sessionID)
	if err != nil {
		s.appendError(rec, domain.SyncErrorServer, fmt.Sprintf("failed to load sync queue: %v", err), "")
		return s.finish(sessionID, rec, domain.SyncStatusFailed, started, nil)
	}

	rec.DataSizeKB = domain.QueueDataSizeKB(queue)
	s.setProgressStatus(domain.SyncStatusInProgress, 0, len(queue))

	if len(queue) == 0 {
		s.logger.Info("run: sync id=%s queue is empty, nothing to upload", rec.ID)
		return s.finish(sessionID, rec, domain.SyncStatusCompleted, started, queue)
	}

	// Живой каталог выступает и проверкой доступности хранилища,
	// и источником для повторной валидации записей очереди
	if _, err := s.client.FetchCatalog(ctx); err != nil {
		s.appendError(rec, classifyError(err), err.Error(), "")
		s.logger.Error("run: sync id=%s remote unreachable: %v", rec.ID, err)
		return s.finish(sessionID, rec, domain.SyncStatusFailed, started, queue)
	}

	remaining := make([]domain.PendingRecord, 0, len(queue))

	for i := range queue {
		if ctx.Err() != nil {
			remaining = append(remaining, queue[i:]...)
			s.logger.Warn("run: sync id=%s cancelled after %d of %d records", rec.ID, i, len(queue))
			return s.finish(sessionID, rec, domain.SyncStatusCancelled, started, remaining)
		}

		record := queue[i]
		rec.RecordsProcessed.Add(record.Category)

		if err := validateRecord(&record); err != nil {
			rec.RecordsSkipped.Add(record.Category)
			s.appendError(rec, domain.SyncErrorValidation, err.Error(), record.ID)
			remaining = append(remaining, record)
			s.setProgressStatus(domain.SyncStatusInProgress, i+1, len(queue))
			continue
		}

		if err := s.client.PushRecord(ctx, &record); err != nil {
			s.appendError(rec, classifyError(err), err.Error(), record.ID)
			remaining = append(remaining, record)
			s.logger.Warn("run: sync id=%s failed to push record id=%s: %v", rec.ID, record.ID, err)
			s.setProgressStatus(domain.SyncStatusInProgress, i+1, len(queue))
			continue
		}

		rec.RecordsUploaded.Add(record.Category)
		s.setProgressStatus(domain.SyncStatusInProgress, i+1, len(queue))
	}

	// Любая накопленная ошибка делает попытку неудачной, даже если часть
	// записей была успешно выгружена
	status := domain.SyncStatusCompleted
	if len(rec.Errors) > 0 {
		status = domain.SyncStatusFailed
	}

	return s.finish(sessionID, rec, status, started, remaining)
}

// finish переводит попытку в терминальное состояние и атомарно сохраняет
// историю, статистику и остаток очереди
func (s *Service) finish(sessionID string, rec *domain.SyncRecord, status domain.SyncStatus, started time.Time, remaining []domain.PendingRecord) *domain.SyncRecord {
	rec.Status = status
	rec.DurationMs = s.now().Sub(started).Milliseconds()
	s.setProgressStatus(status, s.progressProcessed(), s.progressTotal())

	// Сохранение идет с чистым контекстом: отмена синхронизации не должна
	// помешать записать её терминальную запись
	persistCtx := context.Background()

	err := s.txManager.Do(persistCtx, func(txCtx context.Context) error {
		history, err := s.History(txCtx, sessionID, models.HistoryFilter{})
		if err != nil {
			return err
		}

		stats, err := s.Stats(txCtx, sessionID)
		if err != nil {
			return err
		}

		history = domain.AppendToHistory(history, *rec)
		stats.Apply(rec)

		if err := s.saveJSON(txCtx, sessionID, domain.StateKeySyncHistory, history); err != nil {
			return err
		}
		if err := s.saveJSON(txCtx, sessionID, domain.StateKeySyncStats, stats); err != nil {
			return err
		}
		if remaining != nil {
			if err := s.saveJSON(txCtx, sessionID, domain.StateKeySyncQueue, remaining); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("finish: sync id=%s failed to persist terminal state: %v", rec.ID, err)
	}

	s.meter.IncSync(string(status), string(rec.Trigger))
	s.meter.ObserveSyncDuration(string(rec.Trigger), float64(rec.DurationMs)/1000)
	if rec.RecordsUploaded.Classes > 0 {
		s.meter.AddRecordsUploaded(string(domain.CategoryClass), rec.RecordsUploaded.Classes)
	}
	if rec.RecordsUploaded.Instances > 0 {
		s.meter.AddRecordsUploaded(string(domain.CategoryInstance), rec.RecordsUploaded.Instances)
	}

	s.logger.Info("finish: sync id=%s status=%s uploaded=%d skipped=%d duration=%dms",
		rec.ID, status, rec.RecordsUploaded.Total, rec.RecordsSkipped.Total, rec.DurationMs)

	return rec
}

// History возвращает историю синхронизаций, новые записи первыми
func (s *Service) History(ctx context.Context, sessionID string, filter models.HistoryFilter) ([]domain.SyncRecord, error) {
	var history []domain.SyncRecord
	if err := s.loadJSON(ctx, sessionID, domain.StateKeySyncHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.SyncRecord{}
	}

	if filter.Status != nil {
		filtered := make([]domain.SyncRecord, 0, len(history))
		for _, rec := range history {
			if rec.Status == *filter.Status {
				filtered = append(filtered, rec)
			}
		}
		history = filtered
	}

	if filter.Limit > 0 && len(history) > filter.Limit {
		history = history[:filter.Limit]
	}

	return history, nil
}

// Stats возвращает накопительную статистику синхронизаций
func (s *Service) Stats(ctx context.Context, sessionID string) (*domain.SyncStats, error) {
	stats := &domain.SyncStats{}
	if err := s.loadJSON(ctx, sessionID, domain.StateKeySyncStats, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ClearHistory очищает историю синхронизаций и обнуляет статистику
// Единственный случай, когда статистика убывает
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.saveJSON(txCtx, sessionID, domain.StateKeySyncHistory, []domain.SyncRecord{}); err != nil {
			return err
		}
		return s.saveJSON(txCtx, sessionID, domain.StateKeySyncStats, &domain.SyncStats{})
	})
	if err != nil {
		return err
	}

	s.logger.Info("ClearHistory: session=%s history and stats reset", sessionID)
	return nil
}

// Queue возвращает очередь локальных изменений, ожидающих отправки
func (s *Service) Queue(ctx context.Context, sessionID string) ([]domain.PendingRecord, error) {
	var queue []domain.PendingRecord
	if err := s.loadJSON(ctx, sessionID, domain.StateKeySyncQueue, &queue); err != nil {
		return nil, err
	}
	if queue == nil {
		queue = []domain.PendingRecord{}
	}
	return queue, nil
}

// QueueChange ставит локальное изменение в очередь на отправку
// Повторное изменение той же записи замещает её в очереди, а не дублирует
func (s *Service) QueueChange(ctx context.Context, sessionID string, record domain.PendingRecord) (*domain.PendingRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Category != domain.CategoryClass && record.Category != domain.CategoryInstance {
		return nil, fmt.Errorf("%w: unknown record category %q", ErrInternal, record.Category)
	}

	queue, err := s.Queue(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range queue {
		if queue[i].ID == record.ID {
			queue[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		queue = append(queue, record)
	}

	if err := s.saveJSON(ctx, sessionID, domain.StateKeySyncQueue, queue); err != nil {
		return nil, err
	}

	s.logger.Info("QueueChange: session=%s queued record id=%s category=%s, queue size=%d",
		sessionID, record.ID, record.Category, len(queue))
	return &record, nil
}

// SetAutoSync включает или выключает автоматическую синхронизацию сессии
func (s *Service) SetAutoSync(ctx context.Context, sessionID string, enabled bool) error {
	if err := s.saveJSON(ctx, sessionID, domain.StateKeyAutoSyncEnabled, enabled); err != nil {
		return err
	}
	s.logger.Info("SetAutoSync: session=%s enabled=%t", sessionID, enabled)
	return nil
}

// AutoSyncEnabled возвращает настройку автоматической синхронизации
// До первого явного выбора автосинхронизация включена
func (s *Service) AutoSyncEnabled(ctx context.Context, sessionID string) (bool, error) {
	raw, err := s.stateRepo.Load(ctx, sessionID, domain.StateKeyAutoSyncEnabled)
	if err != nil {
		if errors.Is(err, state.ErrKeyNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("%w: AutoSyncEnabled - load setting: %v", ErrInternal, err)
	}

	var enabled bool
	if err := json.Unmarshal(raw, &enabled); err != nil {
		return false, fmt.Errorf("%w: AutoSyncEnabled - unmarshal setting: %v", ErrInternal, err)
	}
	return enabled, nil
}

// RunScheduler периодически запускает автоматическую синхронизацию,
// пока она включена и очередь не пуста. Блокируется до отмены контекста
func (s *Service) RunScheduler(ctx context.Context, sessionID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("RunScheduler: started with interval=%s", interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("RunScheduler: stopped")
			return
		case <-ticker.C:
			enabled, err := s.AutoSyncEnabled(ctx, sessionID)
			if err != nil {
				s.logger.Error("RunScheduler: failed to read auto-sync setting: %v", err)
				continue
			}
			if !enabled {
				continue
			}

			queue, err := s.Queue(ctx, sessionID)
			if err != nil {
				s.logger.Error("RunScheduler: failed to read queue: %v", err)
				continue
			}
			if len(queue) == 0 {
				continue
			}

			if _, err := s.Start(ctx, sessionID, domain.SyncTypeAuto, domain.TriggerSchedule); err != nil {
				if !errors.Is(err, ErrSyncInProgress) {
					s.logger.Error("RunScheduler: scheduled sync failed to start: %v", err)
				}
			}
		}
	}
}

// Вспомогательные методы

func (s *Service) appendError(rec *domain.SyncRecord, kind domain.SyncErrorKind, message, recordID string) {
	rec.Errors = append(rec.Errors, domain.SyncError{
		Kind:      kind,
		Message:   message,
		RecordID:  recordID,
		Timestamp: s.now(),
	})
}

func (s *Service) setProgressStatus(status domain.SyncStatus, processed, total int) {
	s.mu.Lock()
	s.progress.Status = status
	s.progress.ProcessedRecords = processed
	s.progress.TotalRecords = total
	s.mu.Unlock()
}

func (s *Service) progressProcessed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.ProcessedRecords
}

func (s *Service) progressTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.TotalRecords
}

// loadJSON читает и распаковывает blob логического ключа
// Отсутствие ключа оставляет целевое значение нетронутым
func (s *Service) loadJSON(ctx context.Context, sessionID, key string, target interface{}) error {
	raw, err := s.stateRepo.Load(ctx, sessionID, key)
	if err != nil {
		if errors.Is(err, state.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %v", ErrInternal, key, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", ErrInternal, key, err)
	}
	return nil
}

// saveJSON перезаписывает blob логического ключа целиком
func (s *Service) saveJSON(ctx context.Context, sessionID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrInternal, key, err)
	}
	if err := s.stateRepo.Save(ctx, sessionID, key, raw); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrInternal, key, err)
	}
	return nil
}

// validateRecord проверяет запись очереди перед отправкой
func validateRecord(rec *domain.PendingRecord) error {
	if rec.ID == "" {
		return errors.New("record id is empty")
	}
	if rec.Name == "" {
		return errors.New("record name is empty")
	}
	if len(rec.Payload) == 0 {
		return errors.New("record payload is empty")
	}
	if rec.Date != "" {
		if _, err := time.Parse(domain.DateFormat, rec.Date); err != nil {
			return fmt.Errorf("invalid record date %q", rec.Date)
		}
	}
	return nil
}

// classifyError маппит ошибки клиента удаленного хранилища на виды
// ошибок синхронизации
func classifyError(err error) domain.SyncErrorKind {
	switch {
	case errors.Is(err, catalogservice.ErrAuth):
		return domain.SyncErrorAuth
	case errors.Is(err, catalogservice.ErrQuota):
		return domain.SyncErrorQuota
	case errors.Is(err, catalogservice.ErrConflict):
		return domain.SyncErrorConflict
	case errors.Is(err, catalogservice.ErrServer):
		return domain.SyncErrorServer
	case errors.Is(err, catalogservice.ErrInvalidResponse):
		return domain.SyncErrorServer
	case errors.Is(err, catalogservice.ErrRemoteUnavailable):
		return domain.SyncErrorNetwork
	default:
		return domain.SyncErrorNetwork
	}
}
