package domain

import (
	"encoding/json"
	"math"
	"time"
)

// SyncStatus represents the lifecycle state of a sync attempt
type SyncStatus string

const (
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusInProgress SyncStatus = "in-progress"
	SyncStatusCompleted  SyncStatus = "completed"
	SyncStatusFailed     SyncStatus = "failed"
	SyncStatusCancelled  SyncStatus = "cancelled"
)

// IsTerminal returns true for completed, failed and cancelled states
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusFailed || s == SyncStatusCancelled
}

// SyncType тип синхронизации
type SyncType string

const (
	SyncTypeManual SyncType = "manual"
	SyncTypeAuto   SyncType = "auto"
)

// SyncTrigger причина запуска синхронизации
type SyncTrigger string

const (
	TriggerUser     SyncTrigger = "user"
	TriggerSchedule SyncTrigger = "schedule"
	TriggerRetry    SyncTrigger = "retry"
)

// SyncErrorKind classifies a sync error
type SyncErrorKind string

const (
	SyncErrorNetwork    SyncErrorKind = "network"
	SyncErrorValidation SyncErrorKind = "validation"
	SyncErrorServer     SyncErrorKind = "server"
	SyncErrorAuth       SyncErrorKind = "auth"
	SyncErrorQuota      SyncErrorKind = "quota"
	SyncErrorConflict   SyncErrorKind = "conflict"
)

// SyncError ошибка, привязанная ровно к одной попытке синхронизации
type SyncError struct {
	Kind      SyncErrorKind `json:"kind"`
	Message   string        `json:"message"`
	RecordID  string        `json:"recordId,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Resolved  bool          `json:"resolved"`
}

// RecordCategory категория записи в очереди синхронизации
type RecordCategory string

const (
	CategoryClass    RecordCategory = "class"
	CategoryInstance RecordCategory = "instance"
)

// RecordCounts счетчики записей по категориям
type RecordCounts struct {
	Classes   int `json:"classes"`
	Instances int `json:"instances"`
	Total     int `json:"total"`
}

// Add увеличивает счетчик соответствующей категории
func (c *RecordCounts) Add(category RecordCategory) {
	switch category {
	case CategoryClass:
		c.Classes++
	case CategoryInstance:
		c.Instances++
	}
	c.Total++
}

// PendingRecord локальное изменение, ожидающее отправки в удаленное хранилище
type PendingRecord struct {
	ID       string          `json:"id"`
	Category RecordCategory  `json:"category"`
	Name     string          `json:"name"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Payload  json.RawMessage `json:"payload"`
}

// QueueDataSizeKB оценивает размер полезной нагрузки очереди в килобайтах
// (округление до двух знаков)
func QueueDataSizeKB(queue []PendingRecord) float64 {
	size := 0
	for i := range queue {
		size += len(queue[i].Payload)
	}
	return math.Round(float64(size)/1024*100) / 100
}

// SyncRecord одна попытка отправки локальных изменений
// Проходит ровно одно терминальное состояние и после него неизменяема
type SyncRecord struct {
	ID               string       `json:"id"`
	Timestamp        time.Time    `json:"timestamp"`
	Status           SyncStatus   `json:"status"`
	Type             SyncType     `json:"type"`
	Trigger          SyncTrigger  `json:"trigger"`
	RecordsProcessed RecordCounts `json:"recordsProcessed"`
	RecordsUploaded  RecordCounts `json:"recordsUploaded"`
	RecordsSkipped   RecordCounts `json:"recordsSkipped"`
	Errors           []SyncError  `json:"errors"`
	RetryCount       int          `json:"retryCount"`
	DurationMs       int64        `json:"durationMs"`
	DataSizeKB       float64      `json:"dataSizeKb"`
}

// SyncStats накопительная статистика по завершенным синхронизациям
// Пересчитывается только инкрементально, никогда с нуля
type SyncStats struct {
	TotalSyncs        int     `json:"totalSyncs"`
	SuccessfulSyncs   int     `json:"successfulSyncs"`
	FailedSyncs       int     `json:"failedSyncs"`
	AverageSyncTimeMs int64   `json:"averageSyncTimeMs"`
	TotalDataSyncedKB float64 `json:"totalDataSyncedKb"`
}

// Apply учитывает терминальную запись синхронизации в статистике
// Скользящее среднее: newAvg = (oldAvg*oldTotal + duration) / (oldTotal+1).
// Отмененные синхронизации в статистику не входят
func (s *SyncStats) Apply(rec *SyncRecord) {
	switch rec.Status {
	case SyncStatusCompleted:
		s.SuccessfulSyncs++
	case SyncStatusFailed:
		s.FailedSyncs++
	default:
		return
	}

	s.AverageSyncTimeMs = (s.AverageSyncTimeMs*int64(s.TotalSyncs) + rec.DurationMs) / int64(s.TotalSyncs+1)
	s.TotalSyncs++
	s.TotalDataSyncedKB += rec.DataSizeKB
}

// AppendToHistory добавляет терминальную запись в начало истории,
// отбрасывая самые старые записи сверх лимита
func AppendToHistory(history []SyncRecord, rec SyncRecord) []SyncRecord {
	updated := make([]SyncRecord, 0, len(history)+1)
	updated = append(updated, rec)
	updated = append(updated, history...)
	if len(updated) > SyncHistoryLimit {
		updated = updated[:SyncHistoryLimit]
	}
	return updated
}
