package models

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// Progress снимок состояния выполняющейся синхронизации
type Progress struct {
	SyncID           string             `json:"syncId"`
	Status           domain.SyncStatus  `json:"status"`
	Trigger          domain.SyncTrigger `json:"trigger"`
	ProcessedRecords int                `json:"processedRecords"`
	TotalRecords     int                `json:"totalRecords"`
	StartedAt        time.Time          `json:"startedAt"`
}

// HistoryFilter фильтр выборки истории синхронизаций
// Нулевые значения означают отсутствие фильтрации
type HistoryFilter struct {
	Status *domain.SyncStatus
	Limit  int
}

// Settings настройки синхронизации сессии
type Settings struct {
	AutoSyncEnabled bool `json:"autoSyncEnabled"`
}
