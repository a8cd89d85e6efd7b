package domain

import "time"

// Freshness constants
const (
	// StalenessWindow порог, после которого кешированный каталог
	// перестает считаться актуальным без повторной загрузки
	StalenessWindow = 5 * time.Minute
)

// Sync constants
const (
	// SyncHistoryLimit максимальный размер истории синхронизаций
	// (самые старые записи вытесняются; статистика при этом не убывает)
	SyncHistoryLimit = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Local state keys - логические ключи локального key-value хранилища
// Каждый ключ читается один раз на старте сессии и перезаписывается
// целиком при каждом изменении
const (
	StateKeyCart            = "cart"
	StateKeySyncHistory     = "syncHistory"
	StateKeySyncStats       = "syncStats"
	StateKeySyncQueue       = "syncQueue"
	StateKeyAutoSyncEnabled = "autoSyncEnabled"
)
