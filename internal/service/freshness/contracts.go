package freshness

import (
	"context"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/cache/catalogcache"
)

// CatalogClient интерфейс клиента удаленного хранилища каталога
type CatalogClient interface {
	FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error)
}

// SnapshotCache интерфейс кеша последнего снимка каталога
type SnapshotCache interface {
	Store(ctx context.Context, snapshot *catalogcache.Snapshot) error
	Latest(ctx context.Context) (*catalogcache.Snapshot, error)
}

// Metrics интерфейс для учета загрузок каталога
type Metrics interface {
	IncCatalogFetch(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
