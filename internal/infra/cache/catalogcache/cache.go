package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

var (
	// ErrCacheMiss возвращается, когда снимок каталога отсутствует в кеше
	ErrCacheMiss = errors.New("catalog cache: snapshot not found")

	// ErrInternal возвращается при внутренних ошибках кеша
	ErrInternal = errors.New("catalog cache: internal error")
)

const snapshotKey = "catalog:snapshot"

// Snapshot последний успешно загруженный снимок каталога
// Используется как деградированный источник при недоступности удаленного
// хранилища: устаревшие, но отображаемые данные лучше пустого экрана
type Snapshot struct {
	Items     []domain.CatalogItem `json:"items"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

// Cache Redis-кеш последнего снимка каталога
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый экземпляр кеша каталога
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Store сохраняет снимок каталога
func (c *Cache) Store(ctx context.Context, snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: Store - marshal snapshot: %v", ErrInternal, err)
	}

	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Store - redis set: %v", ErrInternal, err)
	}

	return nil
}

// Latest возвращает последний сохраненный снимок каталога
func (c *Cache) Latest(ctx context.Context) (*Snapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Latest - redis get: %v", ErrInternal, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: Latest - unmarshal snapshot: %v", ErrInternal, err)
	}

	return &snapshot, nil
}
