package freshness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/cache/catalogcache"
	"github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

type fakeClient struct {
	items []domain.CatalogItem
	err   error
}

func (f *fakeClient) FetchCatalog(_ context.Context) ([]domain.CatalogItem, error) {
	return f.items, f.err
}

type fakeCache struct {
	snapshot *catalogcache.Snapshot
	getErr   error
	stored   *catalogcache.Snapshot
}

func (f *fakeCache) Store(_ context.Context, snapshot *catalogcache.Snapshot) error {
	f.stored = snapshot
	return nil
}

func (f *fakeCache) Latest(_ context.Context) (*catalogcache.Snapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.snapshot == nil {
		return nil, catalogcache.ErrCacheMiss
	}
	return f.snapshot, nil
}

type fakeMetrics struct {
	fetches map[string]int
}

func (f *fakeMetrics) IncCatalogFetch(source string) {
	if f.fetches == nil {
		f.fetches = map[string]int{}
	}
	f.fetches[source]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(client *fakeClient, cache *fakeCache, meter *fakeMetrics, now time.Time) *Service {
	svc := NewService(client, cache, meter, nopLogger{})
	svc.now = func() time.Time { return now }
	return svc
}

func TestIsFreshWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeClient{}, &fakeCache{}, &fakeMetrics{}, now)

	recent := now.Add(-4 * time.Minute)
	stale := now.Add(-6 * time.Minute)

	assert.True(t, svc.IsFresh(&recent))
	assert.False(t, svc.IsFresh(&stale))
}

func TestIsFreshNilTimestampFailsOpen(t *testing.T) {
	svc := newTestService(&fakeClient{}, &fakeCache{}, &fakeMetrics{}, time.Now())
	assert.True(t, svc.IsFresh(nil))
}

func TestFetchWithFreshnessRemoteSuccess(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	updated := now.Add(-2 * time.Minute)

	client := &fakeClient{items: []domain.CatalogItem{{ID: "c1_i1", LastUpdated: &updated}}}
	cache := &fakeCache{}
	meter := &fakeMetrics{}
	svc := newTestService(client, cache, meter, now)

	result := svc.FetchWithFreshness(context.Background())

	assert.Equal(t, models.SourceRemote, result.Source)
	assert.True(t, result.IsFresh)
	require.NotNil(t, result.LastUpdate)
	assert.Equal(t, updated, *result.LastUpdate)

	// Удачная загрузка прозрачно обновляет кеш
	require.NotNil(t, cache.stored)
	assert.Len(t, cache.stored.Items, 1)
	assert.Equal(t, 1, meter.fetches[string(models.SourceRemote)])
}

func TestFetchWithFreshnessStaleRemoteData(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	updated := now.Add(-10 * time.Minute)

	client := &fakeClient{items: []domain.CatalogItem{{ID: "c1_i1", LastUpdated: &updated}}}
	svc := newTestService(client, &fakeCache{}, &fakeMetrics{}, now)

	result := svc.FetchWithFreshness(context.Background())

	assert.Equal(t, models.SourceRemote, result.Source)
	assert.False(t, result.IsFresh)
}

func TestFetchWithFreshnessFallsBackToCache(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	client := &fakeClient{err: errors.New("connection refused")}
	cache := &fakeCache{snapshot: &catalogcache.Snapshot{
		Items:     []domain.CatalogItem{{ID: "c1_i1"}},
		FetchedAt: now.Add(-20 * time.Minute),
	}}
	meter := &fakeMetrics{}
	svc := newTestService(client, cache, meter, now)

	result := svc.FetchWithFreshness(context.Background())

	assert.Equal(t, models.SourceCache, result.Source)
	assert.Len(t, result.Items, 1)
	assert.False(t, result.IsFresh)
	assert.Equal(t, 1, meter.fetches[string(models.SourceCache)])
}

func TestFetchWithFreshnessEmptyCacheReturnsNoData(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	svc := newTestService(client, &fakeCache{}, &fakeMetrics{}, time.Now())

	result := svc.FetchWithFreshness(context.Background())

	assert.Equal(t, models.SourceNoData, result.Source)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.False(t, result.IsFresh)
}

func TestFetchWithFreshnessCacheErrorNeverPanics(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := newTestService(client, cache, &fakeMetrics{}, time.Now())

	result := svc.FetchWithFreshness(context.Background())

	assert.Equal(t, models.SourceError, result.Source)
	assert.Empty(t, result.Items)
}
