package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/infra/storage/state"
	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

type memStateRepo struct {
	values map[string]json.RawMessage
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{values: map[string]json.RawMessage{}}
}

func (m *memStateRepo) Load(_ context.Context, sessionID, key string) (json.RawMessage, error) {
	raw, ok := m.values[sessionID+"/"+key]
	if !ok {
		return nil, state.ErrKeyNotFound
	}
	return raw, nil
}

func (m *memStateRepo) Save(_ context.Context, sessionID, key string, value json.RawMessage) error {
	m.values[sessionID+"/"+key] = value
	return nil
}

type fakeCatalog struct {
	result *freshmodels.Result
}

func (f *fakeCatalog) FetchWithFreshness(_ context.Context) *freshmodels.Result {
	return f.result
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func remoteCatalog(items ...domain.CatalogItem) *fakeCatalog {
	return &fakeCatalog{result: &freshmodels.Result{
		Items:   items,
		IsFresh: true,
		Source:  freshmodels.SourceRemote,
	}}
}

const sessionID = "session-1"

func TestItemsEmptyForNewSession(t *testing.T) {
	svc := NewService(newMemStateRepo(), remoteCatalog(), nopLogger{})

	entries, err := svc.Items(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddAccumulatesAndPersists(t *testing.T) {
	repo := newMemStateRepo()
	catalog := remoteCatalog(domain.CatalogItem{ID: "c1_i1", Name: "Hatha", Price: 25})
	svc := NewService(repo, catalog, nopLogger{})

	ctx := context.Background()
	_, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)
	entries, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)

	// Корзина переживает пересоздание сервиса - состояние в хранилище
	svc2 := NewService(repo, catalog, nopLogger{})
	reloaded, err := svc2.Items(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, 2, reloaded[0].Quantity)
	assert.Equal(t, 25.0, reloaded[0].Item.Price)
}

func TestAddUnknownItem(t *testing.T) {
	svc := NewService(newMemStateRepo(), remoteCatalog(), nopLogger{})

	_, err := svc.Add(context.Background(), sessionID, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc := NewService(newMemStateRepo(), remoteCatalog(domain.CatalogItem{ID: "c1_i1", Price: 25}), nopLogger{})

	ctx := context.Background()
	_, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)

	entries, err := svc.UpdateQuantity(ctx, sessionID, "c1_i1", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateQuantityRejectsNegative(t *testing.T) {
	svc := NewService(newMemStateRepo(), remoteCatalog(), nopLogger{})

	_, err := svc.UpdateQuantity(context.Background(), sessionID, "c1_i1", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReconcileDropsDeletedItems(t *testing.T) {
	repo := newMemStateRepo()
	catalog := remoteCatalog(
		domain.CatalogItem{ID: "c1_i1", Price: 25},
		domain.CatalogItem{ID: "c2_i1", Price: 30},
	)
	svc := NewService(repo, catalog, nopLogger{})

	ctx := context.Background()
	_, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, sessionID, "c2_i1")
	require.NoError(t, err)

	// Администратор удалил второе занятие
	catalog.result.Items = catalog.result.Items[:1]

	survivors, removed, result, err := svc.Reconcile(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, freshmodels.SourceRemote, result.Source)
	require.Len(t, survivors, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, "c2_i1", removed[0].ItemID)

	// Выжившие строки сохранены
	reloaded, err := svc.Items(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "c1_i1", reloaded[0].ItemID)
}

func TestReconcileSkippedWhenCatalogNotRemote(t *testing.T) {
	repo := newMemStateRepo()
	catalog := remoteCatalog(domain.CatalogItem{ID: "c1_i1", Price: 25})
	svc := NewService(repo, catalog, nopLogger{})

	ctx := context.Background()
	_, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)

	// Хранилище стало недоступно: каталог пуст, источник no_data
	catalog.result = &freshmodels.Result{Items: []domain.CatalogItem{}, Source: freshmodels.SourceNoData}

	survivors, removed, _, err := svc.Reconcile(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, survivors, 1)
	assert.Empty(t, removed)
}

func TestClear(t *testing.T) {
	svc := NewService(newMemStateRepo(), remoteCatalog(domain.CatalogItem{ID: "c1_i1", Price: 25}), nopLogger{})

	ctx := context.Background()
	_, err := svc.Add(ctx, sessionID, "c1_i1")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, sessionID))

	entries, err := svc.Items(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
