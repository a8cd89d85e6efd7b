package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalyoga/UYS-SyncService/pkg/types"
)

func TestSortCatalogByDateThenTime(t *testing.T) {
	items := []CatalogItem{
		{ID: "a", Date: "2026-09-02", StartTime: types.TimeString("10:00")},
		{ID: "b", Date: "2026-09-01", StartTime: types.TimeString("18:00")},
		{ID: "c", Date: "2026-09-01", StartTime: types.TimeString("09:00")},
	}

	SortCatalog(items)

	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "a", items[2].ID)
}

func TestLatestCatalogUpdate(t *testing.T) {
	older := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	items := []CatalogItem{
		{ID: "a", LastUpdated: &older},
		{ID: "b"}, // без метки времени
		{ID: "c", LastUpdated: &newer},
	}

	latest := LatestCatalogUpdate(items)
	require.NotNil(t, latest)
	assert.Equal(t, newer, *latest)
}

func TestLatestCatalogUpdateNilWhenNoTimestamps(t *testing.T) {
	assert.Nil(t, LatestCatalogUpdate(nil))
	assert.Nil(t, LatestCatalogUpdate([]CatalogItem{{ID: "a"}}))
}

func TestSpotsLeftClampsAtZero(t *testing.T) {
	item := CatalogItem{Capacity: 10, Enrolled: 12}
	assert.Equal(t, 0, item.SpotsLeft())
	assert.True(t, item.IsFull())

	item = CatalogItem{Capacity: 10, Enrolled: 7}
	assert.Equal(t, 3, item.SpotsLeft())
	assert.False(t, item.IsFull())
}

func TestComposeItemID(t *testing.T) {
	assert.Equal(t, "course-1_inst-2", ComposeItemID("course-1", "inst-2"))
}
