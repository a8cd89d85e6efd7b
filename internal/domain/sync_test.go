package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStatsApplyRunningAverage(t *testing.T) {
	stats := SyncStats{}

	stats.Apply(&SyncRecord{Status: SyncStatusCompleted, DurationMs: 1000, DataSizeKB: 1.5})
	stats.Apply(&SyncRecord{Status: SyncStatusCompleted, DurationMs: 3000, DataSizeKB: 0.5})

	assert.Equal(t, 2, stats.TotalSyncs)
	assert.Equal(t, 2, stats.SuccessfulSyncs)
	assert.Equal(t, int64(2000), stats.AverageSyncTimeMs)
	assert.Equal(t, 2.0, stats.TotalDataSyncedKB)
}

func TestSyncStatsApplyCountsFailures(t *testing.T) {
	stats := SyncStats{}

	stats.Apply(&SyncRecord{Status: SyncStatusCompleted, DurationMs: 1000})
	stats.Apply(&SyncRecord{Status: SyncStatusFailed, DurationMs: 2000})

	assert.Equal(t, 2, stats.TotalSyncs)
	assert.Equal(t, 1, stats.SuccessfulSyncs)
	assert.Equal(t, 1, stats.FailedSyncs)
	assert.Equal(t, int64(1500), stats.AverageSyncTimeMs)
}

func TestSyncStatsApplyIgnoresCancelled(t *testing.T) {
	stats := SyncStats{}

	stats.Apply(&SyncRecord{Status: SyncStatusCancelled, DurationMs: 9999, DataSizeKB: 42})

	assert.Equal(t, 0, stats.TotalSyncs)
	assert.Equal(t, int64(0), stats.AverageSyncTimeMs)
	assert.Equal(t, 0.0, stats.TotalDataSyncedKB)
}

func TestAppendToHistoryPrependsAndCaps(t *testing.T) {
	var history []SyncRecord
	stats := SyncStats{}

	for i := 0; i < 60; i++ {
		rec := SyncRecord{ID: fmt.Sprintf("sync-%d", i), Status: SyncStatusCompleted, DurationMs: 100}
		stats.Apply(&rec)
		history = AppendToHistory(history, rec)
	}

	// История ограничена, статистика не убывает при вытеснении
	require.Len(t, history, SyncHistoryLimit)
	assert.Equal(t, "sync-59", history[0].ID)
	assert.Equal(t, "sync-10", history[SyncHistoryLimit-1].ID)
	assert.Equal(t, 60, stats.TotalSyncs)
}

func TestQueueDataSizeKBRoundsToTwoDecimals(t *testing.T) {
	queue := []PendingRecord{
		{ID: "1", Payload: json.RawMessage(make([]byte, 1000))},
		{ID: "2", Payload: json.RawMessage(make([]byte, 300))},
	}

	// 1300 / 1024 = 1.26953... -> 1.27
	assert.Equal(t, 1.27, QueueDataSizeKB(queue))
	assert.Equal(t, 0.0, QueueDataSizeKB(nil))
}

func TestRecordCountsAdd(t *testing.T) {
	counts := RecordCounts{}
	counts.Add(CategoryClass)
	counts.Add(CategoryInstance)
	counts.Add(CategoryInstance)

	assert.Equal(t, 1, counts.Classes)
	assert.Equal(t, 2, counts.Instances)
	assert.Equal(t, 3, counts.Total)
}

func TestSyncStatusIsTerminal(t *testing.T) {
	assert.True(t, SyncStatusCompleted.IsTerminal())
	assert.True(t, SyncStatusFailed.IsTerminal())
	assert.True(t, SyncStatusCancelled.IsTerminal())
	assert.False(t, SyncStatusPending.IsTerminal())
	assert.False(t, SyncStatusInProgress.IsTerminal())
}
