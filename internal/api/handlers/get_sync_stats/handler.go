package get_sync_stats

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
)

type Handler struct {
	engine SyncEngine
	logger Logger
}

func NewHandler(engine SyncEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// statsResponse HTTP response model накопительной статистики
type statsResponse struct {
	TotalSyncs        int     `json:"totalSyncs"`
	SuccessfulSyncs   int     `json:"successfulSyncs"`
	FailedSyncs       int     `json:"failedSyncs"`
	AverageSyncTimeMs int64   `json:"averageSyncTimeMs"`
	TotalDataSyncedKB float64 `json:"totalDataSyncedKb"`
}

// Handle GET /api/v1/sync/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	stats, err := h.engine.Stats(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /sync/stats - Failed to load stats: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statsResponse{
		TotalSyncs:        stats.TotalSyncs,
		SuccessfulSyncs:   stats.SuccessfulSyncs,
		FailedSyncs:       stats.FailedSyncs,
		AverageSyncTimeMs: stats.AverageSyncTimeMs,
		TotalDataSyncedKB: stats.TotalDataSyncedKB,
	})
}
