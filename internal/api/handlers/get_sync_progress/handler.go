package get_sync_progress

import (
	"net/http"
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
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

// progressResponse HTTP response model хода синхронизации
type progressResponse struct {
	Active           bool   `json:"active"`
	SyncID           string `json:"syncId,omitempty"`
	Status           string `json:"status,omitempty"`
	Trigger          string `json:"trigger,omitempty"`
	ProcessedRecords int    `json:"processedRecords"`
	TotalRecords     int    `json:"totalRecords"`
	StartedAt        string `json:"startedAt,omitempty"`
}

// Handle GET /api/v1/sync/progress
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	progress := h.engine.Progress()
	if progress == nil {
		handlers.RespondJSON(w, http.StatusOK, progressResponse{Active: false})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, progressResponse{
		Active:           true,
		SyncID:           progress.SyncID,
		Status:           string(progress.Status),
		Trigger:          string(progress.Trigger),
		ProcessedRecords: progress.ProcessedRecords,
		TotalRecords:     progress.TotalRecords,
		StartedAt:        progress.StartedAt.Format(time.RFC3339),
	})
}
