package get_sync_queue

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/domain"
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

// queueItemResponse HTTP response model записи очереди
type queueItemResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Date     string `json:"date,omitempty"`
}

// queueResponse HTTP response model очереди синхронизации
type queueResponse struct {
	Records    []queueItemResponse `json:"records"`
	Counts     recordCounts        `json:"counts"`
	DataSizeKB float64             `json:"dataSizeKb"`
}

type recordCounts struct {
	Classes   int `json:"classes"`
	Instances int `json:"instances"`
	Total     int `json:"total"`
}

// Handle GET /api/v1/sync/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	queue, err := h.engine.Queue(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /sync/queue - Failed to load queue: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := queueResponse{
		Records:    make([]queueItemResponse, 0, len(queue)),
		DataSizeKB: domain.QueueDataSizeKB(queue),
	}

	counts := domain.RecordCounts{}
	for _, rec := range queue {
		counts.Add(rec.Category)
		resp.Records = append(resp.Records, queueItemResponse{
			ID:       rec.ID,
			Category: string(rec.Category),
			Name:     rec.Name,
			Date:     rec.Date,
		})
	}
	resp.Counts = recordCounts(counts)

	h.logger.Info("GET /sync/queue - %d records pending: session=%s", counts.Total, sessionID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
