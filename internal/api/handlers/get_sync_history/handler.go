package get_sync_history

import (
	"net/http"
	"strconv"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine/models"
	"github.com/universalyoga/UYS-SyncService/pkg/ptr"
)

const (
	msgInvalidStatus = "некорректный статус синхронизации"
	msgInvalidLimit  = "некорректный параметр limit"
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

// Handle GET /api/v1/sync/history?status=&limit=
// Записи возвращаются от новых к старым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	filter := models.HistoryFilter{}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.SyncStatus(raw)
		if !status.IsTerminal() {
			h.logger.Warn("GET /sync/history - Invalid status %q: session=%s", raw, sessionID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = ptr.Ptr(status)
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /sync/history - Invalid limit %q: session=%s", raw, sessionID)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	history, err := h.engine.History(r.Context(), sessionID, filter)
	if err != nil {
		h.logger.Error("GET /sync/history - Failed to load history: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sync/history - %d records: session=%s", len(history), sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainHistory(history))
}
