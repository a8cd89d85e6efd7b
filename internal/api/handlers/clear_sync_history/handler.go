package clear_sync_history

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

// Handle DELETE /api/v1/sync/history
// Вместе с историей обнуляется и накопительная статистика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.engine.ClearHistory(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /sync/history - Failed to clear history: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sync/history - History cleared: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
