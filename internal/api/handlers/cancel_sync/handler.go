package cancel_sync

import (
	"errors"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine"
)

const msgNoSyncInProgress = "нет выполняющейся синхронизации"

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

// Handle DELETE /api/v1/sync
// Отмена кооперативная: текущая запись дозаканчивается, откат не выполняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.engine.Cancel(sessionID); err != nil {
		if errors.Is(err, syncengine.ErrNoSyncInProgress) {
			h.logger.Warn("DELETE /sync - No sync in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgNoSyncInProgress)
			return
		}
		h.logger.Error("DELETE /sync - Failed to cancel sync: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sync - Cancellation requested: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
