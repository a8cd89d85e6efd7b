package sync_settings

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// settingsModel HTTP модель настроек синхронизации
type settingsModel struct {
	AutoSyncEnabled bool `json:"autoSyncEnabled"`
}

// HandleGet GET /api/v1/sync/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	enabled, err := h.engine.AutoSyncEnabled(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /sync/settings - Failed to load settings: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settingsModel{AutoSyncEnabled: enabled})
}

// HandleUpdate PUT /api/v1/sync/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req settingsModel
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sync/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.engine.SetAutoSync(r.Context(), sessionID, req.AutoSyncEnabled); err != nil {
		h.logger.Error("PUT /sync/settings - Failed to update settings: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /sync/settings - Auto-sync set to %t: session=%s", req.AutoSyncEnabled, sessionID)
	handlers.RespondJSON(w, http.StatusOK, settingsModel{AutoSyncEnabled: req.AutoSyncEnabled})
}
