package start_sync

import (
	"errors"
	"io"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSyncType    = "некорректный тип синхронизации"
	msgSyncInProgress     = "синхронизация уже выполняется"
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

// Handle POST /api/v1/sync
// Выполняет синхронизацию до терминального состояния и возвращает её запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	// Тело опционально: запуск без тела означает ручную синхронизацию
	var req StartSyncRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sync - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	syncType, ok := req.ToSyncType()
	if !ok {
		h.logger.Warn("POST /sync - Invalid sync type %q: session=%s", req.Type, sessionID)
		handlers.RespondBadRequest(w, msgInvalidSyncType)
		return
	}

	rec, err := h.engine.Start(r.Context(), sessionID, syncType, domain.TriggerUser)
	if err != nil {
		if errors.Is(err, syncengine.ErrSyncInProgress) {
			h.logger.Warn("POST /sync - Sync already in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgSyncInProgress)
			return
		}
		h.logger.Error("POST /sync - Failed to start sync: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sync - Sync finished: id=%s, status=%s, session=%s", rec.ID, rec.Status, sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainRecord(rec))
}
