package retry_sync

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/service/syncengine"
)

const (
	msgRecordNotFound = "запись синхронизации не найдена"
	msgNotRetryable   = "повторить можно только неудачную синхронизацию"
	msgSyncInProgress = "синхронизация уже выполняется"
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

// Handle POST /api/v1/sync/retry/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	recordID := mux.Vars(r)["recordId"]

	rec, err := h.engine.Retry(r.Context(), sessionID, recordID)
	if err != nil {
		switch {
		case errors.Is(err, syncengine.ErrRecordNotFound):
			h.logger.Warn("POST /sync/retry/{id} - Record not found: record=%s, session=%s", recordID, sessionID)
			handlers.RespondNotFound(w, msgRecordNotFound)

		case errors.Is(err, syncengine.ErrNotRetryable):
			h.logger.Warn("POST /sync/retry/{id} - Record not retryable: record=%s, session=%s", recordID, sessionID)
			handlers.RespondUnprocessable(w, msgNotRetryable)

		case errors.Is(err, syncengine.ErrSyncInProgress):
			h.logger.Warn("POST /sync/retry/{id} - Sync already in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgSyncInProgress)

		default:
			h.logger.Error("POST /sync/retry/{id} - Failed to retry sync: record=%s, session=%s, error=%v",
				recordID, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sync/retry/{id} - Retry finished: id=%s, status=%s, retry=%d, session=%s",
		rec.ID, rec.Status, rec.RetryCount, sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainRecord(rec))
}
