package queue_change

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCategory    = "некорректная категория записи, ожидается class или instance"
	msgMissingName        = "отсутствует название записи"
	msgMissingPayload     = "отсутствует полезная нагрузка записи"
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

// Handle POST /api/v1/sync/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req QueueChangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sync/queue - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category := domain.RecordCategory(req.Category)
	if category != domain.CategoryClass && category != domain.CategoryInstance {
		h.logger.Warn("POST /sync/queue - Invalid category %q: session=%s", req.Category, sessionID)
		handlers.RespondBadRequest(w, msgInvalidCategory)
		return
	}
	if req.Name == "" {
		handlers.RespondBadRequest(w, msgMissingName)
		return
	}
	if len(req.Payload) == 0 {
		handlers.RespondBadRequest(w, msgMissingPayload)
		return
	}

	queued, err := h.engine.QueueChange(r.Context(), sessionID, req.ToDomainRecord())
	if err != nil {
		h.logger.Error("POST /sync/queue - Failed to queue change: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sync/queue - Change queued: id=%s, category=%s, session=%s",
		queued.ID, queued.Category, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, QueueChangeResponse{
		ID:       queued.ID,
		Category: string(queued.Category),
		Name:     queued.Name,
		Date:     queued.Date,
	})
}
