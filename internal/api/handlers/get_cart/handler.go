package get_cart

import (
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cart
// Перед выдачей корзина сверяется с актуальным каталогом: строки
// удаленных занятий выбрасываются и возвращаются отдельным списком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	survivors, removed, result, err := h.service.Reconcile(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /cart - Failed to reconcile cart: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if len(removed) > 0 {
		h.logger.Info("GET /cart - Dropped %d stale entries: session=%s", len(removed), sessionID)
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCart(survivors, removed, string(result.Source), result.IsFresh))
}
