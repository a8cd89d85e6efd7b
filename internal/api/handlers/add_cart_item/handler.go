package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingItemID      = "отсутствует идентификатор занятия"
	msgItemNotFound       = "занятие не найдено в каталоге"
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ItemID == "" {
		h.logger.Warn("POST /cart/items - Missing item ID: session=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	entries, err := h.service.Add(r.Context(), sessionID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			h.logger.Warn("POST /cart/items - Item not found: item=%s, session=%s", req.ItemID, sessionID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: item=%s, session=%s, error=%v",
				req.ItemID, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: item=%s, session=%s", req.ItemID, sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCart(entries))
}
