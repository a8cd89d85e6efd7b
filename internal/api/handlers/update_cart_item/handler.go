package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuantity    = "некорректное количество мест"
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

// Handle PUT /api/v1/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	var req UpdateCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cart/items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entries, err := h.service.UpdateQuantity(r.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			h.logger.Warn("PUT /cart/items/{id} - Invalid quantity=%d: item=%s, session=%s",
				req.Quantity, itemID, sessionID)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		default:
			h.logger.Error("PUT /cart/items/{id} - Failed to update item: item=%s, session=%s, error=%v",
				itemID, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cart/items/{id} - Quantity updated: item=%s, quantity=%d, session=%s",
		itemID, req.Quantity, sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCart(entries))
}
