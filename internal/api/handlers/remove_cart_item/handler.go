package remove_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/domain"
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

// removeCartItemResponse HTTP response model
type removeCartItemResponse struct {
	TotalAmount  float64 `json:"totalAmount"`
	TotalClasses int     `json:"totalClasses"`
}

// Handle DELETE /api/v1/cart/items/{itemId}
// Удаление несуществующей строки не считается ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	entries, err := h.service.Remove(r.Context(), sessionID, itemID)
	if err != nil {
		h.logger.Error("DELETE /cart/items/{id} - Failed to remove item: item=%s, session=%s, error=%v",
			itemID, sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart/items/{id} - Item removed: item=%s, session=%s", itemID, sessionID)
	handlers.RespondJSON(w, http.StatusOK, removeCartItemResponse{
		TotalAmount:  domain.CartTotal(entries),
		TotalClasses: domain.CartSize(entries),
	})
}
