package get_bookings

import (
	"errors"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
)

const (
	msgMissingEmail      = "отсутствует параметр email"
	msgRemoteUnavailable = "удаленное хранилище недоступно"
)

type Handler struct {
	client CatalogServiceClient
	logger Logger
}

func NewHandler(client CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings?email=...
// Бронирования возвращаются от новых к старым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /bookings - Missing email parameter")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	bookings, err := h.client.FetchBookingsByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, catalogservice.ErrRemoteUnavailable) {
			h.logger.Error("GET /bookings - Remote unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRemoteUnavailable)
			return
		}
		h.logger.Error("GET /bookings - Failed to fetch bookings: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings: email=%s", len(bookings), email)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(bookings))
}
