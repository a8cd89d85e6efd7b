package submit_booking

import (
	"errors"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	submitBooking "github.com/universalyoga/UYS-SyncService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный контактный email, ожидается адрес gmail"
	msgEmptyCart          = "корзина пуста"
	msgClassUnavailable   = "одно из занятий корзины больше недоступно"
	msgCatalogUnavailable = "каталог недоступен, попробуйте позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, submitBooking.ErrEmptyCart):
			h.logger.Warn("POST /bookings - Empty cart: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, submitBooking.ErrClassUnavailable):
			h.logger.Warn("POST /bookings - Class unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgClassUnavailable)

		case errors.Is(err, submitBooking.ErrCatalogUnavailable):
			h.logger.Error("POST /bookings - Catalog unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created %d bookings: session=%s, total=%.2f",
		len(result.Bookings), sessionID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
