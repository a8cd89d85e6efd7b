package submit_booking

import (
	"time"

	submitBooking "github.com/universalyoga/UYS-SyncService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Email string `json:"email"`
}

// BookingResponse HTTP response model одного созданного бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	ClassName   string  `json:"className"`
	ClassDate   string  `json:"classDate"`
	ClassTime   string  `json:"classTime"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	BookingDate string  `json:"bookingDate"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	TotalAmount  float64           `json:"totalAmount"`
	TotalClasses int               `json:"totalClasses"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID: sessionID,
		Email:     r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	out := &SubmitBookingResponse{
		Bookings:     make([]BookingResponse, 0, len(resp.Bookings)),
		TotalAmount:  resp.TotalAmount,
		TotalClasses: resp.TotalClasses,
	}

	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:          b.ID,
			ClassName:   b.ClassName,
			ClassDate:   b.ClassDate,
			ClassTime:   b.ClassTime,
			Quantity:    b.Quantity,
			TotalAmount: b.TotalAmount,
			Status:      b.Status,
			BookingDate: b.BookingDate.Format(time.RFC3339),
		})
	}

	return out
}
