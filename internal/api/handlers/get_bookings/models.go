package get_bookings

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// BookedClassResponse HTTP response model снимка занятия
type BookedClassResponse struct {
	ItemID     string  `json:"itemId"`
	Name       string  `json:"name"`
	Instructor string  `json:"instructor"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// BookingResponse HTTP response model бронирования
type BookingResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Classes      []BookedClassResponse `json:"classes"`
	TotalAmount  float64               `json:"totalAmount"`
	TotalClasses int                   `json:"totalClasses"`
	BookingDate  string                `json:"bookingDate"`
	Status       string                `json:"status"`
}

// BookingListResponse HTTP response model списка бронирований
type BookingListResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	TotalAmount float64           `json:"totalAmount"`
}

// FromDomainBookings конвертирует бронирования в HTTP response
func FromDomainBookings(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings:    make([]BookingResponse, 0, len(bookings)),
		TotalAmount: domain.BookingsTotal(bookings),
	}

	for i := range bookings {
		b := &bookings[i]
		view := BookingResponse{
			ID:           b.ID,
			Email:        b.Email,
			Classes:      make([]BookedClassResponse, 0, len(b.Classes)),
			TotalAmount:  b.TotalAmount,
			TotalClasses: b.TotalClasses,
			BookingDate:  b.BookingDate.Format(time.RFC3339),
			Status:       string(b.Status),
		}
		for _, cls := range b.Classes {
			view.Classes = append(view.Classes, BookedClassResponse{
				ItemID:     cls.ItemID,
				Name:       cls.Name,
				Instructor: cls.Instructor,
				Date:       cls.Date,
				Time:       cls.Time,
				Price:      cls.Price,
				Quantity:   cls.Quantity,
			})
		}
		resp.Bookings = append(resp.Bookings, view)
	}

	return resp
}
