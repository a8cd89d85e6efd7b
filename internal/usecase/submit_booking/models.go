package submit_booking

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// Request модель запроса на оформление бронирования
type Request struct {
	SessionID string // идентификатор сессии, владеющей корзиной
	Email     string // контактный email клиента
}

// BookingResult одна созданная запись бронирования
type BookingResult struct {
	ID          string    `json:"id"`
	ClassName   string    `json:"className"`
	ClassDate   string    `json:"classDate"`
	ClassTime   string    `json:"classTime"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"bookingDate"`
}

// Response модель ответа с созданными бронированиями
// Бронирований ровно столько, сколько строк было в корзине
type Response struct {
	Bookings     []BookingResult `json:"bookings"`
	TotalAmount  float64         `json:"totalAmount"`
	TotalClasses int             `json:"totalClasses"`
}

// newBookingResult собирает результат из domain бронирования
// По построению бронирование содержит ровно один снимок занятия
func newBookingResult(id string, b *domain.Booking) BookingResult {
	res := BookingResult{
		ID:          id,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		BookingDate: b.BookingDate,
	}
	if len(b.Classes) > 0 {
		res.ClassName = b.Classes[0].Name
		res.ClassDate = b.Classes[0].Date
		res.ClassTime = b.Classes[0].Time
		res.Quantity = b.Classes[0].Quantity
	}
	return res
}
