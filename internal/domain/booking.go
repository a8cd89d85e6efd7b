package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed единственный статус, порождаемый потоком оформления
	StatusConfirmed BookingStatus = "confirmed"
)

// BookedClass денормализованный снимок занятия на момент бронирования
// Инвариант: снимок неизменяем после создания - последующие изменения
// каталога не затрагивают историю бронирований
type BookedClass struct {
	ItemID          string
	Name            string
	Instructor      string
	Type            string
	Date            string
	Time            string
	DurationMinutes int
	Price           float64
	Difficulty      string
	Quantity        int
}

// Booking represents a confirmed booking created from a single cart line
type Booking struct {
	ID           string // присваивается бэкендом
	Email        string
	Classes      []BookedClass
	TotalAmount  float64
	TotalClasses int
	BookingDate  time.Time
	Status       BookingStatus
	CreatedAt    time.Time
}

// NewBookingFromCartEntry создает бронирование из одной строки корзины
// Каждая строка корзины порождает отдельную запись бронирования -
// контракт, на который опирается отображение истории
func NewBookingFromCartEntry(entry CartEntry, email string, now time.Time) Booking {
	snapshot := BookedClass{
		ItemID:          entry.ItemID,
		Name:            entry.Item.Name,
		Instructor:      entry.Item.Instructor,
		Type:            entry.Item.Type,
		Date:            entry.Item.Date,
		Time:            entry.Item.StartTime.String(),
		DurationMinutes: entry.Item.DurationMinutes,
		Price:           entry.Item.Price,
		Difficulty:      entry.Item.Difficulty,
		Quantity:        entry.Quantity,
	}

	return Booking{
		Email:        email,
		Classes:      []BookedClass{snapshot},
		TotalAmount:  entry.LineTotal(),
		TotalClasses: entry.Quantity,
		BookingDate:  now,
		Status:       StatusConfirmed,
		CreatedAt:    now,
	}
}

// BookingsTotal возвращает суммарную стоимость набора бронирований
func BookingsTotal(bookings []Booking) float64 {
	total := 0.0
	for i := range bookings {
		total += bookings[i].TotalAmount
	}
	return total
}
