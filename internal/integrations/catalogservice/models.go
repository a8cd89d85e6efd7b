package catalogservice

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/pkg/types"
)

// syncStatusDeleted значение флага мягкого удаления в удаленном хранилище
// Записи с этим флагом физически существуют, но не должны попадать к клиентам
const syncStatusDeleted = 2

// rawCatalogRecord запись каталога в том виде, в каком её хранит удаленное
// хранилище. Наследие двух приложений: часть полей существует в двух именах
// (courseName/name, instructor/teacher, startTime/time) - нормализация
// выполняется здесь, на границе, и дальше по коду двойных имен нет
type rawCatalogRecord struct {
	ID           string  `json:"id"`
	CourseID     string  `json:"courseId"`
	InstanceID   string  `json:"instanceId"`
	CourseName   string  `json:"courseName"`
	Name         string  `json:"name"`
	Instructor   string  `json:"instructor"`
	Teacher      string  `json:"teacher"`
	ClassType    string  `json:"type"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Time         string  `json:"time"`
	Duration     int     `json:"duration"`
	Capacity     int     `json:"capacity"`
	Enrolled     int     `json:"enrolled"`
	Price        float64 `json:"price"`
	Difficulty   string  `json:"difficulty"`
	Description  string  `json:"description"`
	Comments     string  `json:"comments"`
	RoomLocation string  `json:"roomLocation"`
	ImageURL     string  `json:"imageUrl"`
	SyncStatus   int     `json:"syncStatus"`
	LastUpdated  *string `json:"lastUpdated"` // RFC3339
}

// isDeleted проверяет флаг мягкого удаления
func (r *rawCatalogRecord) isDeleted() bool {
	return r.SyncStatus == syncStatusDeleted
}

// toDomain нормализует сырую запись в domain.CatalogItem
func (r *rawCatalogRecord) toDomain() domain.CatalogItem {
	item := domain.CatalogItem{
		ID:              r.ID,
		CourseID:        r.CourseID,
		InstanceID:      r.InstanceID,
		Name:            firstNonEmpty(r.CourseName, r.Name),
		Instructor:      firstNonEmpty(r.Instructor, r.Teacher),
		Type:            r.ClassType,
		Date:            r.Date,
		StartTime:       types.TimeString(firstNonEmpty(r.StartTime, r.Time)),
		DurationMinutes: r.Duration,
		Capacity:        r.Capacity,
		Enrolled:        r.Enrolled,
		Price:           r.Price,
		Difficulty:      r.Difficulty,
		Description:     r.Description,
		Comments:        r.Comments,
		RoomLocation:    r.RoomLocation,
		ImageURL:        r.ImageURL,
	}

	if r.CourseID != "" && r.InstanceID != "" {
		item.ID = domain.ComposeItemID(r.CourseID, r.InstanceID)
	}

	if r.LastUpdated != nil {
		if ts, err := time.Parse(time.RFC3339, *r.LastUpdated); err == nil {
			item.LastUpdated = &ts
		}
	}

	return item
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// BookingPayload тело запроса создания бронирования
type BookingPayload struct {
	Email        string             `json:"email"`
	Classes      []BookedClassModel `json:"classes"`
	TotalAmount  float64            `json:"totalAmount"`
	TotalClasses int                `json:"totalClasses"`
	BookingDate  string             `json:"bookingDate"` // RFC3339
	Status       string             `json:"status"`
}

// BookedClassModel снимок занятия внутри бронирования
type BookedClassModel struct {
	ID         string  `json:"id"`
	CourseName string  `json:"courseName"`
	Instructor string  `json:"instructor"`
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Duration   int     `json:"duration"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
	Quantity   int     `json:"quantity"`
}

// createBookingResponse ответ на создание бронирования
type createBookingResponse struct {
	BookingID string `json:"bookingId"`
}

// rawBooking запись бронирования из удаленного хранилища
type rawBooking struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	Classes      []BookedClassModel `json:"classes"`
	TotalAmount  float64            `json:"totalAmount"`
	TotalClasses int                `json:"totalClasses"`
	BookingDate  string             `json:"bookingDate"`
	Status       string             `json:"status"`
	CreatedAt    string             `json:"createdAt"`
}

// toDomain конвертирует запись бронирования в domain модель
func (r *rawBooking) toDomain() domain.Booking {
	booking := domain.Booking{
		ID:           r.ID,
		Email:        r.Email,
		TotalAmount:  r.TotalAmount,
		TotalClasses: r.TotalClasses,
		Status:       domain.BookingStatus(r.Status),
		Classes:      make([]domain.BookedClass, 0, len(r.Classes)),
	}

	for _, cls := range r.Classes {
		booking.Classes = append(booking.Classes, domain.BookedClass{
			ItemID:          cls.ID,
			Name:            cls.CourseName,
			Instructor:      cls.Instructor,
			Type:            cls.Type,
			Date:            cls.Date,
			Time:            cls.Time,
			DurationMinutes: cls.Duration,
			Price:           cls.Price,
			Difficulty:      cls.Difficulty,
			Quantity:        cls.Quantity,
		})
	}

	if ts, err := time.Parse(time.RFC3339, r.BookingDate); err == nil {
		booking.BookingDate = ts
	}
	if ts, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		booking.CreatedAt = ts
	}

	return booking
}

// FromDomainBooking собирает payload создания бронирования из domain модели
func FromDomainBooking(b *domain.Booking) *BookingPayload {
	payload := &BookingPayload{
		Email:        b.Email,
		TotalAmount:  b.TotalAmount,
		TotalClasses: b.TotalClasses,
		BookingDate:  b.BookingDate.Format(time.RFC3339),
		Status:       string(b.Status),
		Classes:      make([]BookedClassModel, 0, len(b.Classes)),
	}

	for _, cls := range b.Classes {
		payload.Classes = append(payload.Classes, BookedClassModel{
			ID:         cls.ItemID,
			CourseName: cls.Name,
			Instructor: cls.Instructor,
			Type:       cls.Type,
			Date:       cls.Date,
			Time:       cls.Time,
			Duration:   cls.DurationMinutes,
			Price:      cls.Price,
			Difficulty: cls.Difficulty,
			Quantity:   cls.Quantity,
		})
	}

	return payload
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
