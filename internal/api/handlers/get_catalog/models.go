package get_catalog

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	freshmodels "github.com/universalyoga/UYS-SyncService/internal/service/freshness/models"
)

// CatalogItemResponse HTTP response model занятия каталога
type CatalogItemResponse struct {
	ID              string  `json:"id"`
	CourseID        string  `json:"courseId,omitempty"`
	InstanceID      string  `json:"instanceId,omitempty"`
	Name            string  `json:"name"`
	Instructor      string  `json:"instructor"`
	Type            string  `json:"type,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Capacity        int     `json:"capacity"`
	Enrolled        int     `json:"enrolled"`
	SpotsLeft       int     `json:"spotsLeft"`
	Price           float64 `json:"price"`
	Difficulty      string  `json:"difficulty,omitempty"`
	Description     string  `json:"description,omitempty"`
	RoomLocation    string  `json:"roomLocation,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	LastUpdated     *string `json:"lastUpdated,omitempty"`
}

// CatalogResponse HTTP response model каталога с метаданными свежести
type CatalogResponse struct {
	Items      []CatalogItemResponse `json:"items"`
	LastUpdate *string               `json:"lastUpdate,omitempty"`
	IsFresh    bool                  `json:"isFresh"`
	Source     string                `json:"source"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(result *freshmodels.Result) *CatalogResponse {
	resp := &CatalogResponse{
		Items:   make([]CatalogItemResponse, 0, len(result.Items)),
		IsFresh: result.IsFresh,
		Source:  string(result.Source),
	}

	if result.LastUpdate != nil {
		formatted := result.LastUpdate.Format(time.RFC3339)
		resp.LastUpdate = &formatted
	}

	for i := range result.Items {
		resp.Items = append(resp.Items, fromDomainItem(&result.Items[i]))
	}

	return resp
}

func fromDomainItem(item *domain.CatalogItem) CatalogItemResponse {
	view := CatalogItemResponse{
		ID:              item.ID,
		CourseID:        item.CourseID,
		InstanceID:      item.InstanceID,
		Name:            item.Name,
		Instructor:      item.Instructor,
		Type:            item.Type,
		Date:            item.Date,
		StartTime:       item.StartTime.String(),
		DurationMinutes: item.DurationMinutes,
		Capacity:        item.Capacity,
		Enrolled:        item.Enrolled,
		SpotsLeft:       item.SpotsLeft(),
		Price:           item.Price,
		Difficulty:      item.Difficulty,
		Description:     item.Description,
		RoomLocation:    item.RoomLocation,
		ImageURL:        item.ImageURL,
	}

	if item.LastUpdated != nil {
		formatted := item.LastUpdated.Format(time.RFC3339)
		view.LastUpdated = &formatted
	}

	return view
}
