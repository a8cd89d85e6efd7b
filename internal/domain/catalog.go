package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/universalyoga/UYS-SyncService/pkg/types"
)

// CatalogItem represents a bookable class occurrence in the remote catalog
// Идентичность составная: courseID + instanceID (одно занятие конкретного курса)
type CatalogItem struct {
	ID              string // "<courseID>_<instanceID>"
	CourseID        string
	InstanceID      string
	Name            string
	Instructor      string
	Type            string
	Date            string // YYYY-MM-DD
	StartTime       types.TimeString
	DurationMinutes int
	Capacity        int
	Enrolled        int
	Price           float64
	Difficulty      string
	Description     string
	Comments        string
	RoomLocation    string
	ImageURL        string
	LastUpdated     *time.Time
}

// ComposeItemID собирает составной идентификатор занятия
func ComposeItemID(courseID, instanceID string) string {
	return fmt.Sprintf("%s_%s", courseID, instanceID)
}

// SpotsLeft returns the number of free spots in the class
func (c *CatalogItem) SpotsLeft() int {
	left := c.Capacity - c.Enrolled
	if left < 0 {
		return 0
	}
	return left
}

// IsFull returns true if the class has no free spots
func (c *CatalogItem) IsFull() bool {
	return c.Capacity > 0 && c.Enrolled >= c.Capacity
}

// SortCatalog сортирует каталог по дате, затем по времени начала
// Порядок соответствует контракту выдачи каталога обоим приложениям
func SortCatalog(items []CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].StartTime.IsBefore(items[j].StartTime)
	})
}

// CatalogIDSet строит множество идентификаторов каталога
func CatalogIDSet(items []CatalogItem) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item.ID] = struct{}{}
	}
	return set
}

// LatestCatalogUpdate возвращает максимальный LastUpdated по всем занятиям,
// nil - если каталог пуст или ни одно занятие не несет метку времени
func LatestCatalogUpdate(items []CatalogItem) *time.Time {
	var latest *time.Time
	for i := range items {
		ts := items[i].LastUpdated
		if ts == nil {
			continue
		}
		if latest == nil || ts.After(*latest) {
			latest = ts
		}
	}
	return latest
}
