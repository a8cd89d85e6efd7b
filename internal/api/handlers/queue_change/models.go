package queue_change

import (
	"encoding/json"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// QueueChangeRequest HTTP request model локального изменения
type QueueChangeRequest struct {
	ID       string          `json:"id,omitempty"`
	Category string          `json:"category"` // class | instance
	Name     string          `json:"name"`
	Date     string          `json:"date,omitempty"` // YYYY-MM-DD
	Payload  json.RawMessage `json:"payload"`
}

// QueueChangeResponse HTTP response model поставленной в очередь записи
type QueueChangeResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Date     string `json:"date,omitempty"`
}

// ToDomainRecord конвертирует HTTP запрос в domain модель
func (r *QueueChangeRequest) ToDomainRecord() domain.PendingRecord {
	return domain.PendingRecord{
		ID:       r.ID,
		Category: domain.RecordCategory(r.Category),
		Name:     r.Name,
		Date:     r.Date,
		Payload:  r.Payload,
	}
}
