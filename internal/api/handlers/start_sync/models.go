package start_sync

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// StartSyncRequest HTTP request model
type StartSyncRequest struct {
	Type string `json:"type,omitempty"` // manual | auto, по умолчанию manual
}

// SyncErrorResponse HTTP response model ошибки синхронизации
type SyncErrorResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RecordID  string `json:"recordId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// RecordCountsResponse счетчики записей по категориям
type RecordCountsResponse struct {
	Classes   int `json:"classes"`
	Instances int `json:"instances"`
	Total     int `json:"total"`
}

// SyncRecordResponse HTTP response model записи синхронизации
type SyncRecordResponse struct {
	ID               string               `json:"id"`
	Timestamp        string               `json:"timestamp"`
	Status           string               `json:"status"`
	Type             string               `json:"type"`
	Trigger          string               `json:"trigger"`
	RecordsProcessed RecordCountsResponse `json:"recordsProcessed"`
	RecordsUploaded  RecordCountsResponse `json:"recordsUploaded"`
	RecordsSkipped   RecordCountsResponse `json:"recordsSkipped"`
	Errors           []SyncErrorResponse  `json:"errors"`
	RetryCount       int                  `json:"retryCount"`
	DurationMs       int64                `json:"durationMs"`
	DataSizeKB       float64              `json:"dataSizeKb"`
}

// ToSyncType конвертирует тип синхронизации из запроса
func (r *StartSyncRequest) ToSyncType() (domain.SyncType, bool) {
	switch r.Type {
	case "", string(domain.SyncTypeManual):
		return domain.SyncTypeManual, true
	case string(domain.SyncTypeAuto):
		return domain.SyncTypeAuto, true
	default:
		return "", false
	}
}

// FromDomainRecord конвертирует запись синхронизации в HTTP response
func FromDomainRecord(rec *domain.SyncRecord) *SyncRecordResponse {
	resp := &SyncRecordResponse{
		ID:               rec.ID,
		Timestamp:        rec.Timestamp.Format(time.RFC3339),
		Status:           string(rec.Status),
		Type:             string(rec.Type),
		Trigger:          string(rec.Trigger),
		RecordsProcessed: RecordCountsResponse(rec.RecordsProcessed),
		RecordsUploaded:  RecordCountsResponse(rec.RecordsUploaded),
		RecordsSkipped:   RecordCountsResponse(rec.RecordsSkipped),
		Errors:           make([]SyncErrorResponse, 0, len(rec.Errors)),
		RetryCount:       rec.RetryCount,
		DurationMs:       rec.DurationMs,
		DataSizeKB:       rec.DataSizeKB,
	}

	for _, e := range rec.Errors {
		resp.Errors = append(resp.Errors, SyncErrorResponse{
			Kind:      string(e.Kind),
			Message:   e.Message,
			RecordID:  e.RecordID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		})
	}

	return resp
}
