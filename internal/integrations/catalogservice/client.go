package catalogservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с удаленным хранилищем каталога и бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchCatalog получает полный каталог занятий
// Мягко удаленные записи (syncStatus = 2) отфильтровываются до возврата,
// наследные двойные имена полей нормализуются адаптером.
// Результат отсортирован по дате, затем по времени начала
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	reqURL := fmt.Sprintf("%s/api/v1/catalog", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []rawCatalogRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", ErrInvalidResponse, err)
	}

	items := make([]domain.CatalogItem, 0, len(raw))
	for i := range raw {
		if raw[i].isDeleted() {
			continue
		}
		items = append(items, raw[i].toDomain())
	}

	domain.SortCatalog(items)
	return items, nil
}

// CreateBooking создает запись бронирования и возвращает присвоенный идентификатор
func (c *Client) CreateBooking(ctx context.Context, payload *BookingPayload) (string, error) {
	reqURL := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal booking payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var created createBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, err)
	}
	if created.BookingID == "" {
		return "", fmt.Errorf("%w: empty booking id in response", ErrInvalidResponse)
	}

	return created.BookingID, nil
}

// FetchBookingsByEmail получает все бронирования по контактному email,
// отсортированные от новых к старым
func (c *Client) FetchBookingsByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	reqURL := fmt.Sprintf("%s/api/v1/bookings?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []rawBooking
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(raw))
	for i := range raw {
		bookings = append(bookings, raw[i].toDomain())
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})

	return bookings, nil
}

// PushRecord отправляет одну запись очереди синхронизации в удаленное хранилище
func (c *Client) PushRecord(ctx context.Context, rec *domain.PendingRecord) error {
	reqURL := fmt.Sprintf("%s/api/v1/records/%s", c.baseURL, url.PathEscape(rec.ID))

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal record: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// Ping проверяет доступность удаленного хранилища
func (c *Client) Ping(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/health", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health check returned %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	return nil
}

// checkStatus маппит HTTP статус-коды на типизированные ошибки клиента
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: status %d", ErrConflict, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrQuota, resp.StatusCode)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrServer, resp.StatusCode, errorMessage(resp))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp))
	}
}

// errorMessage извлекает сообщение из структурированного тела ошибки,
// при нераспознанном теле возвращает его как есть
func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
