package catalogservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, nopLogger{})
	return client, server.Close
}

func TestFetchCatalogFiltersDeletedAndSorts(t *testing.T) {
	payload := `[
		{"id": "b", "courseName": "Vinyasa", "instructor": "Anna", "date": "2026-09-02", "startTime": "10:00", "price": 30},
		{"id": "a", "courseName": "Hatha", "instructor": "Olga", "date": "2026-09-01", "startTime": "18:00", "price": 25},
		{"id": "gone", "courseName": "Removed", "date": "2026-09-01", "startTime": "09:00", "syncStatus": 2}
	]`

	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/catalog", r.URL.Path)
		w.Write([]byte(payload))
	})
	defer cleanup()

	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	// Мягко удаленная запись отфильтрована, порядок - дата, затем время
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestFetchCatalogNormalizesLegacyFieldNames(t *testing.T) {
	payload := `[
		{"id": "x", "name": "Hatha", "teacher": "Olga", "date": "2026-09-01", "time": "09:00", "price": 25}
	]`

	client, cleanup := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload))
	})
	defer cleanup()

	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Hatha", items[0].Name)
	assert.Equal(t, "Olga", items[0].Instructor)
	assert.Equal(t, "09:00", items[0].StartTime.String())
}

func TestFetchCatalogComposesIDFromCourseAndInstance(t *testing.T) {
	payload := `[
		{"id": "legacy", "courseId": "c1", "instanceId": "i1", "courseName": "Hatha", "date": "2026-09-01", "startTime": "09:00"}
	]`

	client, cleanup := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload))
	})
	defer cleanup()

	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "c1_i1", items[0].ID)
}

func TestFetchCatalogStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrAuth},
		{http.StatusForbidden, ErrAuth},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrQuota},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}

	for _, tc := range cases {
		client, cleanup := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.FetchCatalog(context.Background())
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		cleanup()
	}
}

func TestFetchCatalogDecodesErrorBody(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code": 500, "message": "storage quota exceeded"}`))
	})
	defer cleanup()

	_, err := client.FetchCatalog(context.Background())
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "storage quota exceeded")
}

func TestFetchCatalogTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, nopLogger{})

	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCreateBookingReturnsAssignedID(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)

		var payload BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "client@gmail.com", payload.Email)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"bookingId": "bk-123"}`))
	})
	defer cleanup()

	id, err := client.CreateBooking(context.Background(), &BookingPayload{Email: "client@gmail.com"})
	require.NoError(t, err)
	assert.Equal(t, "bk-123", id)
}

func TestCreateBookingEmptyIDIsInvalidResponse(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer cleanup()

	_, err := client.CreateBooking(context.Background(), &BookingPayload{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchBookingsByEmailSortsNewestFirst(t *testing.T) {
	payload := `[
		{"id": "old", "email": "client@gmail.com", "bookingDate": "2026-08-01T10:00:00Z"},
		{"id": "new", "email": "client@gmail.com", "bookingDate": "2026-08-20T10:00:00Z"}
	]`

	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client@gmail.com", r.URL.Query().Get("email"))
		w.Write([]byte(payload))
	})
	defer cleanup()

	bookings, err := client.FetchBookingsByEmail(context.Background(), "client@gmail.com")
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	assert.Equal(t, "new", bookings[0].ID)
	assert.Equal(t, "old", bookings[1].ID)
}

func TestPushRecord(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/records/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	defer cleanup()

	rec := &domain.PendingRecord{
		ID:       "rec-1",
		Category: domain.CategoryClass,
		Name:     "Hatha",
		Payload:  json.RawMessage(`{"field":"value"}`),
	}
	assert.NoError(t, client.PushRecord(context.Background(), rec))
}

func TestPing(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	defer cleanup()

	assert.NoError(t, client.Ping(context.Background()))
}
