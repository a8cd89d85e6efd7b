package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
	"github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
)

type fakeCartService struct {
	items   []domain.CartEntry
	loadErr error
	cleared bool
}

func (f *fakeCartService) Items(_ context.Context, _ string) ([]domain.CartEntry, error) {
	return f.items, f.loadErr
}

func (f *fakeCartService) Clear(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

type fakeCatalogClient struct {
	catalog    []domain.CatalogItem
	fetchErr   error
	createErr  error
	created    []*catalogservice.BookingPayload
	fetchCalls int
	nextID     int
}

func (f *fakeCatalogClient) FetchCatalog(_ context.Context) ([]domain.CatalogItem, error) {
	f.fetchCalls++
	return f.catalog, f.fetchErr
}

func (f *fakeCatalogClient) CreateBooking(_ context.Context, payload *catalogservice.BookingPayload) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, payload)
	f.nextID++
	return "booking-" + string(rune('0'+f.nextID)), nil
}

type fakeMetrics struct {
	results map[string]int
}

func (f *fakeMetrics) IncBookingCreated(result string) {
	if f.results == nil {
		f.results = map[string]int{}
	}
	f.results[result]++
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func catalogItem(id string, price float64) domain.CatalogItem {
	return domain.CatalogItem{ID: id, Name: "Class " + id, Price: price, Date: "2026-09-01"}
}

func cartEntry(id string, price float64, quantity int) domain.CartEntry {
	return domain.CartEntry{ItemID: id, Item: catalogItem(id, price), Quantity: quantity}
}

func newTestUseCase(cart *fakeCartService, client *fakeCatalogClient, meter *fakeMetrics) *UseCase {
	uc := NewUseCase(cart, client, meter, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecuteCreatesBookingPerCartLine(t *testing.T) {
	cart := &fakeCartService{items: []domain.CartEntry{
		cartEntry("c1_i1", 25, 2),
		cartEntry("c2_i1", 30, 1),
	}}
	client := &fakeCatalogClient{catalog: []domain.CatalogItem{
		catalogItem("c1_i1", 25),
		catalogItem("c2_i1", 30),
	}}
	meter := &fakeMetrics{}
	uc := newTestUseCase(cart, client, meter)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Email: "client@gmail.com"})
	require.NoError(t, err)

	// Каждая строка корзины - отдельная запись бронирования,
	// существование каждой перепроверено по свежему каталогу
	require.Len(t, resp.Bookings, 2)
	require.Len(t, client.created, 2)
	assert.Equal(t, 2, client.fetchCalls)
	assert.Equal(t, 80.0, resp.TotalAmount)
	assert.Equal(t, 3, resp.TotalClasses)

	first := client.created[0]
	assert.Equal(t, "client@gmail.com", first.Email)
	assert.Equal(t, 50.0, first.TotalAmount)
	assert.Equal(t, 2, first.TotalClasses)
	assert.Equal(t, string(domain.StatusConfirmed), first.Status)

	assert.True(t, cart.cleared)
	assert.Equal(t, 1, meter.results["confirmed"])
}

func TestExecuteRejectsNonGmailEmail(t *testing.T) {
	cart := &fakeCartService{items: []domain.CartEntry{cartEntry("c1_i1", 25, 1)}}
	client := &fakeCatalogClient{}
	meter := &fakeMetrics{}
	uc := newTestUseCase(cart, client, meter)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Email: "client@yahoo.com"})

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, client.created)
	assert.Equal(t, 1, meter.results["rejected"])
}

func TestExecuteRejectsEmptyCart(t *testing.T) {
	cart := &fakeCartService{items: []domain.CartEntry{}}
	uc := newTestUseCase(cart, &fakeCatalogClient{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Email: "client@gmail.com"})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecuteAllOrNothingOnRemovedClass(t *testing.T) {
	cart := &fakeCartService{items: []domain.CartEntry{
		cartEntry("c1_i1", 25, 1),
		cartEntry("c2_i1", 30, 1), // удалено из каталога после добавления
	}}
	client := &fakeCatalogClient{catalog: []domain.CatalogItem{catalogItem("c1_i1", 25)}}
	meter := &fakeMetrics{}
	uc := newTestUseCase(cart, client, meter)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Email: "client@gmail.com"})

	// Ни одна запись не создается, корзина не трогается.
	// Проверка шла по свежему каталогу для каждой строки
	assert.ErrorIs(t, err, ErrClassUnavailable)
	assert.Empty(t, client.created)
	assert.Equal(t, 2, client.fetchCalls)
	assert.False(t, cart.cleared)
	assert.Equal(t, 1, meter.results["rejected"])
}

func TestExecuteCatalogUnavailable(t *testing.T) {
	cart := &fakeCartService{items: []domain.CartEntry{cartEntry("c1_i1", 25, 1)}}
	client := &fakeCatalogClient{fetchErr: errors.New("connection refused")}
	meter := &fakeMetrics{}
	uc := newTestUseCase(cart, client, meter)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Email: "client@gmail.com"})

	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Equal(t, 1, meter.results["failed"])
}

func TestValidateEmail(t *testing.T) {
	// Пробелы по краям обрезаются до проверки
	valid := []string{"user@gmail.com", "first.last+tag@gmail.com", "a_b-c%d@gmail.com", "user@gmail.com "}
	for _, email := range valid {
		assert.NoError(t, validateEmail(email), email)
	}

	invalid := []string{"", "user@yahoo.com", "user@gmail.co", "@gmail.com"}
	for _, email := range invalid {
		assert.Error(t, validateEmail(email), email)
	}
}
