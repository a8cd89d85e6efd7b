package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus для сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	DBQueryDuration      *prometheus.HistogramVec
	DBConnectionsOpen    *prometheus.GaugeVec
	SyncsTotal           *prometheus.CounterVec
	SyncDuration         *prometheus.HistogramVec
	SyncRecordsUploaded  *prometheus.CounterVec
	CatalogFetchesTotal  *prometheus.CounterVec
	BookingsCreatedTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		SyncsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "syncs_total",
			Help:        "Total number of sync attempts by terminal status",
			ConstLabels: constLabels,
		}, []string{"status", "trigger"}),

		SyncDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "sync_duration_seconds",
			Help:        "End-to-end sync attempt duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"trigger"}),

		SyncRecordsUploaded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_records_uploaded_total",
			Help:        "Total number of records uploaded by category",
			ConstLabels: constLabels,
		}, []string{"category"}),

		CatalogFetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_fetches_total",
			Help:        "Catalog fetches by result source",
			ConstLabels: constLabels,
		}, []string{"source"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// Методы-хелперы для сервисного слоя - сервисы зависят от узких
// потребительских интерфейсов, а не от prometheus напрямую

// IncCatalogFetch учитывает загрузку каталога по источнику данных
func (m *Metrics) IncCatalogFetch(source string) {
	m.CatalogFetchesTotal.WithLabelValues(source).Inc()
}

// IncSync учитывает попытку синхронизации по терминальному статусу
func (m *Metrics) IncSync(status, trigger string) {
	m.SyncsTotal.WithLabelValues(status, trigger).Inc()
}

// ObserveSyncDuration учитывает длительность попытки синхронизации
func (m *Metrics) ObserveSyncDuration(trigger string, seconds float64) {
	m.SyncDuration.WithLabelValues(trigger).Observe(seconds)
}

// AddRecordsUploaded учитывает выгруженные записи по категориям
func (m *Metrics) AddRecordsUploaded(category string, n int) {
	m.SyncRecordsUploaded.WithLabelValues(category).Add(float64(n))
}

// IncBookingCreated учитывает результат создания бронирования
func (m *Metrics) IncBookingCreated(result string) {
	m.BookingsCreatedTotal.WithLabelValues(result).Inc()
}
