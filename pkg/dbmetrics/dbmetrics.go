package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/universalyoga/UYS-SyncService/pkg/metrics"
)

// Executor общий интерфейс для *sql.DB, *sql.Tx и обёрток с метриками
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type ctxKey int

const txExecutorKey ctxKey = iota

// WithTransaction кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor
func WithTransaction(ctx context.Context, tx Executor) context.Context {
	return context.WithValue(ctx, txExecutorKey, tx)
}

// GetExecutor возвращает executor из контекста (активная транзакция),
// либо fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if tx, ok := ctx.Value(txExecutorKey).(Executor); ok && tx != nil {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txExecutorKey).(Executor)
	return ok && tx != nil
}

// DB обёртка над *sql.DB, записывающая длительность запросов в Prometheus
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// poolStatsInterval период сбора статистики connection pool
const poolStatsInterval = 15 * time.Second

// WrapWithDefault оборачивает *sql.DB метриками и запускает фоновый сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnectionsOpen.WithLabelValues("open").Set(float64(stats.OpenConnections))
				m.DBConnectionsOpen.WithLabelValues("in_use").Set(float64(stats.InUse))
				m.DBConnectionsOpen.WithLabelValues("idle").Set(float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос без выборки с записью метрики
func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := w.db.ExecContext(ctx, query, args...)
	w.observe("exec", start)
	return result, err
}

// QueryContext выполняет запрос с выборкой с записью метрики
func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.observe("query", start)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с записью метрики
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.observe("query_row", start)
	return row
}

// BeginTx открывает транзакцию на нижележащем *sql.DB
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return w.db.BeginTx(ctx, opts)
}

func (w *DB) observe(operation string, start time.Time) {
	if w.metrics == nil {
		return
	}
	w.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
