package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}

func TestLoadReturnsStoredValue(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	stored := []byte(`[{"itemId":"c1_i1","quantity":2}]`)
	rows := sqlmock.NewRows([]string{"value"}).AddRow(stored)

	mock.ExpectQuery("SELECT value FROM session_state").
		WithArgs("cart", "session-1").
		WillReturnRows(rows)

	value, err := repo.Load(context.Background(), "session-1", "cart")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(stored), value)
}

func TestLoadMissingKey(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	mock.ExpectQuery("SELECT value FROM session_state").
		WithArgs("syncStats", "session-1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Load(context.Background(), "session-1", "syncStats")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLoadQueryError(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	mock.ExpectQuery("SELECT value FROM session_state").
		WithArgs("cart", "session-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Load(context.Background(), "session-1", "cart")
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestSaveUpsertsValue(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	value := json.RawMessage(`{"totalSyncs":3}`)

	mock.ExpectExec("INSERT INTO session_state").
		WithArgs("session-1", "syncStats", []byte(value)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), "session-1", "syncStats", value)
	assert.NoError(t, err)
}

func TestSaveExecError(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO session_state").
		WithArgs("session-1", "cart", []byte(`[]`)).
		WillReturnError(errors.New("deadlock detected"))

	err := repo.Save(context.Background(), "session-1", "cart", json.RawMessage(`[]`))
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestDelete(t *testing.T) {
	repo, mock, cleanup := newTestRepository(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM session_state").
		WithArgs("cart", "session-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "session-1", "cart")
	assert.NoError(t, err)
}
