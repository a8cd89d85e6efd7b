package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/universalyoga/UYS-SyncService/pkg/dbmetrics"
	"github.com/universalyoga/UYS-SyncService/pkg/psqlbuilder"
)

// Repository плоское key-value хранилище локального состояния сессии
// Значение каждого логического ключа (cart, syncHistory, syncStats, syncQueue,
// autoSyncEnabled) хранится одним JSON blob и перезаписывается целиком при
// каждом изменении - инкрементальных патчей нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория состояния
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load читает значение логического ключа сессии
// Возвращает ErrKeyNotFound, если ключ еще не записывался
func (r *Repository) Load(ctx context.Context, sessionID, key string) (json.RawMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("session_state").
		Where(squirrel.Eq{"session_id": sessionID, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Save перезаписывает значение логического ключа сессии целиком
func (r *Repository) Save(ctx context.Context, sessionID, key string, value json.RawMessage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_state").
		Columns("session_id", "key", "value", "updated_at").
		Values(sessionID, key, []byte(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет логический ключ сессии
// Отсутствие ключа не считается ошибкой
func (r *Repository) Delete(ctx context.Context, sessionID, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("session_state").
		Where(squirrel.Eq{"session_id": sessionID, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
