package state

import "github.com/universalyoga/UYS-SyncService/pkg/dbmetrics"

// DBExecutor интерфейс исполнителя запросов
// (*sql.DB или обёртка dbmetrics.DB)
type DBExecutor = dbmetrics.Executor
