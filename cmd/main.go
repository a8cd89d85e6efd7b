package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/add_cart_item"
	cancelSyncHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/cancel_sync"
	clearSyncHistoryHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/clear_sync_history"
	getBookingsHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_bookings"
	getCartHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_cart"
	getCatalogHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_catalog"
	getSyncHistoryHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_sync_history"
	getSyncProgressHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_sync_progress"
	getSyncQueueHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_sync_queue"
	getSyncStatsHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/get_sync_stats"
	queueChangeHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/queue_change"
	removeCartItemHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/remove_cart_item"
	retrySyncHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/retry_sync"
	startSyncHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/start_sync"
	submitBookingHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/submit_booking"
	syncSettingsHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/sync_settings"
	updateCartItemHandler "github.com/universalyoga/UYS-SyncService/internal/api/handlers/update_cart_item"
	"github.com/universalyoga/UYS-SyncService/internal/api/middleware"
	"github.com/universalyoga/UYS-SyncService/internal/config"
	"github.com/universalyoga/UYS-SyncService/internal/infra/cache/catalogcache"
	stateRepo "github.com/universalyoga/UYS-SyncService/internal/infra/storage/state"
	catalogClient "github.com/universalyoga/UYS-SyncService/internal/integrations/catalogservice"
	cartService "github.com/universalyoga/UYS-SyncService/internal/service/cart"
	freshnessService "github.com/universalyoga/UYS-SyncService/internal/service/freshness"
	syncEngine "github.com/universalyoga/UYS-SyncService/internal/service/syncengine"
	submitBookingUC "github.com/universalyoga/UYS-SyncService/internal/usecase/submit_booking"
	"github.com/universalyoga/UYS-SyncService/pkg/dbmetrics"
	"github.com/universalyoga/UYS-SyncService/pkg/logger"
	"github.com/universalyoga/UYS-SyncService/pkg/metrics"
	"github.com/universalyoga/UYS-SyncService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting UYS-SyncService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (кеш снимков каталога)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем клиента удаленного хранилища
	remoteClient := catalogClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("CatalogService client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем хранилище состояния и транзакционный менеджер
	var (
		stateRepository *stateRepo.Repository
		txMgr           *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		stateRepository = stateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		stateRepository = stateRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Инициализируем кеш снимков каталога
	snapshotCache := catalogcache.New(redisClient, time.Duration(cfg.Redis.SnapshotTTL)*time.Second)

	// Инициализируем сервисы
	freshnessSvc := freshnessService.NewService(remoteClient, snapshotCache, metricsCollector, log)
	cartSvc := cartService.NewService(stateRepository, freshnessSvc, log)
	engine := syncEngine.NewService(stateRepository, remoteClient, txMgr, metricsCollector, log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(cartSvc, remoteClient, metricsCollector, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(freshnessSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(remoteClient, log)
	startSync := startSyncHandler.NewHandler(engine, log)
	cancelSync := cancelSyncHandler.NewHandler(engine, log)
	retrySync := retrySyncHandler.NewHandler(engine, log)
	getSyncProgress := getSyncProgressHandler.NewHandler(engine, log)
	queueChange := queueChangeHandler.NewHandler(engine, log)
	getSyncQueue := getSyncQueueHandler.NewHandler(engine, log)
	getSyncHistory := getSyncHistoryHandler.NewHandler(engine, log)
	getSyncStats := getSyncStatsHandler.NewHandler(engine, log)
	clearSyncHistory := clearSyncHistoryHandler.NewHandler(engine, log)
	syncSettings := syncSettingsHandler.NewHandler(engine, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют X-Session-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// --- Каталог ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	api.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{itemId}", updateCartItem.Handle).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// --- Синхронизация ---
	api.HandleFunc("/sync", startSync.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sync", cancelSync.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sync/retry/{recordId}", retrySync.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sync/progress", getSyncProgress.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sync/queue", queueChange.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sync/queue", getSyncQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sync/history", getSyncHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sync/history", clearSyncHistory.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sync/stats", getSyncStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sync/settings", syncSettings.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/sync/settings", syncSettings.HandleUpdate).Methods(http.MethodPut)

	// Запускаем планировщик автоматической синхронизации
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	go engine.RunScheduler(
		schedulerCtx,
		cfg.Sync.SessionID,
		time.Duration(cfg.Sync.SchedulerInterval)*time.Second,
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopScheduler()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
