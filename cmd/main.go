package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_available_slots"
	getBathhousesHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_bathhouses"
	getBookingHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_client_bookings"
	getFreeIntervalsHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_free_intervals"
	getSystemConfigHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/get_system_config"
	rejectBookingHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/reject_booking"
	reportPaymentHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/report_payment"
	updateClientPhoneHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/update_client_phone"
	updateSystemConfigHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/update_system_config"
	upsertClientHandler "github.com/mkorchagin/bathhouse-booking/internal/api/handlers/upsert_client"
	"github.com/mkorchagin/bathhouse-booking/internal/api/middleware"
	"github.com/mkorchagin/bathhouse-booking/internal/config"
	bathhouseRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/bathhouse"
	bookingRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/booking"
	clientRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/client"
	notificationRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/notification"
	sysconfigRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/sysconfig"
	"github.com/mkorchagin/bathhouse-booking/internal/integrations/botgateway"
	bookingsService "github.com/mkorchagin/bathhouse-booking/internal/service/bookings"
	clientsService "github.com/mkorchagin/bathhouse-booking/internal/service/clients"
	notificationsService "github.com/mkorchagin/bathhouse-booking/internal/service/notifications"
	"github.com/mkorchagin/bathhouse-booking/internal/service/notifier"
	sysconfigService "github.com/mkorchagin/bathhouse-booking/internal/service/sysconfig"
	approveBookingUC "github.com/mkorchagin/bathhouse-booking/internal/usecase/approve_booking"
	createBookingUC "github.com/mkorchagin/bathhouse-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_available_slots"
	getFreeIntervalsUC "github.com/mkorchagin/bathhouse-booking/internal/usecase/get_free_intervals"
	"github.com/mkorchagin/bathhouse-booking/pkg/dbmetrics"
	"github.com/mkorchagin/bathhouse-booking/pkg/logger"
	"github.com/mkorchagin/bathhouse-booking/pkg/metrics"
	"github.com/mkorchagin/bathhouse-booking/pkg/simpletxmanager"
	"github.com/mkorchagin/bathhouse-booking/pkg/txmanager"
)

func main() {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting bathhouse-booking service...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.App.Timezone, err)
	}
	log.Info("Bathhouse local timezone: %s", cfg.App.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции схемы
	if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database schema is up to date")

	// Клиент шлюза Telegram-бота
	gatewayClient := botgateway.NewClient(
		cfg.BotGateway.URL,
		time.Duration(cfg.BotGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Bot gateway client initialized (url=%s, timeout=%ds)", cfg.BotGateway.URL, cfg.BotGateway.Timeout)

	// Интерфейс транзакционного менеджера, общий для metrics on/off путей
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		clientRepository       *clientRepo.Repository
		bathhouseRepository    *bathhouseRepo.Repository
		sysconfigRepository    *sysconfigRepo.Repository
		notificationRepository *notificationRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		bathhouseRepository = bathhouseRepo.NewRepository(wrappedDB)
		sysconfigRepository = sysconfigRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		bathhouseRepository = bathhouseRepo.NewRepository(db)
		sysconfigRepository = sysconfigRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Бизнес-конфигурация из system_config
	configSvc := sysconfigService.NewService(sysconfigRepository, log)
	if err := configSvc.EnsureDefaults(context.Background()); err != nil {
		log.Fatal("Failed to ensure config defaults: %v", err)
	}
	log.Info("Business configuration defaults ensured")

	// Сервисы
	notificationsSvc := notificationsService.NewService(
		notificationRepository,
		clientRepository,
		bathhouseRepository,
		configSvc,
		location,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		notificationsSvc,
		metricsCollector,
		log,
	)
	clientSvc := clientsService.NewService(clientRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		bathhouseRepository,
		configSvc,
		txMgr,
		log,
	)
	approveBookingUseCase := approveBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		notificationsSvc,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		bathhouseRepository,
		configSvc,
		location,
		log,
	)
	getFreeIntervalsUseCase := getFreeIntervalsUC.NewUseCase(
		bookingRepository,
		bathhouseRepository,
		configSvc,
		location,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	reportPayment := reportPaymentHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getFreeIntervals := getFreeIntervalsHandler.NewHandler(getFreeIntervalsUseCase, log)
	getBathhouses := getBathhousesHandler.NewHandler(bathhouseRepository, log)
	upsertClient := upsertClientHandler.NewHandler(clientSvc, log)
	updateClientPhone := updateClientPhoneHandler.NewHandler(clientSvc, log)
	getSystemConfig := getSystemConfigHandler.NewHandler(configSvc, log)
	updateSystemConfig := updateSystemConfigHandler.NewHandler(configSvc, log)

	adminAuth := middleware.NewAdminAuth(configSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (фронтенды ходят от имени клиента)
	api.HandleFunc("/bathhouses", getBathhouses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bathhouses/{bathhouseId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bathhouses/{bathhouseId}/free-intervals", getFreeIntervals.Handle).Methods(http.MethodGet)

	api.HandleFunc("/clients", upsertClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/phone", updateClientPhone.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Бизнес-конфигурация: чтение публичное (бот показывает клиенту
	// PAYMENT_INSTRUCTION и пр.), запись только администратору
	api.HandleFunc("/config/{key}", getSystemConfig.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/report-payment", reportPayment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Админские маршруты (X-Admin-ID сверяется с TELEGRAM_ADMIN_ID)
	admin := api.PathPrefix("/bookings/{bookingId}").Subrouter()
	admin.Use(adminAuth.Middleware)
	admin.HandleFunc("/approve", approveBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	adminConfig := api.PathPrefix("/config").Subrouter()
	adminConfig.Use(adminAuth.Middleware)
	adminConfig.HandleFunc("/{key}", updateSystemConfig.Handle).Methods(http.MethodPut)

	// Фоновый диспетчер уведомлений
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	defer stopNotifier()

	if cfg.Notifier.Enabled {
		dispatcher := notifier.NewDispatcher(
			notificationRepository,
			gatewayClient,
			metricsCollector,
			log,
			time.Duration(cfg.Notifier.PollIntervalSeconds)*time.Second,
			cfg.Notifier.BatchSize,
			cfg.Notifier.MaxAttempts,
		)
		go dispatcher.Run(notifierCtx)
	} else {
		log.Warn("Notification dispatcher is disabled")
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopNotifier()

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

// runMigrations применяет миграции схемы поверх открытого соединения
func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
