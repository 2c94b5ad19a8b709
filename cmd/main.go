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

	checkConflictHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/check_conflict"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/get_catalog"
	getReservationHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/get_reservation"
	getWizardHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/get_wizard"
	navigateWizardHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/navigate_wizard"
	submitBookingHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/submit_booking"
	updateWizardHandler "github.com/m04kA/SMC-SessionBooking/internal/api/handlers/update_wizard"
	"github.com/m04kA/SMC-SessionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SessionBooking/internal/config"
	"github.com/m04kA/SMC-SessionBooking/internal/infra/draftstore"
	exceptionRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/exception"
	offeringRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/offering"
	reservationRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/reservation"
	userServiceClient "github.com/m04kA/SMC-SessionBooking/internal/integrations/userservice"
	reservationsService "github.com/m04kA/SMC-SessionBooking/internal/service/reservations"
	wizardService "github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	checkConflictUC "github.com/m04kA/SMC-SessionBooking/internal/usecase/check_conflict"
	getAvailableSlotsUC "github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
	loadCatalogUC "github.com/m04kA/SMC-SessionBooking/internal/usecase/load_catalog"
	"github.com/m04kA/SMC-SessionBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
	"github.com/m04kA/SMC-SessionBooking/pkg/metrics"
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

	log.Info("Starting SMC-SessionBooking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (если включены). Методы *metrics.Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	}

	// Хранилище черновиков. Недоступный Redis не мешает старту:
	// мастер начнет с чистого черновика и предупредит клиента.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is unavailable at %s, drafts will not be restored: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}
	pingCancel()

	// Репозитории и интеграции
	offeringRepository := offeringRepo.NewRepository(executor, log)
	exceptionRepository := exceptionRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)
	drafts := draftstore.New(redisClient, cfg.Redis.KeyPrefix, log, metricsCollector)

	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		exceptionRepository,
		reservationRepository,
		getAvailableSlotsUC.GridConfig{
			Location:                location,
			HorizonDays:             cfg.Booking.HorizonDays,
			SlotTemplate:            cfg.Booking.SlotTemplate,
			SlotDurationMinutes:     cfg.Booking.SlotDurationMinutes,
			FallbackHorizonDays:     cfg.Booking.FallbackHorizonDays,
			FallbackSlotTemplate:    cfg.Booking.FallbackSlotTemplate,
			FallbackDurationMinutes: cfg.Booking.FallbackDurationMinutes,
		},
		metricsCollector,
		log,
	)
	checkConflictUseCase := checkConflictUC.NewUseCase(reservationRepository, log)
	loadCatalogUseCase := loadCatalogUC.NewUseCase(
		offeringRepository,
		userClient,
		cfg.Booking.ProviderRole,
		cfg.UserService.Concurrency,
		log,
	)

	// Сервисы
	wizardSvc := wizardService.NewService(
		drafts,
		getAvailableSlotsUseCase,
		reservationRepository,
		userClient,
		offeringRepository,
		wizardService.Config{
			PaymentURL:   cfg.Booking.PaymentURL,
			ProviderRole: cfg.Booking.ProviderRole,
		},
		metricsCollector,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Handlers
	getCatalog := getCatalogHandler.NewHandler(loadCatalogUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	updateWizard := updateWizardHandler.NewHandler(wizardSvc, log)
	navigateWizard := navigateWizardHandler.NewHandler(wizardSvc, log)
	submitBooking := submitBookingHandler.NewHandler(wizardSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)

	submitLimiter := middleware.NewRateLimiter(cfg.RateLimit.SubmitRPS, cfg.RateLimit.SubmitBurst, stopCh)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Типы сессий и консультанты
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Сетка слотов консультанта
	api.HandleFunc("/consultants/{consultantId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка пересечения 90-минутной сессии
	api.HandleFunc("/consultants/{consultantId}/conflicts",
		checkConflict.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер записи ---
	protected.HandleFunc("/wizard", getWizard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/consultant", updateWizard.HandleConsultant).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/session-type", updateWizard.HandleSessionType).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/date", updateWizard.HandleDate).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/slot", updateWizard.HandleSlot).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/next", navigateWizard.HandleNext).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/back", navigateWizard.HandleBack).Methods(http.MethodPost)
	protected.Handle("/wizard/submit",
		submitLimiter.Middleware(http.HandlerFunc(submitBooking.Handle))).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула и очистку rate limiter
	close(stopCh)

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
