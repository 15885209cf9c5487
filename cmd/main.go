package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	checkUserHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/check_user"
	createBookingHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/health"
	jazzCashCallbackHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/jazzcash_callback"
	jazzCashInitiateHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/jazzcash_initiate"
	jazzCashStatusHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/jazzcash_status"
	listCourtsHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/list_courts"
	loginHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/login"
	processPaymentHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/process_payment"
	signupHandler "github.com/m04kA/SMC-PadelBooking/internal/api/handlers/signup"
	"github.com/m04kA/SMC-PadelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PadelBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-PadelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PadelBooking/internal/infra/storage/migrations"
	userRepo "github.com/m04kA/SMC-PadelBooking/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-PadelBooking/internal/service/bookings"
	mockPaymentService "github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
	usersService "github.com/m04kA/SMC-PadelBooking/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-PadelBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-PadelBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-PadelBooking/pkg/auth"
	"github.com/m04kA/SMC-PadelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
	"github.com/m04kA/SMC-PadelBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-PadelBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции до открытия пула
	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(cfg.Database.URL()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

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

	// Репозитории работают через обертку с метриками, если она включена
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)

	tokenManager, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)
	paymentSvc := mockPaymentService.NewService(
		cfg.MockPayments.InitiateDelay(),
		cfg.MockPayments.ProcessDelay(),
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listCourts := listCourtsHandler.NewHandler()
	checkUser := checkUserHandler.NewHandler(userSvc, log)
	signup := signupHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	jazzCashInitiate := jazzCashInitiateHandler.NewHandler(paymentSvc, log)
	jazzCashCallback := jazzCashCallbackHandler.NewHandler(paymentSvc, log)
	jazzCashStatus := jazzCashStatusHandler.NewHandler()
	processPayment := processPaymentHandler.NewHandler(paymentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Лимит запросов только для mock-платежей
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.IdleTTL)*time.Second,
		)
		limited = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limit enabled for payment routes (rps=%v, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	authenticated := middleware.Auth(tokenManager)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.HandleFunc("/", health.Handle).Methods(http.MethodGet)

	// --- Mock платежи ---
	r.Handle("/api/jazzcash/initiate", limited(jazzCashInitiate.Handle)).Methods(http.MethodPost)
	r.Handle("/api/jazzcash/callback", limited(jazzCashCallback.Handle)).Methods(http.MethodPost)
	r.HandleFunc("/api/jazzcash/test", jazzCashStatus.Handle).Methods(http.MethodGet)
	r.Handle("/api/payment/process", limited(processPayment.Handle)).Methods(http.MethodPost)

	// --- Площадки ---
	r.HandleFunc("/api/courts", listCourts.Handle).Methods(http.MethodGet)
	r.HandleFunc("/api/courts/{court}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	r.HandleFunc("/api/bookings", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/bookings/check-user", checkUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	r.HandleFunc("/api/users/signup", signup.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/users/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	r.Handle("/api/users/me/bookings", authenticated(http.HandlerFunc(getUserBookings.Handle))).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
