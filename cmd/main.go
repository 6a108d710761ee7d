package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	calendarFeedHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/calendar_feed"
	checkConflictHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_booking"
	getWorkingDayHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_working_day"
	listFreeSlotsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_free_slots"
	listProfessionalBookingsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_professional_bookings"
	updateBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_booking"
	upsertWorkingDayHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/upsert_working_day"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/client"
	templateRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/template"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/whatsapp"
	bookingsService "github.com/m04kA/SMC-SalonBookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-SalonBookingService/internal/service/notifications"
	workingDaysService "github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays"
	checkConflictUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/check_booking_conflict"
	createBookingUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_booking"
	listFreeSlotsUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_free_slots"
	updateBookingUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/publicid"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonBookingService...")

	location, err := availability.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}
	log.Info("Scheduling timezone: %s", location)

	// Метрики (если включены). nil-коллектор безопасен для всех вызовов.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	workingDayRepository := workingDayRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	templateRepository := templateRepo.NewRepository(wrappedDB)

	// Интеграции
	var sender notificationsService.MessageSender
	if cfg.Messaging.Enabled {
		sender = whatsapp.NewClient(cfg.Messaging.WhatsAppURL, time.Duration(cfg.Messaging.Timeout)*time.Second, log)
		log.Info("WhatsApp client initialized (url=%s, timeout=%ds)", cfg.Messaging.WhatsAppURL, cfg.Messaging.Timeout)
	} else {
		sender = whatsapp.NewNoopSender(log)
		log.Info("Messaging disabled, messages will only be logged")
	}

	var publisher interface {
		Publish(ctx context.Context, event events.BookingEvent) error
		Close() error
	}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		log.Info("Kafka publisher initialized (brokers=%s, topic=%s)", strings.Join(cfg.Kafka.Brokers, ","), cfg.Kafka.Topic)
	} else {
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, location, log)
	workingDaySvc := workingDaysService.NewService(workingDayRepository, log)
	notificationSvc := notificationsService.NewService(
		templateRepository,
		clientRepository,
		sender,
		notificationsService.TemplateNames{
			NewBooking:       cfg.Messaging.NewBookingTemplate,
			NewBookingPerson: cfg.Messaging.NewBookingPersonTemplate,
			Cancelled:        cfg.Messaging.CancelledTemplate,
		},
		location,
		log,
	)
	publicIDs := publicid.NewGenerator(bookingRepository, domain.PublicIDLength, domain.PublicIDMaxAttempts)

	// Use cases
	listFreeSlotsUseCase := listFreeSlotsUC.NewUseCase(
		workingDayRepository,
		bookingRepository,
		metricsCollector,
		location,
		log,
	)
	checkConflictUseCase := checkConflictUC.NewUseCase(
		workingDayRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		workingDayRepository,
		publicIDs,
		notificationSvc,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		notificationSvc,
		publisher,
		txMgr,
		log,
	)

	// Handlers
	listFreeSlots := listFreeSlotsHandler.NewHandler(listFreeSlotsUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listProfessionalBookings := listProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	calendarFeed := calendarFeedHandler.NewHandler(bookingSvc, log)
	getWorkingDay := getWorkingDayHandler.NewHandler(workingDaySvc, log)
	upsertWorkingDay := upsertWorkingDayHandler.NewHandler(workingDaySvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (токен необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, closeLimiter := newLimiter(cfg.RateLimit, log)
		defer closeLimiter()
		clientKeys, err := middleware.NewClientKeyResolver(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		public.Use(middleware.RateLimit(limiter, clientKeys, log))
	}
	public.Use(auth.Optional)

	// Свободные слоты профессионала на дату
	public.HandleFunc("/professionals/{professionalId}/free-slots", listFreeSlots.Handle).Methods(http.MethodGet)

	// Проверка пересечения интервала с записями и часами работы
	public.HandleFunc("/professionals/{professionalId}/conflicts", checkConflict.Handle).Methods(http.MethodGet)

	// Рабочий день профессионала
	public.HandleFunc("/professionals/{professionalId}/working-days/{date}", getWorkingDay.Handle).Methods(http.MethodGet)

	// Создание записи
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Запись по публичному идентификатору
	public.HandleFunc("/bookings/{publicId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required)

	// Отмена, завершение или изменение записи
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPatch)

	// Записи профессионала
	protected.HandleFunc("/professionals/{professionalId}/bookings", listProfessionalBookings.Handle).Methods(http.MethodGet)

	// Выгрузка календаря в iCalendar
	protected.HandleFunc("/professionals/{professionalId}/calendar.ics", calendarFeed.Handle).Methods(http.MethodGet)

	// Настройка рабочего дня
	protected.HandleFunc("/professionals/{professionalId}/working-days/{date}", upsertWorkingDay.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

// newLimiter создает лимитер по настройкам. Redis проверяется при старте.
func newLimiter(cfg config.RateLimitConfig, log *logger.Logger) (middleware.Limiter, func()) {
	if strings.ToLower(cfg.Backend) != config.RateLimitBackendRedis {
		log.Info("Rate limit: in-memory, %d req/min, burst %d", cfg.RequestsPerMinute, cfg.Burst)
		return middleware.NewMemoryLimiter(cfg.RequestsPerMinute, cfg.Burst), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
	}

	log.Info("Rate limit: redis at %s, %d req/min", cfg.RedisAddr, cfg.RequestsPerMinute)
	return middleware.NewRedisLimiter(client, cfg.RequestsPerMinute, time.Minute, "ratelimit:"), func() {
		if err := client.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}
}
