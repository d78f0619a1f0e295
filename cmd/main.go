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

	cancelBookingHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/cancel_booking"
	cancelBookingFormHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/cancel_booking_form"
	closeSessionHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/close_session"
	createBookingHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/create_booking"
	getSessionHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/get_session"
	navigateMonthHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/navigate_month"
	openSessionHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/open_session"
	selectDateHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/select_date"
	selectSlotHandler "github.com/m04kA/SMC-BookingWidget/internal/api/handlers/select_slot"
	"github.com/m04kA/SMC-BookingWidget/internal/api/middleware"
	"github.com/m04kA/SMC-BookingWidget/internal/config"
	"github.com/m04kA/SMC-BookingWidget/internal/engine"
	appointmentRepo "github.com/m04kA/SMC-BookingWidget/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BookingWidget/internal/integrations/eventbus"
	bookingsService "github.com/m04kA/SMC-BookingWidget/internal/service/bookings"
	sessionsService "github.com/m04kA/SMC-BookingWidget/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWidget/internal/ui"
	createBookingUC "github.com/m04kA/SMC-BookingWidget/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BookingWidget/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BookingWidget/pkg/idgen"
	"github.com/m04kA/SMC-BookingWidget/pkg/locale"
	"github.com/m04kA/SMC-BookingWidget/pkg/logger"
	"github.com/m04kA/SMC-BookingWidget/pkg/metrics"
)

// eventPublisher публикатор событий с закрытием при остановке
type eventPublisher interface {
	engine.EventPublisher
	Close() error
}

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

	log.Info("Starting SMC-BookingWidget...")
	log.Info("Configuration loaded from config.toml")

	catalog, err := cfg.SlotCatalog()
	if err != nil {
		log.Fatal("Invalid time slots: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище записей
	var store appointmentRepo.Store
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		store = appointmentRepo.NewRedisStore(client, cfg.Storage.Redis.Key)
		log.Info("Successfully connected to redis (addr=%s, key=%s)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.Key)

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		store = appointmentRepo.NewPostgresStore(db)
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	default:
		store = appointmentRepo.NewMemoryStore()
		log.Warn("Using in-memory storage, appointments are lost on restart")
	}

	if cfg.Metrics.Enabled {
		store = appointmentRepo.NewInstrumentedStore(store, metricsCollector)
	}

	// Инициализируем публикацию событий
	var publisher eventPublisher = eventbus.Nop{}
	if cfg.Events.Enabled {
		kafkaPublisher, err := eventbus.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic, log)
		if err != nil {
			log.Fatal("Failed to initialize event publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Event publisher initialized (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}

	// Инициализируем сервисы и use cases
	ids := idgen.NewMonotonic()
	formatter := locale.NewFormatter()
	bookingSvc := bookingsService.NewService(store, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalog, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		ids,
		catalog,
		cfg.Widget.RevalidateOnConfirm,
		log,
	)

	// Каждая сессия страницы получает свой движок
	widgetFactory := func(page *ui.Page) sessionsService.Widget {
		return engine.New(engine.Deps{
			Surface:   page,
			Bookings:  bookingSvc,
			Slots:     getAvailableSlotsUseCase,
			Booking:   createBookingUseCase,
			Formatter: formatter,
			IDs:       ids,
			Events:    publisher,
			Metrics:   metricsCollector,
			Clock:     &engine.RealTimeProvider{},
			Locale:    cfg.Widget.Locale,
			Logger:    log,
		})
	}

	sessionTTL := time.Duration(cfg.Widget.SessionTTL) * time.Second
	sessionSvc := sessionsService.NewService(widgetFactory, sessionTTL, metricsCollector, log)

	// Очистка просроченных сессий
	stopSweepCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sessionTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessionSvc.Sweep(); n > 0 {
					log.Info("Expired sessions removed: %d", n)
				}
			case <-stopSweepCh:
				return
			}
		}
	}()

	// Инициализируем handlers
	openSession := openSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	closeSession := closeSessionHandler.NewHandler(sessionSvc, log)
	navigateMonth := navigateMonthHandler.NewHandler(sessionSvc, log)
	selectDate := selectDateHandler.NewHandler(sessionSvc, log)
	selectSlot := selectSlotHandler.NewHandler(sessionSvc, log)
	createBooking := createBookingHandler.NewHandler(sessionSvc, log)
	cancelBookingForm := cancelBookingFormHandler.NewHandler(sessionSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии страницы ---
	api.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// --- Календарь и слоты ---
	api.HandleFunc("/sessions/{sessionId}/month/{direction}", navigateMonth.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)

	// --- Форма записи ---
	api.HandleFunc("/sessions/{sessionId}/booking", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/booking", cancelBookingForm.Handle).Methods(http.MethodDelete)

	// --- Список записей ---
	api.HandleFunc("/sessions/{sessionId}/appointments/{appointmentId}", cancelBooking.Handle).Methods(http.MethodDelete)

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
	close(stopSweepCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
