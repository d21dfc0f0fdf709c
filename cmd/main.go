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

	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getBusinessWindowHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_business_window"
	getDayViewHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_day_view"
	getWeekViewHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_week_view"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/barber"
	hoursRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/businesshours"
	unitRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/unit"
	businessHoursService "github.com/m04kA/SMC-AgendaService/internal/service/businesshours"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	getDayViewUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_day_view"
	getWeekViewUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_view"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/migrator"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Путь к конфигу можно переопределить через CONFIG_PATH
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// nil *Metrics безопасен: ConfigWarning и dbmetrics его пропускают.
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

	if cfg.Database.RunMigrations {
		if err := migrator.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	unitRepository := unitRepo.NewRepository(wrappedDB)
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	barberRepository := barberRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	// Все чтения одного рендера идут в одном снапшоте
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	hoursSvc, err := businessHoursService.NewService(
		unitRepository,
		hoursRepository,
		txMgr,
		metricsCollector,
		businessHoursService.Settings{
			DefaultTimezone:     cfg.Calendar.DefaultTimezone,
			FallbackOpeningHour: cfg.Calendar.FallbackOpeningHour,
			FallbackClosingHour: cfg.Calendar.FallbackClosingHour,
		},
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize business hours service: %v", err)
	}

	// Инициализируем use cases
	getDayViewUseCase := getDayViewUC.NewUseCase(
		hoursSvc,
		barberRepository,
		appointmentRepository,
		txMgr,
		metricsCollector,
		getDayViewUC.Settings{
			WideStartHour:           cfg.Calendar.WideStartHour,
			WideEndHour:             cfg.Calendar.WideEndHour,
			SlotHeightPx:            cfg.Calendar.SlotHeightPx,
			IndicatorRefreshSeconds: cfg.Calendar.IndicatorRefreshSeconds,
		},
		log,
	)

	getWeekViewUseCase := getWeekViewUC.NewUseCase(
		hoursSvc,
		barberRepository,
		appointmentRepository,
		txMgr,
		metricsCollector,
		getWeekViewUC.Settings{
			WideStartHour:           cfg.Calendar.WideStartHour,
			WideEndHour:             cfg.Calendar.WideEndHour,
			SlotHeightPx:            cfg.Calendar.SlotHeightPx,
			IndicatorRefreshSeconds: cfg.Calendar.IndicatorRefreshSeconds,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hoursSvc,
		barberRepository,
		appointmentRepository,
		txMgr,
		metricsCollector,
		getAvailableSlotsUC.Settings{
			MinBookingNoticeMinutes: cfg.Calendar.MinBookingNoticeMinutes,
		},
		log,
	)

	// Инициализируем handlers
	getDayView := getDayViewHandler.NewHandler(getDayViewUseCase, log)
	getWeekView := getWeekViewHandler.NewHandler(getWeekViewUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBusinessWindow := getBusinessWindowHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Агенда филиала: день и неделя
	api.HandleFunc("/units/{unitId}/calendar/day", getDayView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitId}/calendar/week", getWeekView.Handle).Methods(http.MethodGet)

	// Рабочее время на дату
	api.HandleFunc("/units/{unitId}/business-window", getBusinessWindow.Handle).Methods(http.MethodGet)

	// Свободные слоты барбера
	api.HandleFunc("/units/{unitId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

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
