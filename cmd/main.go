package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	createReservationHandler "github.com/m04kA/table-reservation/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/table-reservation/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/table-reservation/internal/api/handlers/get_calendar"
	getShopConfigHandler "github.com/m04kA/table-reservation/internal/api/handlers/get_shop_config"
	"github.com/m04kA/table-reservation/internal/api/middleware"
	"github.com/m04kA/table-reservation/internal/bootstrap"
	"github.com/m04kA/table-reservation/internal/config"
	createReservationUC "github.com/m04kA/table-reservation/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/table-reservation/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/table-reservation/internal/usecase/get_calendar"
	"github.com/m04kA/table-reservation/pkg/logger"
	"github.com/m04kA/table-reservation/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting table-reservation...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var engineMetrics bootstrap.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		engineMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем движок: правила ресторана, праздники, хранилище событий, блокировка слотов
	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Duration(cfg.Calendar.Timeout)*time.Second)
	engine, err := bootstrap.New(startCtx, cfg, log, engineMetrics)
	cancelStart()
	if err != nil {
		log.Fatal("Failed to initialize booking engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Error("Failed to close engine: %v", err)
		}
	}()

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		engine.Shop,
		engine.Availability,
		engine.Gateway,
		engine.Serializer,
		log,
	)
	if metricsCollector != nil {
		createReservationUseCase.WithMetrics(metricsCollector)
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(engine.Shop, engine.Availability, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(engine.Shop, engine.Availability, cfg.Calendar.UpcomingDays, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, engine.Shop.Location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, engine.Shop.Location, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getShopConfig := getShopConfigHandler.NewHandler(engine.Shop, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}
	r.Use(middleware.LoggingMiddleware(log))

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Правила ресторана
	api.HandleFunc("/shop", getShopConfig.Handle).Methods(http.MethodGet)

	// Свободные слоты дня
	api.HandleFunc("/days/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарь: ближайшие дни и месяц
	api.HandleFunc("/calendar/upcoming", getCalendar.HandleUpcoming).Methods(http.MethodGet)
	api.HandleFunc("/calendar/{year}/{month}", getCalendar.HandleMonth).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

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
