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

	backSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/back_session"
	cancelReservationHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/create_reservation"
	createSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/create_session"
	getAvailableSlotsHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/get_available_slots"
	getEligibleDatesHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/get_eligible_dates"
	getReservationHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/get_reservation"
	getSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/get_session"
	resetSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/reset_session"
	selectDateHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/select_date"
	selectSlotHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/select_slot"
	setContactHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/set_contact"
	submitSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/submit_session"
	"github.com/nbclib/NBC-ReservationService/internal/api/middleware"
	"github.com/nbclib/NBC-ReservationService/internal/config"
	bookingRepo "github.com/nbclib/NBC-ReservationService/internal/infra/storage/booking"
	memoryStore "github.com/nbclib/NBC-ReservationService/internal/infra/storage/memory"
	ledgerService "github.com/nbclib/NBC-ReservationService/internal/service/ledger"
	sessionsService "github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	cancelReservationUC "github.com/nbclib/NBC-ReservationService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/nbclib/NBC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/nbclib/NBC-ReservationService/internal/usecase/get_available_slots"
	getEligibleDatesUC "github.com/nbclib/NBC-ReservationService/internal/usecase/get_eligible_dates"
	getReservationUC "github.com/nbclib/NBC-ReservationService/internal/usecase/get_reservation"
	"github.com/nbclib/NBC-ReservationService/pkg/dbmetrics"
	"github.com/nbclib/NBC-ReservationService/pkg/logger"
	"github.com/nbclib/NBC-ReservationService/pkg/metrics"
	"github.com/nbclib/NBC-ReservationService/pkg/simpletxmanager"
	"github.com/nbclib/NBC-ReservationService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting NBC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule config: %v", err)
	}
	log.Info("Schedule: %d slots/day, %d-day horizon, up to %d eligible dates",
		schedule.SlotCount, schedule.HorizonDays, schedule.MaxEligibleDates)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	var (
		store         ledgerService.BookingStore
		txMgr         ledgerService.TransactionManager
		ledgerMetrics ledgerService.Metrics = ledgerService.NopMetrics{}
	)

	if cfg.Database.UseMemoryStore() {
		// No database configured: every booking lives in process memory.
		store = memoryStore.NewStore()
		txMgr = memoryStore.NewTxManager()
		log.Warn("No database host configured, using in-memory booking store")
	} else {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			store = bookingRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			store = bookingRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	if cfg.Metrics.Enabled {
		ledgerMetrics = metricsCollector
	}

	ledger := ledgerService.NewService(store, txMgr, schedule, ledgerMetrics, log)
	registry := sessionsService.NewRegistry(schedule, ledger, log)

	getEligibleDatesUseCase := getEligibleDatesUC.NewUseCase(ledger, schedule, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ledger, schedule, log)
	createReservationUseCase := createReservationUC.NewUseCase(ledger, log)
	getReservationUseCase := getReservationUC.NewUseCase(ledger, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(ledger, log)

	getEligibleDates := getEligibleDatesHandler.NewHandler(getEligibleDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(getReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	createSession := createSessionHandler.NewHandler(registry, log)
	getSession := getSessionHandler.NewHandler(registry, log)
	selectDate := selectDateHandler.NewHandler(registry, log)
	selectSlot := selectSlotHandler.NewHandler(registry, log)
	setContact := setContactHandler.NewHandler(registry, log)
	submitSession := submitSessionHandler.NewHandler(registry, log)
	backSession := backSessionHandler.NewHandler(registry, log)
	resetSession := resetSessionHandler.NewHandler(registry, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Calendar and catalog
	api.HandleFunc("/dates", getEligibleDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Reservation sessions
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/contact", setContact.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/submit", submitSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/back", backSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)

	// Bookings
	api.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelReservation.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
