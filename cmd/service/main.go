package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "fleetops/internal/app"
	"fleetops/internal/handlers/rest/driver_delete"
	"fleetops/internal/handlers/rest/driver_get"
	"fleetops/internal/handlers/rest/driver_history_get"
	"fleetops/internal/handlers/rest/driver_post"
	"fleetops/internal/handlers/rest/driver_put"
	"fleetops/internal/handlers/rest/driver_status_log_delete"
	"fleetops/internal/handlers/rest/driver_status_log_get"
	"fleetops/internal/handlers/rest/driver_status_log_post"
	"fleetops/internal/handlers/rest/driver_status_logs_get"
	"fleetops/internal/handlers/rest/drivers_get"
	"fleetops/internal/handlers/rest/expense_delete"
	"fleetops/internal/handlers/rest/expense_get"
	"fleetops/internal/handlers/rest/expense_post"
	"fleetops/internal/handlers/rest/expense_put"
	"fleetops/internal/handlers/rest/expenses_get"
	"fleetops/internal/handlers/rest/fuel_log_delete"
	"fleetops/internal/handlers/rest/fuel_log_get"
	"fleetops/internal/handlers/rest/fuel_log_post"
	"fleetops/internal/handlers/rest/fuel_log_put"
	"fleetops/internal/handlers/rest/fuel_logs_get"
	"fleetops/internal/handlers/rest/healthcheck_head"
	"fleetops/internal/handlers/rest/maintenance_delete"
	"fleetops/internal/handlers/rest/maintenance_get"
	"fleetops/internal/handlers/rest/maintenance_post"
	"fleetops/internal/handlers/rest/maintenance_put"
	"fleetops/internal/handlers/rest/maintenance_status_patch"
	"fleetops/internal/handlers/rest/maintenances_get"
	"fleetops/internal/handlers/rest/ping_get"
	"fleetops/internal/handlers/rest/shipment_delete"
	"fleetops/internal/handlers/rest/shipment_get"
	"fleetops/internal/handlers/rest/shipment_post"
	"fleetops/internal/handlers/rest/shipment_put"
	"fleetops/internal/handlers/rest/shipments_get"
	"fleetops/internal/handlers/rest/trip_cancel_post"
	"fleetops/internal/handlers/rest/trip_complete_post"
	"fleetops/internal/handlers/rest/trip_delete"
	"fleetops/internal/handlers/rest/trip_dispatch_post"
	"fleetops/internal/handlers/rest/trip_get"
	"fleetops/internal/handlers/rest/trip_post"
	"fleetops/internal/handlers/rest/trip_put"
	"fleetops/internal/handlers/rest/trips_get"
	"fleetops/internal/handlers/rest/vehicle_delete"
	"fleetops/internal/handlers/rest/vehicle_get"
	"fleetops/internal/handlers/rest/vehicle_history_get"
	"fleetops/internal/handlers/rest/vehicle_post"
	"fleetops/internal/handlers/rest/vehicle_put"
	"fleetops/internal/handlers/rest/vehicle_status_log_delete"
	"fleetops/internal/handlers/rest/vehicle_status_log_get"
	"fleetops/internal/handlers/rest/vehicle_status_log_post"
	"fleetops/internal/handlers/rest/vehicle_status_logs_get"
	"fleetops/internal/handlers/rest/vehicles_get"
	"fleetops/internal/pkg/config"
	"fleetops/internal/pkg/dotenv"
	metrics_system "fleetops/internal/pkg/metrics"
	"fleetops/internal/pkg/middlewares/graceful_shutdown"
	"fleetops/internal/pkg/middlewares/metrics"
	"fleetops/internal/pkg/middlewares/rate_limiter"
	"fleetops/internal/pkg/middlewares/timeout"
	"fleetops/internal/pkg/postgres"
	"fleetops/pkg/logger"
	"fleetops/pkg/logger/zap_adapter"
	"fleetops/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fleetops application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/vehicle/{id}", vehicle_get.New(log, app.ServiceVehicle)).Methods("GET")
	router.Handle("/vehicles", vehicles_get.New(log, app.ServiceVehicle)).Methods("GET")
	router.Handle("/vehicle", vehicle_post.New(log, app.ServiceVehicle)).Methods("POST")
	router.Handle("/vehicle", vehicle_put.New(log, app.ServiceVehicle)).Methods("PUT")
	router.Handle("/vehicle/{id}", vehicle_delete.New(log, app.ServiceVehicle)).Methods("DELETE")

	router.Handle("/driver/{id}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/drivers", drivers_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/driver", driver_post.New(log, app.ServiceDriver)).Methods("POST")
	router.Handle("/driver", driver_put.New(log, app.ServiceDriver)).Methods("PUT")
	router.Handle("/driver/{id}", driver_delete.New(log, app.ServiceDriver)).Methods("DELETE")

	router.Handle("/shipment/{id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments", shipments_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipment", shipment_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment", shipment_put.New(log, app.ServiceShipment)).Methods("PUT")
	router.Handle("/shipment/{id}", shipment_delete.New(log, app.ServiceShipment)).Methods("DELETE")

	router.Handle("/trip/{id}", trip_get.New(log, app.ServiceTrip)).Methods("GET")
	router.Handle("/trips", trips_get.New(log, app.ServiceTrip)).Methods("GET")
	router.Handle("/trip", trip_post.New(log, app.ServiceTrip)).Methods("POST")
	router.Handle("/trip", trip_put.New(log, app.ServiceTrip)).Methods("PUT")
	router.Handle("/trip/{id}", trip_delete.New(log, app.ServiceTrip)).Methods("DELETE")
	router.Handle("/trip/{id}/dispatch", trip_dispatch_post.New(log, app.ServiceTrip)).Methods("POST")
	router.Handle("/trip/{id}/complete", trip_complete_post.New(log, app.ServiceTrip)).Methods("POST")
	router.Handle("/trip/{id}/cancel", trip_cancel_post.New(log, app.ServiceTrip)).Methods("POST")

	router.Handle("/maintenance/{id}", maintenance_get.New(log, app.ServiceMaintenance)).Methods("GET")
	router.Handle("/maintenances", maintenances_get.New(log, app.ServiceMaintenance)).Methods("GET")
	router.Handle("/maintenance", maintenance_post.New(log, app.ServiceMaintenance)).Methods("POST")
	router.Handle("/maintenance", maintenance_put.New(log, app.ServiceMaintenance)).Methods("PUT")
	router.Handle("/maintenance/{id}/status", maintenance_status_patch.New(log, app.ServiceMaintenance)).Methods("PATCH")
	router.Handle("/maintenance/{id}", maintenance_delete.New(log, app.ServiceMaintenance)).Methods("DELETE")

	router.Handle("/fuel-log/{id}", fuel_log_get.New(log, app.ServiceFuelLog)).Methods("GET")
	router.Handle("/fuel-logs", fuel_logs_get.New(log, app.ServiceFuelLog)).Methods("GET")
	router.Handle("/fuel-log", fuel_log_post.New(log, app.ServiceFuelLog)).Methods("POST")
	router.Handle("/fuel-log", fuel_log_put.New(log, app.ServiceFuelLog)).Methods("PUT")
	router.Handle("/fuel-log/{id}", fuel_log_delete.New(log, app.ServiceFuelLog)).Methods("DELETE")

	router.Handle("/expense/{id}", expense_get.New(log, app.ServiceExpense)).Methods("GET")
	router.Handle("/expenses", expenses_get.New(log, app.ServiceExpense)).Methods("GET")
	router.Handle("/expense", expense_post.New(log, app.ServiceExpense)).Methods("POST")
	router.Handle("/expense", expense_put.New(log, app.ServiceExpense)).Methods("PUT")
	router.Handle("/expense/{id}", expense_delete.New(log, app.ServiceExpense)).Methods("DELETE")

	router.Handle("/vehicle-status-log/{id}", vehicle_status_log_get.New(log, app.ServiceStatusLog)).Methods("GET")
	router.Handle("/vehicle-status-logs", vehicle_status_logs_get.New(log, app.ServiceStatusLog)).Methods("GET")
	router.Handle("/vehicle-status-log", vehicle_status_log_post.New(log, app.ServiceStatusLog)).Methods("POST")
	router.Handle("/vehicle-status-log/{id}", vehicle_status_log_delete.New(log, app.ServiceStatusLog)).Methods("DELETE")
	router.Handle("/vehicle/{id}/history", vehicle_history_get.New(log, app.ServiceStatusLog)).Methods("GET")

	router.Handle("/driver-status-log/{id}", driver_status_log_get.New(log, app.ServiceStatusLog)).Methods("GET")
	router.Handle("/driver-status-logs", driver_status_logs_get.New(log, app.ServiceStatusLog)).Methods("GET")
	router.Handle("/driver-status-log", driver_status_log_post.New(log, app.ServiceStatusLog)).Methods("POST")
	router.Handle("/driver-status-log/{id}", driver_status_log_delete.New(log, app.ServiceStatusLog)).Methods("DELETE")
	router.Handle("/driver/{id}/history", driver_history_get.New(log, app.ServiceStatusLog)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
