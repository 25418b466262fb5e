package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	application "foodhub/internal/app"
	"foodhub/internal/handlers/rest/chat_session_post"
	"foodhub/internal/handlers/rest/healthcheck_head"
	"foodhub/internal/handlers/rest/notifications_get"
	"foodhub/internal/handlers/rest/order_accept_post"
	"foodhub/internal/handlers/rest/order_cancel_post"
	"foodhub/internal/handlers/rest/order_deliver_post"
	"foodhub/internal/handlers/rest/order_get"
	"foodhub/internal/handlers/rest/order_status_patch"
	"foodhub/internal/handlers/rest/ping_get"
	"foodhub/internal/handlers/rest/rider_availability_put"
	"foodhub/internal/handlers/rest/rider_get"
	"foodhub/internal/handlers/ws/events_ws"
	"foodhub/internal/pkg/config"
	"foodhub/internal/pkg/dotenv"
	metrics_system "foodhub/internal/pkg/metrics"
	"foodhub/internal/pkg/middlewares/graceful_shutdown"
	"foodhub/internal/pkg/middlewares/metrics"
	"foodhub/internal/pkg/middlewares/rate_limiter"
	"foodhub/internal/pkg/middlewares/timeout"
	"foodhub/internal/pkg/postgres"
	"foodhub/internal/pkg/redisclient"
	"foodhub/pkg/logger"
	"foodhub/pkg/logger/zap_adapter"
	"foodhub/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "foodhub"))

	mainLog.Info("starting foodhub service")

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.ErrorField(err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
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

	runLog := log.With(logger.NewField("component", "service"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.ErrorField(err))
		}
	}()

	// фоновые задачи и relay живут до начала остановки, а не до конца дренажа
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	var workers sync.WaitGroup
	relayErr := make(chan error, 1)
	workers.Add(2)
	go func() {
		defer workers.Done()
		if err := businessApp.Relay.Run(workersCtx, businessApp.Hub); err != nil {
			relayErr <- err
		}
	}()
	go func() {
		defer workers.Done()
		metrics_system.RunSystemMetricsCollector(workersCtx)
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	health := healthcheck_head.New(&isShuttingDown, pool, redisclient.NewPinger(redisClient))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, health, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		// ReadTimeout и WriteTimeout остаются на соединении после websocket hijack,
		// REST запросы ограничивает timeout middleware
		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(health),
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
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	case err := <-relayErr:
		return fmt.Errorf("redis relay: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	stopWorkers()
	businessApp.BackgroundWorkers.Wait()
	workers.Wait()

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.ErrorField(pprofErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// websocket соединения Shutdown не ждет, их закрывает отмена ongoingCtx
	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	health *healthcheck_head.Handler,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.Handle("/healthcheck", health).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// websocket живет дольше любого REST таймаута
	router.Handle("/ws", events_ws.New(log, app.Hub, &cfg.Realtime)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))

	api.Handle("/orders/{id:[0-9]+}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id:[0-9]+}/status", order_status_patch.New(log, app.ServiceOrder)).Methods("PATCH")
	api.Handle("/orders/{id:[0-9]+}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id:[0-9]+}/accept", order_accept_post.New(log, app.ServiceDispatch)).Methods("POST")
	api.Handle("/orders/{id:[0-9]+}/deliver", order_deliver_post.New(log, app.ServiceDispatch)).Methods("POST")
	api.Handle("/orders/{id:[0-9]+}/chat", chat_session_post.New(log, app.ServiceChat)).Methods("POST")

	api.Handle("/riders/{id:[0-9]+}", rider_get.New(log, app.ServiceRider)).Methods("GET")
	api.Handle("/riders/{id:[0-9]+}/availability", rider_availability_put.New(log, app.ServiceRider)).Methods("PUT")

	api.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")

	return router
}

func initPprofRouter(health *healthcheck_head.Handler) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", health).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
