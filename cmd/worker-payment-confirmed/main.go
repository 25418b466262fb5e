package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"foodhub/internal/app"
	"foodhub/internal/handlers/kafka-consumer/payment_confirmed"
	"foodhub/internal/handlers/rest/healthcheck_head"
	"foodhub/internal/pkg/config"
	"foodhub/internal/pkg/dotenv"
	"foodhub/internal/pkg/kafka"
	"foodhub/internal/pkg/postgres"
	"foodhub/internal/pkg/redisclient"
	"foodhub/pkg/logger"
	"foodhub/pkg/logger/zap_adapter"
	"foodhub/pkg/retrier"
	"foodhub/pkg/retrier/backoff_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
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
	mainLog := appLogger.With(logger.NewField("app", "worker-payment-confirmed"))

	mainLog.Info("starting payment.confirmed worker")

	if err := run(context.Background(), appLogger, cfg); err != nil {
		mainLog.Error("application failed", logger.ErrorField(err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "worker"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.ErrorField(err))
		}
	}()

	businessApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx не отменяется по SIGTERM: consumer дорабатывает текущее сообщение.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Kafka.PortHealthcheck),
		Handler: initHealthcheckRouter(&isShuttingDown, pool),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)

		runLog.Info("healthcheck server starting", logger.NewField("port", cfg.Kafka.PortHealthcheck))
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			healthServerErr <- err
		}
	}()

	handlerCfg := cfg.Kafka.Handlers.PaymentConfirmed
	kafkaHandler := payment_confirmed.New(
		log,
		businessApp.OrderService,
		handlerCfg.ProcessTimeout,
		backoff_adapter.New(payment_confirmed.WithRetryPolicy(retrier.ConnectConfig(handlerCfg.RetryMaxElapsed))),
	)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, kafkaHandler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)
		if err := consumer.Start(ongoingCtx); err != nil {
			consumerErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining kafka messages")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopOngoingGracefully()

	if err := consumer.Close(); err != nil {
		runLog.Error("failed to close kafka consumer", logger.ErrorField(err))
	}

	runLog.Info("worker stopped")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool, deps ...healthcheck_head.Pinger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, deps...))
	return mux
}
