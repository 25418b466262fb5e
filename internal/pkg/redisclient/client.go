package redisclient

import (
	"context"
	"fmt"
	"time"

	"foodhub/internal/pkg/config"
	"foodhub/pkg/logger"
	retrierconfig "foodhub/pkg/retrier"
	"foodhub/pkg/retrier/backoff_adapter"

	"github.com/redis/go-redis/v9"
)

const connectMaxElapsed = time.Minute

// New подключается к redis и ждет ответа на PING с экспоненциальной паузой.
func New(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	retrier := backoff_adapter.New(retrierconfig.ConnectConfig(connectMaxElapsed))

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return client.Ping(ctx).Err()
	})
	if err != nil {
		redisLog.Error("redis connection failed after retries",
			logger.NewField("attempts", attempt),
			logger.ErrorField(err),
		)
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	redisLog.Info("redis connection established", logger.NewField("attempts", attempt))
	return client, nil
}

// Pinger проверка redis для healthcheck.
type Pinger struct {
	client *redis.Client
}

func NewPinger(client *redis.Client) Pinger {
	return Pinger{client: client}
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
