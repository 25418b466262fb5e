package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, иначе только те, где функция вернула true.
	ShouldRetry ShouldRetryFunc
}

// ConnectConfig параметры для ожидания внешних зависимостей (postgres, redis) на старте.
func ConnectConfig(maxElapsed time.Duration) Config {
	return Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     3 * time.Second,
		MaxElapsedTime:  maxElapsed,
		Randomization:   0.3,
		Multiplier:      2,
	}
}
