package postgres

import (
	"context"
	"fmt"

	"foodhub/migrations"
	"foodhub/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает встроенные goose миграции через соединения пула.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migration connection", logger.ErrorField(err))
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			logger.NewField("version", r.Source.Version),
			logger.NewField("duration", r.Duration.String()),
		)
	}
	return nil
}
