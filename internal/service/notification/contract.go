//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"foodhub/internal/entities"
	"foodhub/pkg/logger"
)

type Repository interface {
	CreateBatch(ctx context.Context, drafts []entities.NotificationDraft) (int64, error)
	List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error)
}

// Bus транспорт событий до подписчиков: локальный hub или redis.
type Bus interface {
	Publish(ctx context.Context, topic entities.Topic, message []byte) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
