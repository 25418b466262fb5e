//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_session_post_test
package chat_session_post

import (
	"context"

	"foodhub/internal/entities"
	"foodhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	EnsureSession(ctx context.Context, orderID int64) (*entities.ChatSession, bool, error)
}
