//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_patch_test
package order_status_patch

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
	Transition(ctx context.Context, orderID int64, actor entities.Actor, requested entities.OrderStatusType) (*entities.Order, error)
}
