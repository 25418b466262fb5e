//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_deliver_post_test
package order_deliver_post

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
	DeliverOrder(ctx context.Context, orderID, riderID int64) (*entities.Order, error)
}
