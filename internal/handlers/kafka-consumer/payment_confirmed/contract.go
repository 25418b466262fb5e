//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_confirmed_test
package payment_confirmed

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
	PlaceOrder(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error)
}
