//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"foodhub/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type Repository interface {
	// GetByOrderID возвращает ErrSessionNotFound, если сессии нет.
	GetByOrderID(ctx context.Context, orderID int64) (*entities.ChatSession, error)
	// Create оборачивает guard.ErrConstraintViolation при повторной сессии для заказа.
	Create(ctx context.Context, session entities.ChatSession) (*entities.ChatSession, error)
}
