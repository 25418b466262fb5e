package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodhub/internal/entities"
	"foodhub/internal/repository"
	"foodhub/internal/service/chat"
	"foodhub/internal/service/order"
	"foodhub/pkg/guard"

	"github.com/jackc/pgx/v5"
)

type ChatSessionDB struct {
	ID         int64
	OrderID    int64
	CustomerID int64
	RiderID    int64
	CreatedAt  time.Time
}

func ToDomain(s *ChatSessionDB) *entities.ChatSession {
	if s == nil {
		return nil
	}
	return &entities.ChatSession{
		ID:         s.ID,
		OrderID:    s.OrderID,
		CustomerID: s.CustomerID,
		RiderID:    s.RiderID,
		CreatedAt:  s.CreatedAt,
	}
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.ChatSession, error) {
	query := `SELECT id, order_id, customer_id, rider_id, created_at
		FROM chat_sessions
		WHERE order_id = $1`

	var sessionDB ChatSessionDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&sessionDB.ID,
		&sessionDB.OrderID,
		&sessionDB.CustomerID,
		&sessionDB.RiderID,
		&sessionDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository getbyorderid error: %w", err)
	}

	return ToDomain(&sessionDB), nil
}

// Create без ON CONFLICT: повторная сессия для заказа возвращается как
// guard.ErrConstraintViolation, а победителя перечитывает вызывающий.
func (r *Repository) Create(ctx context.Context, session entities.ChatSession) (*entities.ChatSession, error) {
	query := `INSERT INTO chat_sessions (order_id, customer_id, rider_id)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, customer_id, rider_id, created_at`

	var sessionDB ChatSessionDB
	err := r.querier.QueryRow(ctx, query, session.OrderID, session.CustomerID, session.RiderID).Scan(
		&sessionDB.ID,
		&sessionDB.OrderID,
		&sessionDB.CustomerID,
		&sessionDB.RiderID,
		&sessionDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("chat session for order %d: %w", session.OrderID, guard.ErrConstraintViolation)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomain(&sessionDB), nil
}
