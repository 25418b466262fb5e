package chat

import (
	"context"
	"errors"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/pkg/guard"
)

type Service struct {
	orders   OrderRepository
	sessions Repository
}

func New(orders OrderRepository, sessions Repository) *Service {
	return &Service{
		orders:   orders,
		sessions: sessions,
	}
}

// EnsureSession возвращает чат заказа, создавая его при первом обращении.
// Параллельные вызовы для одного заказа получают одну и ту же сессию.
func (s *Service) EnsureSession(ctx context.Context, orderID int64) (*entities.ChatSession, bool, error) {
	if orderID <= 0 {
		return nil, false, ErrInvalidOrderID
	}

	probe := func(ctx context.Context) (*entities.ChatSession, bool, error) {
		session, err := s.sessions.GetByOrderID(ctx, orderID)
		switch {
		case errors.Is(err, ErrSessionNotFound):
			return nil, false, nil
		case err != nil:
			return nil, false, err
		}
		return session, true, nil
	}

	insert := func(ctx context.Context) (*entities.ChatSession, error) {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("get order: %w", err)
		}
		if order.RiderID == nil {
			return nil, ErrRiderNotAssigned
		}

		return s.sessions.Create(ctx, entities.ChatSession{
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			RiderID:    *order.RiderID,
		})
	}

	session, created, err := guard.EnsureOnce(ctx, probe, insert)
	if err != nil {
		return nil, false, fmt.Errorf("ensure chat session for order %d: %w", orderID, err)
	}
	return session, created, nil
}
