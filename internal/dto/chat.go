package dto

import (
	"time"

	"foodhub/internal/entities"
)

type ChatSession struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	RiderID    int64     `json:"rider_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewChatSession(s *entities.ChatSession) ChatSession {
	return ChatSession{
		ID:         s.ID,
		OrderID:    s.OrderID,
		CustomerID: s.CustomerID,
		RiderID:    s.RiderID,
		CreatedAt:  s.CreatedAt,
	}
}
