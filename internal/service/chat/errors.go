package chat

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrSessionNotFound  = errors.New("chat session not found")
	ErrRiderNotAssigned = errors.New("order has no assigned rider yet")
)
