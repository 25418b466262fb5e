package order

import (
	"errors"
	"fmt"

	"foodhub/internal/entities"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidPlacement = errors.New("invalid order placement")

	ErrOrderNotFound      = errors.New("order not found")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("order was modified concurrently")
	ErrUndefinedStatus   = errors.New("undefined order status")
)

// TransitionError отклоненный переход с сообщением, которое можно показать пользователю.
type TransitionError struct {
	Actor   entities.ActorRole
	From    entities.OrderStatusType
	To      entities.OrderStatusType
	Message string
}

func (e *TransitionError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidTransition, e.Message)
	}
	return fmt.Sprintf("%s: %s -> %s by %s: %s", ErrInvalidTransition, e.From, e.To, e.Actor, e.Message)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
