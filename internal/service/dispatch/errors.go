package dispatch

import (
	"errors"
	"fmt"

	"foodhub/internal/service/order"
)

var (
	ErrInvalidRiderID   = errors.New("invalid rider id")
	ErrRiderUnavailable = errors.New("rider is not available for new orders")

	// ErrAlreadyAssigned заказ забрал другой курьер. Это частный случай order.ErrConflict.
	ErrAlreadyAssigned = fmt.Errorf("%w: order already taken by another rider", order.ErrConflict)
)
