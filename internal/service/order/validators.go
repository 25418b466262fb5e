package order

import (
	"fmt"
	"strings"

	"foodhub/internal/entities"
)

func isValidOrderID(id int64) bool {
	return id > 0
}

func validatePlacement(p entities.OrderPlacement) error {
	switch {
	case strings.TrimSpace(p.PaymentID) == "":
		return fmt.Errorf("%w: payment id is required", ErrInvalidPlacement)
	case p.CustomerID <= 0:
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidPlacement)
	case p.RestaurantID <= 0:
		return fmt.Errorf("%w: restaurant id must be positive", ErrInvalidPlacement)
	case p.TotalAmount < 0:
		return fmt.Errorf("%w: total amount must not be negative", ErrInvalidPlacement)
	case !p.DropOff.Valid():
		return fmt.Errorf("%w: drop-off coordinates out of range", ErrInvalidPlacement)
	}
	return nil
}
