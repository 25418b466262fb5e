package order

import (
	"foodhub/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		PaymentID:    o.PaymentID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		RiderID:      o.RiderID,
		TotalAmount:  o.TotalAmount,
		Status:       entities.OrderStatusType(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		DeliveredAt:  o.DeliveredAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
