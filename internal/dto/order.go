package dto

import (
	"time"

	"foodhub/internal/entities"
)

type Order struct {
	ID           int64      `json:"id"`
	CustomerID   int64      `json:"customer_id"`
	RestaurantID int64      `json:"restaurant_id"`
	RiderID      *int64     `json:"rider_id,omitempty"`
	TotalAmount  float64    `json:"total_amount"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

func NewOrder(o *entities.Order) Order {
	return Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		RiderID:      o.RiderID,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		DeliveredAt:  o.DeliveredAt,
	}
}

// OrderStatusUpdate запрос ресторана на смену статуса.
type OrderStatusUpdate struct {
	RestaurantID int64  `json:"restaurant_id"`
	Status       string `json:"status"`
}

type OrderCancel struct {
	CustomerID int64 `json:"customer_id"`
}

// RiderAction тело accept/deliver.
type RiderAction struct {
	RiderID int64 `json:"rider_id"`
}
