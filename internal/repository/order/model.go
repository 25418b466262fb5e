package order

import "time"

type OrderDB struct {
	ID           int64
	PaymentID    string
	CustomerID   int64
	RestaurantID int64
	RiderID      *int64
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeliveredAt  *time.Time
}
