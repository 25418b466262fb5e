package entities

import "time"

// ChatSession переписка клиента и курьера по заказу. Не больше одной на заказ.
type ChatSession struct {
	ID         int64
	OrderID    int64
	CustomerID int64
	RiderID    int64
	CreatedAt  time.Time
}
