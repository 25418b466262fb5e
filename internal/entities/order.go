package entities

import "time"

type Order struct {
	ID           int64
	PaymentID    string
	CustomerID   int64
	RestaurantID int64
	RiderID      *int64
	TotalAmount  float64
	Status       OrderStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeliveredAt  *time.Time
}

type OrderStatusType string

const (
	OrderPendingRestaurantAcceptance OrderStatusType = "pending_restaurant_acceptance"
	OrderPreparing                   OrderStatusType = "preparing"
	OrderReadyForPickup              OrderStatusType = "ready_for_pickup"
	OrderOutForDelivery              OrderStatusType = "out_for_delivery"
	OrderDelivered                   OrderStatusType = "delivered"
	OrderRestaurantRejected          OrderStatusType = "restaurant_rejected"
	OrderCancelled                   OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal из терминальных статусов переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderRestaurantRejected, OrderCancelled:
		return true
	default:
		return false
	}
}

// RequiresRider статусы, в которых у заказа обязан быть назначен курьер.
func (s OrderStatusType) RequiresRider() bool {
	return s == OrderOutForDelivery || s == OrderDelivered
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPendingRestaurantAcceptance, OrderPreparing, OrderReadyForPickup,
		OrderOutForDelivery, OrderDelivered, OrderRestaurantRejected, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderPlacement данные оплаченного заказа, из которых он создается.
type OrderPlacement struct {
	PaymentID      string
	CustomerID     int64
	RestaurantID   int64
	TotalAmount    float64
	DropOff        Point
	DropOffAddress string
}
