package entities

import "time"

// Point координаты в градусах.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

type DeliveryStatusType string

const (
	DeliveryAwaitingRestaurant DeliveryStatusType = "awaiting_restaurant"
	DeliveryPending            DeliveryStatusType = "pending"
	DeliveryInTransit          DeliveryStatusType = "in_transit"
	DeliveryDelivered          DeliveryStatusType = "delivered"
	DeliveryCancelled          DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Delivery логистическая часть заказа, одна на заказ.
type Delivery struct {
	OrderID        int64
	RestaurantID   int64
	DropOff        Point
	DropOffAddress string
	Status         DeliveryStatusType
	Fee            *float64
	StartedAt      *time.Time
	ExpectedBy     *time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time
}

// DeliveryModify частичное обновление. OrderID обязателен,
// FromStatus (если задан) превращает обновление в условное.
type DeliveryModify struct {
	OrderID    *int64
	FromStatus *DeliveryStatusType
	Status     *DeliveryStatusType
	Fee        *float64
	StartedAt  *time.Time
	ExpectedBy *time.Time
	EndedAt    *time.Time
}

// DeliveryRoute точки маршрута для расчета стоимости.
type DeliveryRoute struct {
	OrderID    int64
	Restaurant Point
	DropOff    Point
}
