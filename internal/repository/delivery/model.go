package delivery

import "time"

type DeliveryDB struct {
	OrderID        int64
	RestaurantID   int64
	DropOffLat     float64
	DropOffLng     float64
	DropOffAddress string
	Status         string
	Fee            *float64
	StartedAt      *time.Time
	ExpectedBy     *time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time
}

type DeliveryModifyDB struct {
	OrderID    *int64
	FromStatus *string
	Status     *string
	Fee        *float64
	StartedAt  *time.Time
	ExpectedBy *time.Time
	EndedAt    *time.Time
}

type RouteDB struct {
	OrderID       int64
	RestaurantLat float64
	RestaurantLng float64
	DropOffLat    float64
	DropOffLng    float64
}
