package payment_confirmed

import "foodhub/internal/entities"

// paymentConfirmedEvent сообщение платежного сервиса в топике payment.confirmed.
type paymentConfirmedEvent struct {
	PaymentID      string  `json:"payment_id"`
	CustomerID     int64   `json:"customer_id"`
	RestaurantID   int64   `json:"restaurant_id"`
	TotalAmount    float64 `json:"total_amount"`
	DropOff        point   `json:"drop_off"`
	DropOffAddress string  `json:"drop_off_address"`
}

type point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (e paymentConfirmedEvent) toPlacement() entities.OrderPlacement {
	return entities.OrderPlacement{
		PaymentID:      e.PaymentID,
		CustomerID:     e.CustomerID,
		RestaurantID:   e.RestaurantID,
		TotalAmount:    e.TotalAmount,
		DropOff:        entities.Point{Lat: e.DropOff.Lat, Lng: e.DropOff.Lng},
		DropOffAddress: e.DropOffAddress,
	}
}
