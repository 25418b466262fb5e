package delivery_deadline

import (
	"time"

	"foodhub/internal/entities"
)

// DeliveryTimeFactory ожидаемое время доставки от момента, когда курьер забрал заказ.
type DeliveryTimeFactory struct {
	durations map[entities.RiderTransportType]time.Duration
	fallback  time.Duration
}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{
		durations: map[entities.RiderTransportType]time.Duration{
			entities.OnFoot:  40 * time.Minute,
			entities.Scooter: 25 * time.Minute,
			entities.Car:     20 * time.Minute,
		},
		fallback: 40 * time.Minute,
	}
}

func (d *DeliveryTimeFactory) CalculateDeadline(transportType entities.RiderTransportType, baseTime time.Time) time.Time {
	duration, ok := d.durations[transportType]
	if !ok {
		duration = d.fallback
	}
	return baseTime.Add(duration)
}
