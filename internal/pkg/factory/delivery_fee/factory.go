package delivery_fee

import (
	"math"

	"foodhub/internal/entities"
)

const earthRadiusKm = 6371.0

// Calculator стоимость доставки: base + perKm * расстояние по большой окружности.
type Calculator struct {
	base  float64
	perKm float64
}

func New(base, perKm float64) *Calculator {
	return &Calculator{base: base, perKm: perKm}
}

// CalculateFee результат округляется до центов и никогда не меньше base.
func (c *Calculator) CalculateFee(restaurant, dropOff entities.Point) float64 {
	fee := c.base + c.perKm*DistanceKm(restaurant, dropOff)
	return math.Round(fee*100) / 100
}

// DistanceKm расстояние по формуле гаверсинусов.
func DistanceKm(a, b entities.Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
