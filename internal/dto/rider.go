package dto

import "foodhub/internal/entities"

type Rider struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	TransportType string `json:"transport_type"`
}

func NewRider(r *entities.Rider) Rider {
	return Rider{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Status:        r.Status.String(),
		TransportType: r.TransportType.String(),
	}
}

type RiderAvailability struct {
	Status string `json:"status"`
}
