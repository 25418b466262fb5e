package rider

import (
	"foodhub/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Status:        entities.RiderStatusType(r.Status),
		TransportType: entities.RiderTransportType(r.TransportType),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
