package delivery

import "foodhub/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		OrderID:        d.OrderID,
		RestaurantID:   d.RestaurantID,
		DropOff:        entities.Point{Lat: d.DropOffLat, Lng: d.DropOffLng},
		DropOffAddress: d.DropOffAddress,
		Status:         entities.DeliveryStatusType(d.Status),
		Fee:            d.Fee,
		StartedAt:      d.StartedAt,
		ExpectedBy:     d.ExpectedBy,
		EndedAt:        d.EndedAt,
		CreatedAt:      d.CreatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		OrderID:    d.OrderID,
		Fee:        d.Fee,
		StartedAt:  d.StartedAt,
		ExpectedBy: d.ExpectedBy,
		EndedAt:    d.EndedAt,
	}

	if d.FromStatus != nil {
		fromStatus := d.FromStatus.String()
		deliveryModifyDB.FromStatus = &fromStatus
	}
	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}

	return deliveryModifyDB
}

func ToRouteDomain(r *RouteDB) *entities.DeliveryRoute {
	if r == nil {
		return nil
	}
	return &entities.DeliveryRoute{
		OrderID:    r.OrderID,
		Restaurant: entities.Point{Lat: r.RestaurantLat, Lng: r.RestaurantLng},
		DropOff:    entities.Point{Lat: r.DropOffLat, Lng: r.DropOffLng},
	}
}
