package rider

import "foodhub/internal/entities"

func isValidRiderID(id int64) bool {
	return id > 0
}

// busy выставляет только диспетчеризация, вручную можно выйти на смену или уйти на паузу.
func isSelectableAvailability(status entities.RiderStatusType) bool {
	switch status {
	case entities.RiderAvailable, entities.RiderPaused:
		return true
	default:
		return false
	}
}
