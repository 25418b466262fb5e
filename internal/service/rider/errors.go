package rider

import "errors"

var (
	ErrInvalidRiderID      = errors.New("invalid rider id")
	ErrInvalidAvailability = errors.New("availability must be available or paused")

	ErrRiderNotFound = errors.New("rider not found")
	ErrRiderBusy     = errors.New("rider is on a delivery")
	ErrConflict      = errors.New("rider status changed concurrently")
)
