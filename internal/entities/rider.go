package entities

import (
	"time"
)

type Rider struct {
	ID            int64
	Name          string
	Phone         string
	Status        RiderStatusType
	TransportType RiderTransportType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RiderTransportType string

const (
	OnFoot  RiderTransportType = "on_foot"
	Scooter RiderTransportType = "scooter"
	Car     RiderTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t RiderTransportType) String() string {
	return string(t)
}

type RiderStatusType string

const (
	RiderAvailable RiderStatusType = "available"
	RiderBusy      RiderStatusType = "busy"
	RiderPaused    RiderStatusType = "paused"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID     *int64
	Status *RiderStatusType
}
