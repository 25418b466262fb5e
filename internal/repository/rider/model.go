package rider

import "time"

type RiderDB struct {
	ID            int64
	Name          string
	Phone         string
	Status        string
	TransportType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
