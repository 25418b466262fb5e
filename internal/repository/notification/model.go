package notification

import "time"

type NotificationDB struct {
	ID            int64
	RecipientID   int64
	RecipientKind string
	OrderID       int64
	Category      string
	Message       string
	CreatedAt     time.Time
}
