package dto

import (
	"time"

	"foodhub/internal/entities"
)

type Notification struct {
	ID            int64     `json:"id"`
	RecipientID   int64     `json:"recipient_id"`
	RecipientKind string    `json:"recipient_kind"`
	OrderID       int64     `json:"order_id"`
	Category      string    `json:"category"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

type NotificationList struct {
	Items []Notification `json:"items"`
}

func NewNotificationList(items []entities.Notification) NotificationList {
	list := NotificationList{Items: make([]Notification, 0, len(items))}
	for _, n := range items {
		list.Items = append(list.Items, Notification{
			ID:            n.ID,
			RecipientID:   n.RecipientID,
			RecipientKind: n.RecipientKind.String(),
			OrderID:       n.OrderID,
			Category:      string(n.Category),
			Message:       n.Message,
			CreatedAt:     n.CreatedAt,
		})
	}
	return list
}
