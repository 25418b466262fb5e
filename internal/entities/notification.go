package entities

import "time"

type RecipientKind string

const (
	RecipientRestaurant RecipientKind = "restaurant"
	RecipientRider      RecipientKind = "rider"
	RecipientCustomer   RecipientKind = "customer"
)

func (k RecipientKind) String() string {
	return string(k)
}

func (k RecipientKind) Valid() bool {
	return k == RecipientRestaurant || k == RecipientRider || k == RecipientCustomer
}

type NotificationCategory string

const (
	NotificationNewOrder       NotificationCategory = "new_order"
	NotificationOrderStatus    NotificationCategory = "order_status"
	NotificationOrderReady     NotificationCategory = "order_ready"
	NotificationOrderAccepted  NotificationCategory = "order_accepted"
	NotificationOrderDelivered NotificationCategory = "order_delivered"
)

// Notification сохраненное уведомление для опроса клиентом.
type Notification struct {
	ID            int64
	RecipientID   int64
	RecipientKind RecipientKind
	OrderID       int64
	Category      NotificationCategory
	Message       string
	CreatedAt     time.Time
}

type NotificationDraft struct {
	RecipientID   int64
	RecipientKind RecipientKind
	OrderID       int64
	Category      NotificationCategory
	Message       string
}

type NotificationFilter struct {
	RecipientID   int64
	RecipientKind RecipientKind
	OrderID       *int64
	Limit         uint64
}
