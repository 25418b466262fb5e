//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"foodhub/internal/entities"
)

type OrderRepository interface {
	AssignRider(ctx context.Context, orderID, riderID int64) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	ListReadyForPickup(ctx context.Context, readyBefore time.Time, limit uint64) ([]entities.Order, error)
}

type RiderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.RiderStatusType) (bool, error)
}

type DeliveryRepository interface {
	GetByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error)
	Update(ctx context.Context, modify entities.DeliveryModify) (*entities.Delivery, error)
}

// Transitioner переход статуса через конечный автомат заказа.
type Transitioner interface {
	Transition(ctx context.Context, orderID int64, actor entities.Actor, requested entities.OrderStatusType) (*entities.Order, error)
}

type Notifier interface {
	Record(ctx context.Context, drafts []entities.NotificationDraft) error
	PublishAll(ctx context.Context, events []entities.Event)
}

type DeliveryTimeFactory interface {
	CalculateDeadline(transportType entities.RiderTransportType, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
