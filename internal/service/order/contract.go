//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"foodhub/internal/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatusType) (*entities.Order, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
}

type Notifier interface {
	Record(ctx context.Context, drafts []entities.NotificationDraft) error
	PublishAll(ctx context.Context, events []entities.Event)
}

type (
	// EffectFn побочные действия перехода, выполняются в той же транзакции.
	// Возвращенные события публикуются после коммита.
	EffectFn      func(ctx context.Context, order *entities.Order) ([]entities.Event, error)
	EffectFactory interface {
		GetEffect(status entities.OrderStatusType) (EffectFn, error)
	}
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
