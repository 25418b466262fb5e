//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_handle_test
package order_handle

import (
	"context"

	"foodhub/internal/entities"
)

type DeliveryRepository interface {
	GetRoute(ctx context.Context, orderID int64) (*entities.DeliveryRoute, error)
	Update(ctx context.Context, modify entities.DeliveryModify) (*entities.Delivery, error)
}

type RiderRepository interface {
	ListAvailableIDs(ctx context.Context) ([]int64, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.RiderStatusType) (bool, error)
}

type FeeCalculator interface {
	CalculateFee(restaurant, dropOff entities.Point) float64
}

type NotificationRecorder interface {
	Record(ctx context.Context, drafts []entities.NotificationDraft) error
}
