//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"foodhub/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.RiderStatusType) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
