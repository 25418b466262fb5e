package rider

import (
	"context"
	"fmt"

	"foodhub/internal/entities"
)

type Rider struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Rider {
	return &Rider{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if !isValidRiderID(id) {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return rider, nil
}

// SetAvailability переключает курьера между available и paused.
// Курьер на доставке освобождается только закрытием заказа.
func (s *Rider) SetAvailability(ctx context.Context, id int64, status entities.RiderStatusType) (*entities.Rider, error) {
	if !isValidRiderID(id) {
		return nil, ErrInvalidRiderID
	}
	if !isSelectableAvailability(status) {
		return nil, ErrInvalidAvailability
	}

	var result *entities.Rider
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rider, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}
		if rider.Status == entities.RiderBusy {
			return ErrRiderBusy
		}
		if rider.Status == status {
			result = rider
			return nil
		}

		updated, err := s.repository.UpdateStatusIf(ctx, id, rider.Status, status)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}
		if !updated {
			return ErrConflict
		}

		rider.Status = status
		result = rider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
