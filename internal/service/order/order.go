package order

import (
	"context"
	"errors"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/pkg/guard"
)

// Service конечный автомат жизненного цикла заказа.
type Service struct {
	orders        OrderRepository
	deliveries    DeliveryRepository
	notifier      Notifier
	effectFactory EffectFactory
	txManager     TxManager
}

func New(
	orders OrderRepository,
	deliveries DeliveryRepository,
	notifier Notifier,
	effectFactory EffectFactory,
	txManager TxManager,
) *Service {
	return &Service{
		orders:        orders,
		deliveries:    deliveries,
		notifier:      notifier,
		effectFactory: effectFactory,
		txManager:     txManager,
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	return s.orders.GetByID(ctx, orderID)
}

// Transition переводит заказ в requested от имени actor.
//
// Текущий статус читается внутри транзакции, проверяется по таблице переходов,
// затем пишется условным UPDATE по этому статусу. Если между чтением и записью
// заказ изменили, возвращается ErrConflict и ничего не применяется.
func (s *Service) Transition(
	ctx context.Context,
	orderID int64,
	actor entities.Actor,
	requested entities.OrderStatusType,
) (*entities.Order, error) {
	updated, err := s.transition(ctx, orderID, actor, requested)
	transitionsTotal.WithLabelValues(actor.Role.String(), requested.String(), ResultLabel(err)).Inc()
	return updated, err
}

// Cancel отмена заказа клиентом.
func (s *Service) Cancel(ctx context.Context, orderID, customerID int64) (*entities.Order, error) {
	return s.Transition(ctx, orderID, entities.Actor{Role: entities.ActorCustomer, ID: customerID}, entities.OrderCancelled)
}

func (s *Service) transition(
	ctx context.Context,
	orderID int64,
	actor entities.Actor,
	requested entities.OrderStatusType,
) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if err := checkRequestable(actor, requested); err != nil {
		return nil, err
	}

	var (
		updated *entities.Order
		events  []entities.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := checkParticipant(actor, current); err != nil {
			return err
		}
		if err := checkTransition(actor.Role, current.Status, requested); err != nil {
			return err
		}

		updated, err = s.orders.UpdateStatus(ctx, orderID, current.Status, requested)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		events, err = s.applyEffect(ctx, updated)
		if err != nil {
			return err
		}
		events = append(events, StatusUpdatedEvent(updated, ""))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PublishAll(ctx, events)
	return updated, nil
}

func (s *Service) applyEffect(ctx context.Context, order *entities.Order) ([]entities.Event, error) {
	effect, err := s.effectFactory.GetEffect(order.Status)
	if err != nil {
		// у статуса нет побочных действий
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, nil
		}
		return nil, err
	}

	events, err := effect(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("apply %s effect: %w", order.Status, err)
	}
	return events, nil
}

// PlaceOrder заводит оплаченный заказ. Повторная доставка одного и того же платежа
// возвращает уже созданный заказ и ничего не публикует.
func (s *Service) PlaceOrder(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error) {
	if err := validatePlacement(placement); err != nil {
		return nil, err
	}

	probe := func(ctx context.Context) (*entities.Order, bool, error) {
		existing, err := s.orders.GetByPaymentID(ctx, placement.PaymentID)
		if errors.Is(err, ErrOrderNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	insert := func(ctx context.Context) (*entities.Order, error) {
		var placed *entities.Order
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err := s.orders.Create(ctx, placement)
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}

			_, err = s.deliveries.Create(ctx, entities.Delivery{
				OrderID:        created.ID,
				RestaurantID:   created.RestaurantID,
				DropOff:        placement.DropOff,
				DropOffAddress: placement.DropOffAddress,
				Status:         entities.DeliveryAwaitingRestaurant,
			})
			if err != nil {
				return fmt.Errorf("create delivery: %w", err)
			}

			err = s.notifier.Record(ctx, []entities.NotificationDraft{{
				RecipientID:   created.RestaurantID,
				RecipientKind: entities.RecipientRestaurant,
				OrderID:       created.ID,
				Category:      entities.NotificationNewOrder,
				Message:       fmt.Sprintf("New order #%d is waiting for acceptance", created.ID),
			}})
			if err != nil {
				return fmt.Errorf("record notification: %w", err)
			}

			placed = created
			return nil
		})
		return placed, err
	}

	placed, created, err := guard.EnsureOnce(ctx, probe, insert)
	if err != nil {
		ordersPlacedTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if !created {
		ordersPlacedTotal.WithLabelValues("replayed").Inc()
		return placed, nil
	}
	ordersPlacedTotal.WithLabelValues("created").Inc()

	restaurantTopic := entities.RestaurantTopic(placed.RestaurantID)
	s.notifier.PublishAll(ctx, []entities.Event{
		{Topic: restaurantTopic, Name: entities.EventNewOrder, Payload: entities.NewOrderEventPayload(*placed)},
		StatusUpdatedEvent(placed, ""),
	})
	return placed, nil
}

// StatusUpdatedEvent событие, которое получает комната ресторана после любого перехода.
func StatusUpdatedEvent(order *entities.Order, message string) entities.Event {
	payload := entities.NewOrderEventPayload(*order)
	payload.Message = message
	return entities.Event{
		Topic:   entities.RestaurantTopic(order.RestaurantID),
		Name:    entities.EventOrderStatusUpdated,
		Payload: payload,
	}
}
