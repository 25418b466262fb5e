package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodhub/internal/entities"
	"foodhub/internal/service/order"
)

// Service назначение курьеров на готовые заказы.
type Service struct {
	orders       OrderRepository
	riders       RiderRepository
	deliveries   DeliveryRepository
	transitioner Transitioner
	notifier     Notifier
	timeFactory  DeliveryTimeFactory
	txManager    TxManager
	now          func() time.Time
}

func New(
	orders OrderRepository,
	riders RiderRepository,
	deliveries DeliveryRepository,
	transitioner Transitioner,
	notifier Notifier,
	timeFactory DeliveryTimeFactory,
	txManager TxManager,
) *Service {
	return &Service{
		orders:       orders,
		riders:       riders,
		deliveries:   deliveries,
		transitioner: transitioner,
		notifier:     notifier,
		timeFactory:  timeFactory,
		txManager:    txManager,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// AcceptOrder закрепляет готовый заказ за курьером.
//
// Назначение делается одним условным UPDATE (rider_id, status) WHERE status = ready_for_pickup,
// поэтому из нескольких одновременных попыток проходит ровно одна, остальные получают
// ErrAlreadyAssigned и ничего не перезаписывают.
func (s *Service) AcceptOrder(ctx context.Context, orderID, riderID int64) (*entities.Order, error) {
	accepted, err := s.acceptOrder(ctx, orderID, riderID)
	acceptTotal.WithLabelValues(order.ResultLabel(err)).Inc()
	return accepted, err
}

func (s *Service) acceptOrder(ctx context.Context, orderID, riderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, order.ErrInvalidOrderID
	}
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	var (
		accepted *entities.Order
		events   []entities.Event
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		r, err := s.riders.GetByID(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}

		accepted, err = s.orders.AssignRider(ctx, orderID, riderID)
		if errors.Is(err, order.ErrConflict) {
			return s.explainLostAssignment(ctx, orderID)
		}
		if err != nil {
			return fmt.Errorf("assign rider: %w", err)
		}

		ok, err := s.riders.UpdateStatusIf(ctx, riderID, entities.RiderAvailable, entities.RiderBusy)
		if err != nil {
			return fmt.Errorf("mark rider busy: %w", err)
		}
		if !ok {
			return ErrRiderUnavailable
		}

		startedAt := s.now()
		expectedBy := s.timeFactory.CalculateDeadline(r.TransportType, startedAt)
		pending := entities.DeliveryPending
		inTransit := entities.DeliveryInTransit
		_, err = s.deliveries.Update(ctx, entities.DeliveryModify{
			OrderID:    &orderID,
			FromStatus: &pending,
			Status:     &inTransit,
			StartedAt:  &startedAt,
			ExpectedBy: &expectedBy,
		})
		if err != nil {
			return fmt.Errorf("start delivery: %w", err)
		}

		err = s.notifier.Record(ctx, acceptedDrafts(accepted, r))
		if err != nil {
			return fmt.Errorf("record notifications: %w", err)
		}

		events = acceptedEvents(accepted, r, expectedBy)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PublishAll(ctx, events)
	return accepted, nil
}

// explainLostAssignment условная запись не нашла строку: заказа нет, его уже забрали
// или он не в статусе ready_for_pickup.
func (s *Service) explainLostAssignment(ctx context.Context, orderID int64) error {
	current, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if current.RiderID != nil {
		return ErrAlreadyAssigned
	}
	return fmt.Errorf("%w: order is %s", order.ErrConflict, current.Status)
}

// DeliverOrder курьер отмечает заказ доставленным.
func (s *Service) DeliverOrder(ctx context.Context, orderID, riderID int64) (*entities.Order, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	return s.transitioner.Transition(
		ctx,
		orderID,
		entities.Actor{Role: entities.ActorRider, ID: riderID},
		entities.OrderDelivered,
	)
}

// RebroadcastReadyOrders повторно объявляет свободным курьерам заказы,
// которые ждут дольше olderThan. Ничего не пишет.
func (s *Service) RebroadcastReadyOrders(ctx context.Context, olderThan time.Duration, limit uint64) (int, error) {
	ready, err := s.orders.ListReadyForPickup(ctx, s.now().Add(-olderThan), limit)
	if err != nil {
		return 0, fmt.Errorf("list ready orders: %w", err)
	}
	if len(ready) == 0 {
		return 0, nil
	}

	events := make([]entities.Event, 0, len(ready))
	for i := range ready {
		payload := entities.NewOrderEventPayload(ready[i])
		payload.Message = fmt.Sprintf("Order #%d is still waiting for a rider", ready[i].ID)

		d, err := s.deliveries.GetByOrderID(ctx, ready[i].ID)
		switch {
		case err == nil:
			payload.DeliveryFee = d.Fee
		case errors.Is(err, order.ErrDeliveryNotFound):
		default:
			return 0, fmt.Errorf("get delivery for order %d: %w", ready[i].ID, err)
		}

		events = append(events, entities.Event{
			Topic:   entities.RidersAvailableTopic,
			Name:    entities.EventOrderReady,
			Payload: payload,
		})
	}

	s.notifier.PublishAll(ctx, events)
	rebroadcastTotal.Add(float64(len(events)))
	return len(events), nil
}

func acceptedDrafts(o *entities.Order, r *entities.Rider) []entities.NotificationDraft {
	return []entities.NotificationDraft{
		{
			RecipientID:   o.RestaurantID,
			RecipientKind: entities.RecipientRestaurant,
			OrderID:       o.ID,
			Category:      entities.NotificationOrderAccepted,
			Message:       fmt.Sprintf("Rider %s is picking up order #%d", r.Name, o.ID),
		},
		{
			RecipientID:   o.CustomerID,
			RecipientKind: entities.RecipientCustomer,
			OrderID:       o.ID,
			Category:      entities.NotificationOrderAccepted,
			Message:       fmt.Sprintf("Rider %s is on the way with order #%d", r.Name, o.ID),
		},
	}
}

func acceptedEvents(o *entities.Order, r *entities.Rider, expectedBy time.Time) []entities.Event {
	payload := entities.NewOrderEventPayload(*o)
	payload.ExpectedBy = &expectedBy
	payload.Message = fmt.Sprintf("Accepted by rider %s", r.Name)

	return []entities.Event{
		{Topic: entities.RestaurantTopic(o.RestaurantID), Name: entities.EventOrderAccepted, Payload: payload},
		{Topic: entities.CustomerTopic(o.CustomerID), Name: entities.EventOrderAccepted, Payload: payload},
		{Topic: entities.RiderTopic(r.ID), Name: entities.EventOrderAccepted, Payload: payload},
		order.StatusUpdatedEvent(o, payload.Message),
		{Topic: entities.RidersAvailableTopic, Name: entities.EventOrderTaken, Payload: entities.NewOrderEventPayload(*o)},
	}
}
