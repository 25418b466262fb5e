package order_handle

import (
	"context"
	"fmt"
	"time"

	"foodhub/internal/entities"
	"foodhub/internal/service/order"
)

// StatusEffectFactory побочные действия, которые сопровождают вход заказа в статус.
// Все они выполняются внутри транзакции перехода.
type StatusEffectFactory struct {
	deliveries DeliveryRepository
	riders     RiderRepository
	fees       FeeCalculator
	recorder   NotificationRecorder
	now        func() time.Time
}

func NewStatusEffectFactory(
	deliveries DeliveryRepository,
	riders RiderRepository,
	fees FeeCalculator,
	recorder NotificationRecorder,
) *StatusEffectFactory {
	return &StatusEffectFactory{
		deliveries: deliveries,
		riders:     riders,
		fees:       fees,
		recorder:   recorder,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (f *StatusEffectFactory) GetEffect(status entities.OrderStatusType) (order.EffectFn, error) {
	switch status {
	case entities.OrderPreparing:
		return f.preparingEffect, nil
	case entities.OrderReadyForPickup:
		return f.readyForPickupEffect, nil
	case entities.OrderRestaurantRejected:
		return f.rejectedEffect, nil
	case entities.OrderCancelled:
		return f.cancelledEffect, nil
	case entities.OrderDelivered:
		return f.deliveredEffect, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusEffectFactory) preparingEffect(ctx context.Context, o *entities.Order) ([]entities.Event, error) {
	message := fmt.Sprintf("Restaurant accepted order #%d and started preparing it", o.ID)
	err := f.recorder.Record(ctx, []entities.NotificationDraft{
		customerDraft(o, entities.NotificationOrderStatus, message),
	})
	if err != nil {
		return nil, fmt.Errorf("record customer notification: %w", err)
	}
	return []entities.Event{customerEvent(o, message)}, nil
}

// readyForPickupEffect фиксирует стоимость доставки и оповещает всех свободных курьеров.
// Список курьеров читается в той же транзакции.
func (f *StatusEffectFactory) readyForPickupEffect(ctx context.Context, o *entities.Order) ([]entities.Event, error) {
	route, err := f.deliveries.GetRoute(ctx, o.ID)
	if err != nil {
		return nil, fmt.Errorf("get delivery route: %w", err)
	}
	fee := f.fees.CalculateFee(route.Restaurant, route.DropOff)

	pending := entities.DeliveryPending
	_, err = f.deliveries.Update(ctx, entities.DeliveryModify{
		OrderID: &o.ID,
		Status:  &pending,
		Fee:     &fee,
	})
	if err != nil {
		return nil, fmt.Errorf("mark delivery pending: %w", err)
	}

	riderIDs, err := f.riders.ListAvailableIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available riders: %w", err)
	}

	drafts := make([]entities.NotificationDraft, 0, len(riderIDs)+1)
	drafts = append(drafts, entities.NotificationDraft{
		RecipientID:   o.RestaurantID,
		RecipientKind: entities.RecipientRestaurant,
		OrderID:       o.ID,
		Category:      entities.NotificationOrderStatus,
		Message:       fmt.Sprintf("Order #%d is ready, looking for a rider", o.ID),
	})
	riderMessage := fmt.Sprintf("Order #%d is ready for pickup, delivery fee %.2f", o.ID, fee)
	for _, riderID := range riderIDs {
		drafts = append(drafts, entities.NotificationDraft{
			RecipientID:   riderID,
			RecipientKind: entities.RecipientRider,
			OrderID:       o.ID,
			Category:      entities.NotificationOrderReady,
			Message:       riderMessage,
		})
	}
	if err := f.recorder.Record(ctx, drafts); err != nil {
		return nil, fmt.Errorf("record ready notifications: %w", err)
	}

	payload := entities.NewOrderEventPayload(*o)
	payload.DeliveryFee = &fee
	payload.Message = riderMessage
	return []entities.Event{{
		Topic:   entities.RidersAvailableTopic,
		Name:    entities.EventOrderReady,
		Payload: payload,
	}}, nil
}

func (f *StatusEffectFactory) rejectedEffect(ctx context.Context, o *entities.Order) ([]entities.Event, error) {
	if err := f.cancelDelivery(ctx, o.ID); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Restaurant could not take order #%d", o.ID)
	err := f.recorder.Record(ctx, []entities.NotificationDraft{
		customerDraft(o, entities.NotificationOrderStatus, message),
	})
	if err != nil {
		return nil, fmt.Errorf("record customer notification: %w", err)
	}
	return []entities.Event{customerEvent(o, message)}, nil
}

func (f *StatusEffectFactory) cancelledEffect(ctx context.Context, o *entities.Order) ([]entities.Event, error) {
	if err := f.cancelDelivery(ctx, o.ID); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Customer cancelled order #%d", o.ID)
	err := f.recorder.Record(ctx, []entities.NotificationDraft{{
		RecipientID:   o.RestaurantID,
		RecipientKind: entities.RecipientRestaurant,
		OrderID:       o.ID,
		Category:      entities.NotificationOrderStatus,
		Message:       message,
	}})
	if err != nil {
		return nil, fmt.Errorf("record restaurant notification: %w", err)
	}
	// клиенту только живое подтверждение, без записи в уведомления
	return []entities.Event{customerEvent(o, message)}, nil
}

// deliveredEffect закрывает доставку и освобождает курьера.
func (f *StatusEffectFactory) deliveredEffect(ctx context.Context, o *entities.Order) ([]entities.Event, error) {
	endedAt := f.now()
	delivered := entities.DeliveryDelivered
	inTransit := entities.DeliveryInTransit
	_, err := f.deliveries.Update(ctx, entities.DeliveryModify{
		OrderID:    &o.ID,
		FromStatus: &inTransit,
		Status:     &delivered,
		EndedAt:    &endedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("close delivery: %w", err)
	}

	if o.RiderID != nil {
		// курьер мог уйти на паузу во время доставки, тогда статус не трогаем
		if _, err := f.riders.UpdateStatusIf(ctx, *o.RiderID, entities.RiderBusy, entities.RiderAvailable); err != nil {
			return nil, fmt.Errorf("release rider: %w", err)
		}
	}

	message := fmt.Sprintf("Order #%d has been delivered", o.ID)
	err = f.recorder.Record(ctx, []entities.NotificationDraft{
		customerDraft(o, entities.NotificationOrderDelivered, message),
		{
			RecipientID:   o.RestaurantID,
			RecipientKind: entities.RecipientRestaurant,
			OrderID:       o.ID,
			Category:      entities.NotificationOrderDelivered,
			Message:       message,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("record delivered notifications: %w", err)
	}

	events := []entities.Event{customerEvent(o, message)}
	if o.RiderID != nil {
		riderEvent := customerEvent(o, message)
		riderEvent.Topic = entities.RiderTopic(*o.RiderID)
		events = append(events, riderEvent)
	}
	return events, nil
}

func (f *StatusEffectFactory) cancelDelivery(ctx context.Context, orderID int64) error {
	cancelled := entities.DeliveryCancelled
	endedAt := f.now()
	_, err := f.deliveries.Update(ctx, entities.DeliveryModify{
		OrderID: &orderID,
		Status:  &cancelled,
		EndedAt: &endedAt,
	})
	if err != nil {
		return fmt.Errorf("cancel delivery: %w", err)
	}
	return nil
}

func customerDraft(o *entities.Order, category entities.NotificationCategory, message string) entities.NotificationDraft {
	return entities.NotificationDraft{
		RecipientID:   o.CustomerID,
		RecipientKind: entities.RecipientCustomer,
		OrderID:       o.ID,
		Category:      category,
		Message:       message,
	}
}

func customerEvent(o *entities.Order, message string) entities.Event {
	payload := entities.NewOrderEventPayload(*o)
	payload.Message = message
	return entities.Event{
		Topic:   entities.CustomerTopic(o.CustomerID),
		Name:    entities.EventOrderStatusUpdated,
		Payload: payload,
	}
}
