package order

import (
	"fmt"
	"slices"

	"foodhub/internal/entities"
)

type transitionKey struct {
	from  entities.OrderStatusType
	to    entities.OrderStatusType
	actor entities.ActorRole
}

// allowedTransitions полный список допустимых переходов. Все, чего здесь нет, запрещено.
// Начальный статус pending_restaurant_acceptance выставляет только PlaceOrder.
var allowedTransitions = map[transitionKey]struct{}{
	{entities.OrderPendingRestaurantAcceptance, entities.OrderPreparing, entities.ActorRestaurant}:          {},
	{entities.OrderPendingRestaurantAcceptance, entities.OrderRestaurantRejected, entities.ActorRestaurant}: {},
	{entities.OrderPreparing, entities.OrderRestaurantRejected, entities.ActorRestaurant}:                   {},
	{entities.OrderPreparing, entities.OrderReadyForPickup, entities.ActorRestaurant}:                       {},
	{entities.OrderPendingRestaurantAcceptance, entities.OrderCancelled, entities.ActorCustomer}:            {},
	{entities.OrderReadyForPickup, entities.OrderOutForDelivery, entities.ActorRider}:                       {},
	{entities.OrderOutForDelivery, entities.OrderDelivered, entities.ActorRider}:                            {},
}

// requestable статусы, которые роль может запросить через Transition.
// Принятие заказа курьером идет отдельной операцией диспетчеризации.
var requestable = map[entities.ActorRole][]entities.OrderStatusType{
	entities.ActorRestaurant: {entities.OrderPreparing, entities.OrderReadyForPickup, entities.OrderRestaurantRejected},
	entities.ActorCustomer:   {entities.OrderCancelled},
	entities.ActorRider:      {entities.OrderDelivered},
}

func CanTransition(from, to entities.OrderStatusType, actor entities.ActorRole) bool {
	_, ok := allowedTransitions[transitionKey{from: from, to: to, actor: actor}]
	return ok
}

func checkRequestable(actor entities.Actor, to entities.OrderStatusType) error {
	if slices.Contains(requestable[actor.Role], to) {
		return nil
	}
	message := fmt.Sprintf("%s may not request status %q", actor.Role, to)
	if actor.Role == entities.ActorRider && to == entities.OrderOutForDelivery {
		message = "riders take orders through accept"
	}
	return &TransitionError{Actor: actor.Role, To: to, Message: message}
}

func checkTransition(actor entities.ActorRole, from, to entities.OrderStatusType) error {
	if CanTransition(from, to, actor) {
		return nil
	}
	return &TransitionError{
		Actor:   actor,
		From:    from,
		To:      to,
		Message: rejectionMessage(actor, from, to),
	}
}

func rejectionMessage(actor entities.ActorRole, from, to entities.OrderStatusType) string {
	switch {
	case from.IsTerminal():
		return fmt.Sprintf("order is already %s", from)
	case from == to:
		return fmt.Sprintf("order is already %s", from)
	case actor == entities.ActorCustomer && to == entities.OrderCancelled:
		if from.RequiresRider() {
			return "order is already on its way and can no longer be cancelled"
		}
		return "restaurant has already accepted the order, it can no longer be cancelled"
	case actor == entities.ActorRestaurant && from.RequiresRider():
		return "order has been picked up by a rider"
	case actor == entities.ActorRider && to == entities.OrderDelivered:
		return "order is not out for delivery"
	default:
		return fmt.Sprintf("cannot move order from %s to %s", from, to)
	}
}

// checkParticipant заказ чужого ресторана или клиента для них не существует,
// а курьер может закрыть только назначенный на него заказ.
func checkParticipant(actor entities.Actor, order *entities.Order) error {
	switch actor.Role {
	case entities.ActorRestaurant:
		if order.RestaurantID != actor.ID {
			return ErrOrderNotFound
		}
	case entities.ActorCustomer:
		if order.CustomerID != actor.ID {
			return ErrOrderNotFound
		}
	case entities.ActorRider:
		if order.RiderID != nil && *order.RiderID != actor.ID {
			return &TransitionError{
				Actor:   actor.Role,
				From:    order.Status,
				To:      entities.OrderDelivered,
				Message: "order is assigned to another rider",
			}
		}
	}
	return nil
}
