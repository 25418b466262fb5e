package app

import (
	"foodhub/internal/handlers/rest/chat_session_post"
	"foodhub/internal/handlers/rest/notifications_get"
	"foodhub/internal/handlers/rest/order_accept_post"
	"foodhub/internal/handlers/rest/order_cancel_post"
	"foodhub/internal/handlers/rest/order_deliver_post"
	"foodhub/internal/handlers/rest/order_get"
	"foodhub/internal/handlers/rest/order_status_patch"
	"foodhub/internal/handlers/rest/rider_availability_put"
	"foodhub/internal/handlers/rest/rider_get"
	"foodhub/internal/pkg/hub"
	"foodhub/internal/pkg/redisbus"
	orderService "foodhub/internal/service/order"
	"foodhub/pkg/background"
)

// Application зависимости HTTP сервиса (cmd/service).
type Application struct {
	ServiceOrder        ServiceOrder
	ServiceDispatch     ServiceDispatch
	ServiceRider        ServiceRider
	ServiceChat         ServiceChat
	ServiceNotification ServiceNotification

	Hub               *hub.Hub
	Relay             *redisbus.Bus
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_status_patch.Service
	order_cancel_post.Service
	order_get.Service
}

type ServiceDispatch interface {
	order_accept_post.Service
	order_deliver_post.Service
}

type ServiceRider interface {
	rider_get.Service
	rider_availability_put.Service
}

type ServiceChat interface {
	chat_session_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
}

// KafkaWorkerApp зависимости воркера payment.confirmed.
type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
