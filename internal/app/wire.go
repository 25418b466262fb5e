//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"foodhub/internal/handlers/tasks/ready_orders_rebroadcast"
	"foodhub/internal/pkg/config"
	"foodhub/internal/pkg/factory/delivery_deadline"
	"foodhub/internal/pkg/factory/delivery_fee"
	"foodhub/internal/pkg/factory/order_handle"
	"foodhub/internal/pkg/redisbus"
	chatRepo "foodhub/internal/repository/chat"
	deliveryRepo "foodhub/internal/repository/delivery"
	notificationRepo "foodhub/internal/repository/notification"
	orderRepo "foodhub/internal/repository/order"
	riderRepo "foodhub/internal/repository/rider"
	chatService "foodhub/internal/service/chat"
	dispatchService "foodhub/internal/service/dispatch"
	notificationService "foodhub/internal/service/notification"
	orderService "foodhub/internal/service/order"
	riderService "foodhub/internal/service/rider"
	"foodhub/pkg/logger"
	"foodhub/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// coreSet репозитории и сервисы, общие для HTTP сервиса и kafka воркера.
var coreSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideDeliveryRepository,
	provideRiderRepository,
	provideNotificationRepository,

	provideRelay,
	provideFanout,
	provideFeeCalculator,
	provideStatusEffectFactory,
	provideOrderService,

	wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
	wire.Bind(new(notificationService.Bus), new(*redisbus.Bus)),

	wire.Bind(new(order_handle.DeliveryRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(order_handle.RiderRepository), new(*riderRepo.Repository)),
	wire.Bind(new(order_handle.FeeCalculator), new(*delivery_fee.Calculator)),
	wire.Bind(new(order_handle.NotificationRecorder), new(*notificationService.Fanout)),

	wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.DeliveryRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(orderService.Notifier), new(*notificationService.Fanout)),
	wire.Bind(new(orderService.EffectFactory), new(*order_handle.StatusEffectFactory)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		coreSet,

		provideChatRepository,
		provideHub,
		provideDeliveryTimeFactory,
		provideDispatchService,
		provideRiderService,
		provideChatService,

		provideReadyOrdersRebroadcastTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Service)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceChat), new(*chatService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Fanout)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(dispatchService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(dispatchService.Transitioner), new(*orderService.Service)),
		wire.Bind(new(dispatchService.Notifier), new(*notificationService.Fanout)),
		wire.Bind(new(dispatchService.DeliveryTimeFactory), new(*delivery_deadline.DeliveryTimeFactory)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(chatService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(chatService.Repository), new(*chatRepo.Repository)),

		wire.Bind(new(ready_orders_rebroadcast.Service), new(*dispatchService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		coreSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
