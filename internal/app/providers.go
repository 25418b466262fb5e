package app

import (
	"context"

	"foodhub/internal/handlers/tasks/ready_orders_rebroadcast"
	"foodhub/internal/pkg/config"
	"foodhub/internal/pkg/factory/delivery_deadline"
	"foodhub/internal/pkg/factory/delivery_fee"
	"foodhub/internal/pkg/factory/order_handle"
	"foodhub/internal/pkg/hub"
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
	"foodhub/pkg/background"
	"foodhub/pkg/logger"
	"foodhub/pkg/querier"
	"foodhub/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideHub(log logger.Logger, cfg *config.Config) *hub.Hub {
	return hub.New(log.With(logger.NewField("component", "hub")), cfg.Realtime.SubscriberBuffer)
}

// provideRelay события уходят в redis, чтобы их получили подписчики всех экземпляров.
func provideRelay(log logger.Logger, client *redis.Client, cfg *config.Config) *redisbus.Bus {
	return redisbus.New(log.With(logger.NewField("component", "redisbus")), client, cfg.Redis.EventsChannel)
}

func provideFanout(
	log logger.Logger,
	repository notificationService.Repository,
	bus notificationService.Bus,
) *notificationService.Fanout {
	return notificationService.New(log, repository, bus)
}

func provideFeeCalculator(cfg *config.Config) *delivery_fee.Calculator {
	return delivery_fee.New(cfg.Fee.Base, cfg.Fee.PerKm)
}

func provideStatusEffectFactory(
	deliveries order_handle.DeliveryRepository,
	riders order_handle.RiderRepository,
	fees order_handle.FeeCalculator,
	recorder order_handle.NotificationRecorder,
) *order_handle.StatusEffectFactory {
	return order_handle.NewStatusEffectFactory(deliveries, riders, fees, recorder)
}

func provideOrderService(
	orders orderService.OrderRepository,
	deliveries orderService.DeliveryRepository,
	notifier orderService.Notifier,
	effectFactory orderService.EffectFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(orders, deliveries, notifier, effectFactory, txManager)
}

func provideDispatchService(
	orders dispatchService.OrderRepository,
	riders dispatchService.RiderRepository,
	deliveries dispatchService.DeliveryRepository,
	transitioner dispatchService.Transitioner,
	notifier dispatchService.Notifier,
	timeFactory dispatchService.DeliveryTimeFactory,
	txManager dispatchService.TxManager,
) *dispatchService.Service {
	return dispatchService.New(orders, riders, deliveries, transitioner, notifier, timeFactory, txManager)
}

func provideRiderService(
	repository riderService.Repository,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, txManager)
}

func provideChatService(
	orders chatService.OrderRepository,
	sessions chatService.Repository,
) *chatService.Service {
	return chatService.New(orders, sessions)
}

func provideDeliveryTimeFactory() *delivery_deadline.DeliveryTimeFactory {
	return delivery_deadline.New()
}

func provideReadyOrdersRebroadcastTask(
	service ready_orders_rebroadcast.Service,
	cfg *config.Config,
) *ready_orders_rebroadcast.ReadyOrdersRebroadcast {
	return ready_orders_rebroadcast.New(service, &cfg.Tasks)
}

func provideTaskList(
	rebroadcastTask *ready_orders_rebroadcast.ReadyOrdersRebroadcast,
) []background.Task {
	return []background.Task{
		rebroadcastTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log.With(logger.NewField("component", "background")), tasks)
}
