package ready_orders_rebroadcast

import (
	"context"
	"time"

	"foodhub/internal/pkg/config"
)

type Service interface {
	RebroadcastReadyOrders(ctx context.Context, olderThan time.Duration, limit uint64) (int, error)
}

// ReadyOrdersRebroadcast периодически напоминает свободным курьерам о заказах без курьера.
type ReadyOrdersRebroadcast struct {
	service  Service
	interval time.Duration
	age      time.Duration
	limit    uint64
}

func New(service Service, cfg *config.Tasks) *ReadyOrdersRebroadcast {
	var limit uint64
	if cfg.ReadyOrdersRebroadcastLimit > 0 {
		limit = uint64(cfg.ReadyOrdersRebroadcastLimit)
	}
	return &ReadyOrdersRebroadcast{
		service:  service,
		interval: cfg.ReadyOrdersRebroadcastInterval,
		age:      cfg.ReadyOrdersRebroadcastAge,
		limit:    limit,
	}
}

func (r *ReadyOrdersRebroadcast) TTL() time.Duration {
	return r.interval
}

func (r *ReadyOrdersRebroadcast) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	_, err := r.service.RebroadcastReadyOrders(ctxWithTimeout, r.age, r.limit)
	return err
}

func (r *ReadyOrdersRebroadcast) Info() string {
	return "ready orders rebroadcast"
}
