package order

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Order status transitions by actor, target status and result",
		},
		[]string{"actor", "to", "result"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Paid orders handed to the lifecycle, split by new and replayed payments",
		},
		[]string{"result"},
	)
)

// ResultLabel общая разметка результата операции для метрик.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}
