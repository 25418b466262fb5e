package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	acceptTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_accept_total",
			Help: "Rider accept attempts by result",
		},
		[]string{"result"},
	)

	rebroadcastTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_ready_rebroadcast_total",
			Help: "Ready orders announced again to available riders",
		},
	)
)
