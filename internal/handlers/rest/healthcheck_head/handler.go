package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Pinger зависимость, без которой сервис не может обслуживать запросы.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	isShuttingDown *atomic.Bool
	deps           []Pinger
}

func New(isShuttingDown *atomic.Bool, deps ...Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		deps:           deps,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
