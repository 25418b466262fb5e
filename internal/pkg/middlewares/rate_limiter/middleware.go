package rate_limiter

import (
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/pkg/middlewares/metrics"
	"foodhub/pkg/logger"
)

func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			respond.JSON(w, log, http.StatusTooManyRequests, dto.Error{
				Error:   "too_many_requests",
				Message: "rate limit exceeded, try again later",
			})
		})
	}
}
