package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodhub/internal/entities"
	orderservice "foodhub/internal/service/order"
	"foodhub/pkg/logger"
	"foodhub/pkg/retrier"

	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	retrier                  retrier.Retrier
	messageProcessingTimeout time.Duration
}

// New timeout ограничивает одну попытку PlaceOrder, повторы делает r.
// r стоит собирать из WithRetryPolicy, иначе отказы по валидации тоже будут повторяться.
func New(log handlerLogger, orderService Service, timeout time.Duration, r retrier.Retrier) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_confirmed"))

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		retrier:                  r,
		messageProcessingTimeout: timeout,
	}
}

// WithRetryPolicy повторяет только временные ошибки: отклоненный платеж повтор не исправит.
func WithRetryPolicy(cfg retrier.Config) retrier.Config {
	cfg.ShouldRetry = func(err error) bool {
		return !isRejected(err) && !errors.Is(err, context.Canceled)
	}
	return cfg
}

func isRejected(err error) bool {
	return errors.Is(err, orderservice.ErrInvalidPlacement) ||
		errors.Is(err, orderservice.ErrRestaurantNotFound)
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true означает, что ConsumeClaim пора выходить, а сообщение
// остается незакоммиченным и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event paymentConfirmedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.Error("bad payment.confirmed message",
			logger.NewField("offset", message.Offset),
			logger.ErrorField(err),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("payment_id", event.PaymentID),
		logger.NewField("offset", message.Offset),
	)

	placed, err := h.placeOrder(sess.Context(), msgLog, event.toPlacement())
	if err != nil {
		switch {
		case sess.Context().Err() != nil, errors.Is(err, context.Canceled):
			msgLog.Warn("processing interrupted, message will be reprocessed", logger.ErrorField(err))
			return true

		case isRejected(err):
			msgLog.Warn("payment.confirmed rejected", logger.ErrorField(err))
			sess.MarkMessage(message, "")
			return false

		default:
			// оплата уже прошла: без коммита сообщение прочитается снова после ребаланса,
			// повторная обработка безопасна благодаря payment_id UNIQUE
			msgLog.Error("place order failed after retries, message left uncommitted", logger.ErrorField(err))
			return true
		}
	}

	msgLog.Info("order placed",
		logger.NewField("order_id", placed.ID),
		logger.NewField("restaurant_id", placed.RestaurantID),
	)
	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) placeOrder(ctx context.Context, log logger.Logger, placement entities.OrderPlacement) (*entities.Order, error) {
	var (
		placed  *entities.Order
		attempt int
	)
	err := h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
		defer cancel()

		order, err := h.orderService.PlaceOrder(attemptCtx, placement)
		if err != nil {
			if !isRejected(err) {
				log.Warn("place order attempt failed", logger.NewField("attempt", attempt), logger.ErrorField(err))
			}
			return err
		}
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}
