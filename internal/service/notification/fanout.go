package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodhub/internal/entities"
	"foodhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	publishTimeout = 2 * time.Second

	DefaultListLimit = 50
	MaxListLimit     = 200
)

var publishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fanout_publish_total",
		Help: "Realtime events handed to the bus by event name and result",
	},
	[]string{"event", "result"},
)

// Fanout хранит уведомления и рассылает события по комнатам.
//
// Record пишет в текущую транзакцию и откатывается вместе с ней.
// Publish/PublishAll вызываются после коммита, ошибки доставки только логируются.
type Fanout struct {
	log        handlerLogger
	repository Repository
	bus        Bus
	now        func() time.Time
}

func New(log handlerLogger, repository Repository, bus Bus) *Fanout {
	return &Fanout{
		log:        log.With(logger.NewField("component", "fanout")),
		repository: repository,
		bus:        bus,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (f *Fanout) Record(ctx context.Context, drafts []entities.NotificationDraft) error {
	if len(drafts) == 0 {
		return nil
	}
	for _, d := range drafts {
		if err := validateDraft(d); err != nil {
			return err
		}
	}

	if _, err := f.repository.CreateBatch(ctx, drafts); err != nil {
		return fmt.Errorf("store notifications: %w", err)
	}
	return nil
}

// Publish fire-and-forget: вызывающий никогда не получает ошибку доставки.
func (f *Fanout) Publish(ctx context.Context, event entities.Event) {
	message, err := json.Marshal(entities.Envelope{
		ID:      uuid.NewString(),
		Topic:   event.Topic,
		Event:   event.Name,
		Payload: event.Payload,
		SentAt:  f.now(),
	})
	if err != nil {
		publishTotal.WithLabelValues(event.Name.String(), "encode_error").Inc()
		f.log.Error("encode realtime event", logger.NewField("event", event.Name.String()), logger.ErrorField(err))
		return
	}

	// публикация не должна зависеть от отмены запроса, который ее породил
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := f.bus.Publish(publishCtx, event.Topic, message); err != nil {
		publishTotal.WithLabelValues(event.Name.String(), "error").Inc()
		f.log.Warn("publish realtime event",
			logger.NewField("event", event.Name.String()),
			logger.NewField("topic", event.Topic.String()),
			logger.NewField("order_id", event.Payload.OrderID),
			logger.ErrorField(err),
		)
		return
	}
	publishTotal.WithLabelValues(event.Name.String(), "ok").Inc()
}

func (f *Fanout) PublishAll(ctx context.Context, events []entities.Event) {
	for _, e := range events {
		f.Publish(ctx, e)
	}
}

// List последние уведомления получателя, новые первыми.
func (f *Fanout) List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error) {
	if !filter.RecipientKind.Valid() || filter.RecipientID <= 0 {
		return nil, ErrInvalidRecipient
	}
	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	notifications, err := f.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func validateDraft(d entities.NotificationDraft) error {
	switch {
	case !d.RecipientKind.Valid() || d.RecipientID <= 0:
		return fmt.Errorf("%w: %s:%d", ErrInvalidRecipient, d.RecipientKind, d.RecipientID)
	case d.OrderID <= 0:
		return fmt.Errorf("%w: order id is required", ErrInvalidNotification)
	case strings.TrimSpace(d.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidNotification)
	}
	return nil
}
