// Package redisbus пересылает события комнат между экземплярами сервиса через Redis pub/sub.
//
// Любой процесс (HTTP-сервис или kafka-воркер) публикует событие в общий канал,
// а каждый HTTP-экземпляр в Run раздает его своим локальным подписчикам.
package redisbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var ErrSubscriptionClosed = errors.New("redis subscription closed")

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// LocalPublisher локальная доставка, обычно *hub.Hub.
type LocalPublisher interface {
	Publish(ctx context.Context, topic entities.Topic, message []byte) error
}

type frame struct {
	Topic   entities.Topic  `json:"topic"`
	Message json.RawMessage `json:"message"`
}

type Bus struct {
	log     handlerLogger
	client  *redis.Client
	channel string
}

func New(log handlerLogger, client *redis.Client, channel string) *Bus {
	return &Bus{
		log:     log.With(logger.NewField("channel", channel)),
		client:  client,
		channel: channel,
	}
}

// Publish message должен быть валидным JSON.
func (b *Bus) Publish(ctx context.Context, topic entities.Topic, message []byte) error {
	data, err := encodeFrame(topic, message)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run подписывается на канал и пересылает кадры в local до отмены ctx.
func (b *Bus) Run(ctx context.Context, local LocalPublisher) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			b.log.Warn("close redis subscription", logger.ErrorField(err))
		}
	}()

	// дожидаемся подтверждения подписки, иначе первые события могут потеряться
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	b.log.Info("relaying realtime events from redis")

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return ErrSubscriptionClosed
			}
			topic, message, err := decodeFrame([]byte(msg.Payload))
			if err != nil {
				b.log.Warn("skip malformed relay frame", logger.ErrorField(err))
				continue
			}
			if err := local.Publish(ctx, topic, message); err != nil {
				b.log.Warn("local publish failed",
					logger.NewField("topic", topic.String()),
					logger.ErrorField(err),
				)
			}
		}
	}
}

func encodeFrame(topic entities.Topic, message []byte) ([]byte, error) {
	data, err := json.Marshal(frame{Topic: topic, Message: message})
	if err != nil {
		return nil, fmt.Errorf("encode relay frame: %w", err)
	}
	return data, nil
}

func decodeFrame(data []byte) (entities.Topic, []byte, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("decode relay frame: %w", err)
	}
	if f.Topic == "" || len(f.Message) == 0 {
		return "", nil, fmt.Errorf("decode relay frame: empty topic or message")
	}
	return f.Topic, f.Message, nil
}
