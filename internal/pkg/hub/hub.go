// Package hub комнаты подписчиков внутри одного процесса.
//
// Доставка неблокирующая: если буфер подписчика переполнен, сообщение для него
// отбрасывается, чтобы медленный клиент не тормозил остальных.
package hub

import (
	"context"
	"errors"
	"sync"

	"foodhub/internal/entities"
	"foodhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ErrUnknownSubscriber = errors.New("unknown subscriber")

var (
	subscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hub_subscribers",
		Help: "Currently registered realtime subscribers",
	})
	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hub_dropped_messages_total",
		Help: "Messages dropped because a subscriber buffer was full",
	})
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Subscriber struct {
	id       string
	messages chan []byte
	topics   map[entities.Topic]struct{}
}

func (s *Subscriber) ID() string {
	return s.id
}

// Messages закрывается при Unregister.
func (s *Subscriber) Messages() <-chan []byte {
	return s.messages
}

type Hub struct {
	log    handlerLogger
	buffer int

	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	rooms       map[entities.Topic]map[string]*Subscriber
}

func New(log handlerLogger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		log:         log,
		buffer:      buffer,
		subscribers: make(map[string]*Subscriber),
		rooms:       make(map[entities.Topic]map[string]*Subscriber),
	}
}

func (h *Hub) Register() *Subscriber {
	sub := &Subscriber{
		id:       uuid.NewString(),
		messages: make(chan []byte, h.buffer),
		topics:   make(map[entities.Topic]struct{}),
	}

	h.mu.Lock()
	h.subscribers[sub.id] = sub
	h.mu.Unlock()

	subscribersGauge.Inc()
	return sub
}

// Unregister убирает подписчика из всех комнат и закрывает его канал. Повторный вызов безопасен.
func (h *Hub) Unregister(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[subscriberID]
	if !ok {
		return
	}
	for topic := range sub.topics {
		h.leaveLocked(sub, topic)
	}
	delete(h.subscribers, subscriberID)
	close(sub.messages)
	subscribersGauge.Dec()
}

func (h *Hub) Join(subscriberID string, topic entities.Topic) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[subscriberID]
	if !ok {
		return ErrUnknownSubscriber
	}
	room, ok := h.rooms[topic]
	if !ok {
		room = make(map[string]*Subscriber)
		h.rooms[topic] = room
	}
	room[subscriberID] = sub
	sub.topics[topic] = struct{}{}
	return nil
}

func (h *Hub) Leave(subscriberID string, topic entities.Topic) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[subscriberID]
	if !ok {
		return ErrUnknownSubscriber
	}
	h.leaveLocked(sub, topic)
	return nil
}

func (h *Hub) leaveLocked(sub *Subscriber, topic entities.Topic) {
	delete(sub.topics, topic)
	room, ok := h.rooms[topic]
	if !ok {
		return
	}
	delete(room, sub.id)
	if len(room) == 0 {
		delete(h.rooms, topic)
	}
}

// Publish раздает message всем участникам комнаты. Ошибку не возвращает никогда,
// сигнатура совпадает с внешней шиной.
func (h *Hub) Publish(_ context.Context, topic entities.Topic, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.rooms[topic] {
		select {
		case sub.messages <- message:
		default:
			droppedTotal.Inc()
			h.log.Warn("subscriber buffer full, message dropped",
				logger.NewField("subscriber", sub.id),
				logger.NewField("topic", topic.String()),
			)
		}
	}
	return nil
}

func (h *Hub) Members(topic entities.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}
