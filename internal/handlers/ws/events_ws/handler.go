// Package events_ws websocket для получения событий заказов в реальном времени.
//
// Клиент управляет подписками кадрами {"action":"join"|"leave","topic":"..."},
// сервер отвечает ControlFrame и пересылает события комнат как есть.
package events_ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodhub/internal/dto"
	"foodhub/internal/entities"
	"foodhub/internal/pkg/config"
	"foodhub/pkg/logger"
	"foodhub/pkg/token_bucket"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

const (
	actionJoin  = "join"
	actionLeave = "leave"

	readLimit = 4 << 10

	defaultWriteTimeout = 5 * time.Second
)

var framesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ws_client_frames_total",
		Help: "Client control frames by action and result",
	},
	[]string{"action", "result"},
)

type Handler struct {
	log          handlerLogger
	hub          Hub
	writeTimeout time.Duration
	newLimiter   func() Limiter
}

func New(log handlerLogger, hub Hub, cfg *config.Realtime) *Handler {
	handlerLog := log.With(logger.NewField("handler", "events_ws"))

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	qps, burst := cfg.ClientQPS, cfg.ClientBurst
	return &Handler{
		log:          handlerLog,
		hub:          hub,
		writeTimeout: writeTimeout,
		newLimiter: func() Limiter {
			return token_bucket.NewTokenBucket(burst, float64(qps))
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// origin проверяет gateway перед сервисом
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		h.log.Warn("websocket upgrade", logger.ErrorField(err))
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	sub := h.hub.Register()
	defer h.hub.Unregister(sub.ID())

	connLog := h.log.With(
		logger.NewField("subscriber", sub.ID()),
		logger.NewField("remote_addr", r.RemoteAddr),
	)
	connLog.Info("websocket connected")

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.readLoop(ctx, conn, sub.ID(), h.newLimiter())
	})
	g.Go(func() error {
		return h.writeLoop(ctx, conn, sub.Messages())
	})

	if err := g.Wait(); err != nil && !isClosedByClient(err) && !errors.Is(err, context.Canceled) {
		connLog.Warn("websocket closed with error", logger.ErrorField(err))
		return
	}
	connLog.Info("websocket disconnected")
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn, subscriberID string, limiter Limiter) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		if !limiter.Allow() {
			framesTotal.WithLabelValues("unknown", "rate_limited").Inc()
			if err := h.write(ctx, conn, dto.ControlFrame{Event: "error", Message: "too many frames, slow down"}); err != nil {
				return err
			}
			continue
		}

		reply := h.handleFrame(subscriberID, data)
		if err := h.write(ctx, conn, reply); err != nil {
			return err
		}
	}
}

func (h *Handler) handleFrame(subscriberID string, data []byte) dto.ControlFrame {
	var frame dto.ClientFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		framesTotal.WithLabelValues("unknown", "bad_frame").Inc()
		return dto.ControlFrame{Event: "error", Message: "frame must be a JSON object"}
	}

	topic, err := entities.ParseTopic(frame.Topic)
	if err != nil {
		framesTotal.WithLabelValues(frame.Action, "bad_topic").Inc()
		return dto.ControlFrame{Event: "error", Topic: frame.Topic, Message: err.Error()}
	}

	var event string
	switch frame.Action {
	case actionJoin:
		event = "joined"
		err = h.hub.Join(subscriberID, topic)
	case actionLeave:
		event = "left"
		err = h.hub.Leave(subscriberID, topic)
	default:
		framesTotal.WithLabelValues("unknown", "bad_action").Inc()
		return dto.ControlFrame{Event: "error", Topic: frame.Topic, Message: "action must be join or leave"}
	}
	if err != nil {
		framesTotal.WithLabelValues(frame.Action, "error").Inc()
		return dto.ControlFrame{Event: "error", Topic: frame.Topic, Message: err.Error()}
	}

	framesTotal.WithLabelValues(frame.Action, "ok").Inc()
	return dto.ControlFrame{Event: event, Topic: topic.String()}
}

// writeLoop сообщения хаба уже закодированы в JSON, пишем их как есть.
func (h *Handler) writeLoop(ctx context.Context, conn *websocket.Conn, messages <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

func (h *Handler) write(ctx context.Context, conn *websocket.Conn, frame dto.ControlFrame) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, frame)
}

func isClosedByClient(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}
