package events_ws

import (
	"foodhub/internal/entities"
	"foodhub/internal/pkg/hub"
	"foodhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Register() *hub.Subscriber
	Unregister(subscriberID string)
	Join(subscriberID string, topic entities.Topic) error
	Leave(subscriberID string, topic entities.Topic) error
}

type Limiter interface {
	Allow() bool
}
