package ping_get

import (
	"net/http"

	"foodhub/internal/dto"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
