package chat_session_post

import (
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/service/chat"
	"foodhub/internal/service/order"
	"foodhub/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "chat_session_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP 201 для новой сессии, 200 если она уже была.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, created, err := h.service.EnsureSession(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chat.ErrRiderNotAssigned):
			respond.Error(w, h.log, http.StatusConflict, "rider_not_assigned", "chat opens once a rider takes the order")
		default:
			h.log.Error("ensure chat session", logger.NewField("order_id", orderID), logger.ErrorField(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respond.JSON(w, h.log, status, dto.NewChatSession(session))
}
