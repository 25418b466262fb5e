package order_get

import (
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/service/order"
	"foodhub/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	o, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("get order", logger.NewField("order_id", orderID), logger.ErrorField(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrder(o))
}
