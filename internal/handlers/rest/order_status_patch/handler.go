package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/entities"
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
	handlerLog := log.With(logger.NewField("handler", "order_status_patch"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP ресторан двигает заказ по статусам.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Actor{Role: entities.ActorRestaurant, ID: req.RestaurantID}
	updated, err := h.service.Transition(r.Context(), orderID, actor, entities.OrderStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidTransition):
			respond.Transition(w, h.log, err)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrConflict):
			respond.Error(w, h.log, http.StatusConflict, "conflict", "order was changed by someone else, reload it")
		default:
			h.log.Error("transition order",
				logger.NewField("order_id", orderID),
				logger.NewField("status", req.Status),
				logger.ErrorField(err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrder(updated))
}
