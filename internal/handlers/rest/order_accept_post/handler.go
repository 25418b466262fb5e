package order_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/service/dispatch"
	"foodhub/internal/service/order"
	"foodhub/internal/service/rider"
	"foodhub/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_accept_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP курьер забирает готовый заказ. Из одновременных попыток успешна одна,
// остальные получают 409.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.RiderAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accepted, err := h.service.AcceptOrder(r.Context(), orderID, req.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAlreadyAssigned):
			respond.Error(w, h.log, http.StatusConflict, "already_assigned", "order was already taken by another rider")
		case errors.Is(err, order.ErrConflict):
			respond.Error(w, h.log, http.StatusConflict, "conflict", "order is not available for pickup")
		case errors.Is(err, dispatch.ErrRiderUnavailable):
			respond.Error(w, h.log, http.StatusConflict, "rider_unavailable", "rider must be available to accept orders")
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, rider.ErrRiderNotFound),
			errors.Is(err, order.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.Error("accept order",
				logger.NewField("order_id", orderID),
				logger.NewField("rider_id", req.RiderID),
				logger.ErrorField(err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrder(accepted))
}
