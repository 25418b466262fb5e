package rider_availability_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/entities"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/service/rider"
	"foodhub/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "rider_availability_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP курьер выходит на линию или уходит на паузу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.RiderAvailability
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.SetAvailability(r.Context(), id, entities.RiderStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidAvailability):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrRiderBusy):
			respond.Error(w, h.log, http.StatusConflict, "rider_busy", "finish the current delivery first")
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("set rider availability", logger.NewField("rider_id", id), logger.ErrorField(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewRider(res))
}
