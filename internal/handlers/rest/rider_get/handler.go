package rider_get

import (
	"errors"
	"net/http"
	"strconv"

	"foodhub/internal/dto"
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
	handlerLog := log.With(logger.NewField("handler", "rider_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderEntity, err := h.service.GetRider(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("get rider", logger.NewField("rider_id", id), logger.ErrorField(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewRider(riderEntity))
}
