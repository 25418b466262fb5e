package notifications_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"foodhub/internal/dto"
	"foodhub/internal/entities"
	"foodhub/internal/handlers/rest/respond"
	"foodhub/internal/service/notification"
	"foodhub/pkg/logger"
)

var errBadQuery = errors.New("invalid query")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "notifications_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /notifications?recipient_kind=&recipient_id=&order_id=&limit=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidRecipient):
			respond.Error(w, h.log, http.StatusBadRequest, "bad_request", err.Error())
		default:
			h.log.Error("list notifications",
				logger.NewField("recipient_kind", filter.RecipientKind.String()),
				logger.NewField("recipient_id", filter.RecipientID),
				logger.ErrorField(err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewNotificationList(items))
}

func parseFilter(q url.Values) (entities.NotificationFilter, error) {
	filter := entities.NotificationFilter{
		RecipientKind: entities.RecipientKind(q.Get("recipient_kind")),
	}

	recipientID, err := strconv.ParseInt(q.Get("recipient_id"), 10, 64)
	if err != nil {
		return filter, fmt.Errorf("%w: recipient_id must be an integer", errBadQuery)
	}
	filter.RecipientID = recipientID

	if raw := q.Get("order_id"); raw != "" {
		orderID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: order_id must be an integer", errBadQuery)
		}
		filter.OrderID = &orderID
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: limit must be a positive integer", errBadQuery)
		}
		filter.Limit = limit
	}

	return filter, nil
}
