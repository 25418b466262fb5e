// Package respond запись JSON ответов для REST хендлеров.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodhub/internal/dto"
	"foodhub/internal/service/order"
	"foodhub/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.ErrorField(err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, code, message string) {
	JSON(w, log, status, dto.Error{Error: code, Message: message})
}

// Transition 400 с пояснением, почему переход невозможен.
func Transition(w http.ResponseWriter, log errorLogger, err error) {
	message := err.Error()
	var transitionErr *order.TransitionError
	if errors.As(err, &transitionErr) && transitionErr.Message != "" {
		message = transitionErr.Message
	}
	Error(w, log, http.StatusBadRequest, "invalid_transition", message)
}
