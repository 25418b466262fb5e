package notification

import "errors"

var (
	ErrInvalidRecipient    = errors.New("invalid notification recipient")
	ErrInvalidNotification = errors.New("invalid notification")
)
