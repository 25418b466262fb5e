package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// Error тело ответа при ошибке. Message показывается пользователю как есть.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
