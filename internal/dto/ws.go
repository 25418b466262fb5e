package dto

// ClientFrame управляющий кадр от клиента websocket.
type ClientFrame struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

// ControlFrame ответ сервера на ClientFrame. События заказов приходят отдельно, как entities.Envelope.
type ControlFrame struct {
	Event   string `json:"event"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message,omitempty"`
}
