package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Topic имя комнаты рассылки: "restaurant:{id}", "customer:{id}", "rider:{id}" или "riders-available".
type Topic string

const RidersAvailableTopic Topic = "riders-available"

var ErrInvalidTopic = errors.New("invalid topic")

func RestaurantTopic(id int64) Topic {
	return Topic(fmt.Sprintf("restaurant:%d", id))
}

func CustomerTopic(id int64) Topic {
	return Topic(fmt.Sprintf("customer:%d", id))
}

func RiderTopic(id int64) Topic {
	return Topic(fmt.Sprintf("rider:%d", id))
}

func (t Topic) String() string {
	return string(t)
}

// ParseTopic проверяет имя комнаты, пришедшее от клиента.
func ParseTopic(raw string) (Topic, error) {
	if raw == string(RidersAvailableTopic) {
		return RidersAvailableTopic, nil
	}
	kind, id, ok := strings.Cut(raw, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, raw)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: bad id %q", ErrInvalidTopic, id)
	}
	// имя собирается заново: "restaurant:007" и "restaurant:7" одна комната
	switch RecipientKind(kind) {
	case RecipientRestaurant:
		return RestaurantTopic(n), nil
	case RecipientCustomer:
		return CustomerTopic(n), nil
	case RecipientRider:
		return RiderTopic(n), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidTopic, kind)
	}
}

type EventName string

const (
	EventNewOrder           EventName = "new_order"
	EventOrderStatusUpdated EventName = "order_status_updated"
	EventOrderReady         EventName = "order_ready"
	EventOrderAccepted      EventName = "order_accepted"
	EventOrderTaken         EventName = "order_taken"
)

func (n EventName) String() string {
	return string(n)
}

// Event сообщение для подписчиков комнаты. Публикуется только после коммита транзакции.
type Event struct {
	Topic   Topic
	Name    EventName
	Payload OrderEventPayload
}

type OrderEventPayload struct {
	OrderID      int64      `json:"order_id"`
	Status       string     `json:"status"`
	RestaurantID int64      `json:"restaurant_id"`
	CustomerID   int64      `json:"customer_id"`
	RiderID      *int64     `json:"rider_id,omitempty"`
	DeliveryFee  *float64   `json:"delivery_fee,omitempty"`
	ExpectedBy   *time.Time `json:"expected_by,omitempty"`
	Message      string     `json:"message,omitempty"`
}

// NewOrderEventPayload снимок заказа для события.
func NewOrderEventPayload(order Order) OrderEventPayload {
	return OrderEventPayload{
		OrderID:      order.ID,
		Status:       order.Status.String(),
		RestaurantID: order.RestaurantID,
		CustomerID:   order.CustomerID,
		RiderID:      order.RiderID,
	}
}

// Envelope то, что уходит в шину и клиенту по websocket.
type Envelope struct {
	ID      string            `json:"id"`
	Topic   Topic             `json:"topic"`
	Event   EventName         `json:"event"`
	Payload OrderEventPayload `json:"payload"`
	SentAt  time.Time         `json:"sent_at"`
}
