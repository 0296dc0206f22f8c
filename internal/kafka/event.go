package kafka

import "time"

type EventType string

const (
	EventTypeAddToCart      EventType = "addToCart"
	EventTypeRemoveFromCart EventType = "removeFromCart"
	EventTypeUpdateAmount   EventType = "updateAmount"
)

// Event событие мутации корзины для аналитики
type Event struct {
	ID        string    `json:"id"`
	ProductID int       `json:"product_id"`
	Type      EventType `json:"type"`
	Amount    int       `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
