package ws

import (
	"encoding/json"
	"time"
)

const (
	EventTypeNotification = "notification"
	EventTypePing         = "ping"
	EventTypePong         = "pong"
	EventTypeError        = "error"
)

// Event es el sobre de todo mensaje por el socket.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewEvent(eventType string, payload any) (Event, error) {
	evt := Event{Type: eventType, SentAt: time.Now().UTC()}
	if payload == nil {
		return evt, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	evt.Payload = data
	return evt, nil
}
