package service

import (
	"context"
)

// EventType names the events the storefront hands to the fulfillment worker.
type EventType string

const (
	// EventOrderPlaced is published after a successful checkout.
	EventOrderPlaced EventType = "order.placed"
	// EventPortingUpdate is a carrier progress report for a number transfer.
	EventPortingUpdate EventType = "porting.carrier_update"
)

// Event is the envelope published to the message queue. Exactly one payload is set, matching Type.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing

	OrderPlaced   *OrderPlacedEvent   `json:"order_placed,omitempty"`
	PortingUpdate *PortingUpdateEvent `json:"porting_update,omitempty"`
}

// OrderPlacedEvent carries what the worker needs to confirm an order to the shopper.
type OrderPlacedEvent struct {
	OrderID      string  `json:"order_id"`
	SessionID    string  `json:"session_id"`
	Persona      string  `json:"persona"`
	Lines        int     `json:"lines"`
	MonthlyTotal float64 `json:"monthly_total"`
	ESIM         bool    `json:"esim"`
	NotifyToken  string  `json:"notify_token,omitempty"` // Push token of the shopper device
}

// PortingUpdateEvent reports that the losing carrier finished another step of a transfer.
type PortingUpdateEvent struct {
	PortingID string `json:"porting_id"`
	Carrier   string `json:"carrier"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
