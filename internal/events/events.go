// Package events publishes storefront domain events.
package events

import (
	"context"
	"time"
)

// Event types
const (
	TypeOrderPlaced = "order.placed"
)

// Event is a published domain event. Key groups related events onto the
// same partition.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards every event
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close() error { return nil }
