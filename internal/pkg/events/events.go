// Package events publishes order lifecycle notifications so kitchen and bar
// displays, receipt printers and other consumers can follow the floor.
package events

import (
	"context"
	"time"
)

// Routing keys used on the topic exchange.
const (
	RKOrderCreated    = "order.created"
	RKOrderItemsAdded = "order.items_added"
	RKItemStatus      = "order.item_status"
	RKOrderStatus     = "order.status"
	RKOrderPaid       = "order.paid"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event OrderEvent) error
	Close() error
}

// OrderEvent is the JSON body of every order message.
type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	TableID       int       `json:"table_id"`
	Status        string    `json:"status"`
	ItemID        string    `json:"item_id,omitempty"`
	ItemStatus    string    `json:"item_status,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	ServerName    string    `json:"server_name,omitempty"`
	Version       uint64    `json:"version"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, string, OrderEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
