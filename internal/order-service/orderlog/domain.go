// Package orderlog defines the audit trail of order transitions.
//
// Every mutation accepted by the order service appends one Entry. The log is
// write-only from the service's point of view; it answers "who moved this
// order to READY, and in which trace" for the admin console.
package orderlog

import "time"

// Action names the operation that produced an entry.
type Action string

const (
	ActionCreated    Action = "CREATED"
	ActionItemsAdded Action = "ITEMS_ADDED"
	ActionItemStatus Action = "ITEM_STATUS"
	ActionStatus     Action = "STATUS"
	ActionPaid       Action = "PAID"
)

type Entry struct {
	OrderID string
	Action  Action

	// Status is the order status after the action.
	Status string

	// ItemID and ItemStatus are set for ActionItemStatus only.
	ItemID     string
	ItemStatus string

	// Actor is the employee or station that triggered the action, when known.
	Actor string

	// Total is the order total after the action, formatted with two decimals.
	Total string

	Version uint64

	// TraceID and SpanID link the entry to the distributed trace, if any.
	TraceID string
	SpanID  string

	At time.Time
}
