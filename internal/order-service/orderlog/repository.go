package orderlog

import "context"

// Repository is the port for persisting audit entries.
// The order service depends on this abstraction, not on SQLite directly.
type Repository interface {
	// Save appends one entry; entries are never updated.
	Save(ctx context.Context, entry *Entry) error

	// ListByOrder returns the entries of one order, oldest first.
	ListByOrder(ctx context.Context, orderID string) ([]Entry, error)
}
