// Package sqlite provides a SQLite-backed implementation of orderlog.Repository.
//
// WAL mode is enabled on Open so the HTTP history endpoint can read while
// mutations keep appending.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog"

	// Pure-Go driver, no CGO.
	_ "modernc.org/sqlite"
)

// schema is applied on every Open. Rows are immutable; the id column keeps
// insertion order for entries written within the same timestamp.
const schema = `
CREATE TABLE IF NOT EXISTS order_log (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id     TEXT    NOT NULL,
    action       TEXT    NOT NULL,
    status       TEXT    NOT NULL,
    item_id      TEXT    NOT NULL DEFAULT '',
    item_status  TEXT    NOT NULL DEFAULT '',
    actor        TEXT    NOT NULL DEFAULT '',
    total        TEXT    NOT NULL DEFAULT '0.00',
    version      INTEGER NOT NULL,
    trace_id     TEXT    NOT NULL DEFAULT '',
    span_id      TEXT    NOT NULL DEFAULT '',
    at           TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_log_order_id ON order_log(order_id, id);
CREATE INDEX IF NOT EXISTS idx_order_log_trace_id ON order_log(trace_id);
`

// Repository is the SQLite implementation of orderlog.Repository.
type Repository struct {
	db *sql.DB
}

var _ orderlog.Repository = (*Repository)(nil)

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	repo, err := sqlite.Open("./data/order-log.db")
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// single writer
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new entry. It is safe to call concurrently.
func (r *Repository) Save(ctx context.Context, entry *orderlog.Entry) error {
	const q = `
		INSERT INTO order_log
			(order_id, action, status, item_id, item_status, actor, total, version, trace_id, span_id, at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		string(entry.Action),
		entry.Status,
		entry.ItemID,
		entry.ItemStatus,
		entry.Actor,
		entry.Total,
		entry.Version,
		entry.TraceID,
		entry.SpanID,
		formatTime(entry.At),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save order log for %q: %w", entry.OrderID, err)
	}
	return nil
}

// ListByOrder returns every entry of an order in insertion order.
// An unknown order yields an empty slice.
func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]orderlog.Entry, error) {
	const q = `
		SELECT order_id, action, status, item_id, item_status, actor, total, version,
		       trace_id, span_id, at
		FROM   order_log
		WHERE  order_id = ?
		ORDER  BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list order log for %q: %w", orderID, err)
	}
	defer rows.Close()

	entries := make([]orderlog.Entry, 0)
	for rows.Next() {
		var (
			e  orderlog.Entry
			at string
		)
		if err := rows.Scan(
			&e.OrderID,
			&e.Action,
			&e.Status,
			&e.ItemID,
			&e.ItemStatus,
			&e.Actor,
			&e.Total,
			&e.Version,
			&e.TraceID,
			&e.SpanID,
			&at,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan order log for %q: %w", orderID, err)
		}
		if e.At, err = parseRFC3339(at); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate order log for %q: %w", orderID, err)
	}
	return entries, nil
}

// applySchema runs the DDL statements. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
