package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string
	TableID       int
	Items         []OrderItem
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ServerName    string
	Total         decimal.Decimal
	PaymentMethod PaymentMethod

	// Version is bumped on every successful mutation.
	Version uint64
}

type OrderItem struct {
	ID        string
	ProductID string
	Name      string
	Category  Category
	Quantity  int
	UnitPrice decimal.Decimal
	Status    ItemStatus
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CalculateTotal sums the subtotals of items.
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clone returns a deep copy so callers can mutate it without touching shared snapshots.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

// IsClosed reports whether the order reached a terminal status.
func (o *Order) IsClosed() bool {
	return o.Status.IsTerminal()
}

// HasCategory reports whether any item belongs to the given category.
func (o *Order) HasCategory(c Category) bool {
	for _, it := range o.Items {
		if it.Category == c {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

type ItemStatus string

const (
	ItemPending   ItemStatus = "PENDING"
	ItemPreparing ItemStatus = "PREPARING"
	ItemReady     ItemStatus = "READY"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemPreparing, ItemReady:
		return true
	}
	return false
}

type Category string

const (
	CategoryDrink Category = "DRINK"
	CategoryFood  Category = "FOOD"
)

func (c Category) Valid() bool {
	return c == CategoryDrink || c == CategoryFood
}

type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}
