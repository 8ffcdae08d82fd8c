package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func items(statuses ...ItemStatus) []OrderItem {
	out := make([]OrderItem, len(statuses))
	for i, s := range statuses {
		out[i] = OrderItem{Status: s}
	}
	return out
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		current OrderStatus
		items   []OrderItem
		want    OrderStatus
	}{
		{"all ready", StatusPending, items(ItemReady, ItemReady), StatusReady},
		{"all ready from preparing", StatusPreparing, items(ItemReady), StatusReady},
		{"one preparing", StatusPending, items(ItemPreparing, ItemPending), StatusPreparing},
		{"preparing and ready", StatusPending, items(ItemPreparing, ItemReady), StatusPreparing},
		{"nothing started", StatusPending, items(ItemPending, ItemPending), StatusPending},
		{"ready then pending stays ready", StatusReady, items(ItemPending, ItemReady), StatusReady},
		{"ready then preparing stays ready", StatusReady, items(ItemPreparing, ItemReady), StatusReady},
		{"preparing with only ready and pending", StatusPreparing, items(ItemReady, ItemPending), StatusPreparing},
		{"paid is kept", StatusPaid, items(ItemReady), StatusPaid},
		{"cancelled is kept", StatusCancelled, items(ItemPreparing), StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.current, tt.items))
		})
	}
}

func TestCalculateTotal(t *testing.T) {
	lines := []OrderItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("3.5")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("14.0")},
	}

	total := CalculateTotal(lines)

	assert.True(t, total.Equal(decimal.RequireFromString("21.00")), "got %s", total)
	assert.True(t, CalculateTotal(nil).IsZero())
}

func TestCloneDoesNotShareItems(t *testing.T) {
	o := &Order{ID: "o1", Items: items(ItemPending)}

	c := o.Clone()
	c.Items[0].Status = ItemReady

	assert.Equal(t, ItemPending, o.Items[0].Status)
	assert.Equal(t, ItemReady, c.Items[0].Status)
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, ItemStatus("PAID").Valid())
	assert.True(t, CategoryFood.Valid())
	assert.False(t, PaymentNone.Valid())
}
