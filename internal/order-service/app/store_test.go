package app

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

func newTestStore() *Store {
	n := 0
	clock := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	return NewStore(
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)
}

func line(name string, category domain.Category, qty int, price string) domain.OrderItem {
	return domain.OrderItem{
		ProductID: "p-" + name,
		Name:      name,
		Category:  category,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func espressoAndPasta() []domain.OrderItem {
	return []domain.OrderItem{
		line("Espresso", domain.CategoryDrink, 2, "3.5"),
		line("Pasta Carbonara", domain.CategoryFood, 1, "14.0"),
	}
}

func assertTotalConsistent(t *testing.T, o *domain.Order) {
	t.Helper()
	assert.True(t, o.Total.Equal(domain.CalculateTotal(o.Items)), "total %s does not match items", o.Total)
}

func TestStore_CreateOrder(t *testing.T) {
	s := newTestStore()

	o := s.CreateOrder(4, espressoAndPasta(), "Ahmed Server")

	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, 4, o.TableID)
	assert.Equal(t, "Ahmed Server", o.ServerName)
	assert.Equal(t, uint64(1), o.Version)
	require.Len(t, o.Items, 2)
	for _, it := range o.Items {
		assert.Equal(t, domain.ItemPending, it.Status)
		assert.NotEmpty(t, it.ID)
	}
	assert.True(t, o.Total.Equal(decimal.RequireFromString("21.00")))
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestStore_CreateOrderWithEmptyCart(t *testing.T) {
	s := newTestStore()

	o := s.CreateOrder(1, nil, "Ahmed Server")

	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Empty(t, o.Items)
	assert.True(t, o.Total.IsZero())
}

func TestStore_NewestFirst(t *testing.T) {
	s := newTestStore()
	first := s.CreateOrder(1, espressoAndPasta(), "a")
	second := s.CreateOrder(2, espressoAndPasta(), "b")

	snap := s.Snapshot()

	require.Len(t, snap, 2)
	assert.Same(t, second, snap[0])
	assert.Same(t, first, snap[1])
}

func TestStore_AllItemsReadyMakesOrderReady(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	o, _, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemReady)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)

	o, _, err = s.SetItemStatus(o.ID, o.Items[1].ID, domain.ItemReady)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, o.Status)
	assertTotalConsistent(t, o)
}

func TestStore_PreparingItemMakesOrderPreparing(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	o, _, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemPreparing)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, o.Status)
}

func TestStore_ReadyOrderDoesNotRegress(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")
	for _, it := range o.Items {
		var err error
		o, _, err = s.SetItemStatus(o.ID, it.ID, domain.ItemReady)
		require.NoError(t, err)
	}
	require.Equal(t, domain.StatusReady, o.Status)

	o, _, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, o.Status)

	o, _, err = s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, o.Status)
}

func TestStore_AddItemsReopensReadyOrder(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")
	for _, it := range o.Items {
		o, _, _ = s.SetItemStatus(o.ID, it.ID, domain.ItemReady)
	}
	require.Equal(t, domain.StatusReady, o.Status)

	o, err := s.AddItems(o.ID, []domain.OrderItem{line("Iced Latte", domain.CategoryDrink, 1, "5.0")})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, o.Status)
	require.Len(t, o.Items, 3)
	assert.Equal(t, domain.ItemReady, o.Items[0].Status)
	assert.Equal(t, domain.ItemPending, o.Items[2].Status)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("26")))
	assertTotalConsistent(t, o)
}

func TestStore_AddItemsForcesPendingStatus(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, nil, "a")

	added := line("Espresso", domain.CategoryDrink, 1, "3.5")
	added.Status = domain.ItemReady
	o, err := s.AddItems(o.ID, []domain.OrderItem{added})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemPending, o.Items[0].Status)
}

func TestStore_PaidIsDirectAndIdempotent(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	paid, _, err := s.SetOrderStatus(o.ID, domain.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	assert.True(t, paid.Total.Equal(decimal.RequireFromString("21")))

	again, _, err := s.SetOrderStatus(o.ID, domain.StatusPaid)
	require.NoError(t, err)
	assert.Same(t, paid, again)
}

func TestStore_Example(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(7, espressoAndPasta(), "a")
	require.True(t, o.Total.Equal(decimal.RequireFromString("21.00")))
	require.Equal(t, domain.StatusPending, o.Status)

	o, _, _ = s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemReady)
	o, _, _ = s.SetItemStatus(o.ID, o.Items[1].ID, domain.ItemReady)
	require.Equal(t, domain.StatusReady, o.Status)

	o, _, err := s.SetOrderStatus(o.ID, domain.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, o.Status)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("21.00")))
}

func TestStore_ClosedOrdersRejectContentChanges(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.StatusPaid, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			s := newTestStore()
			o := s.CreateOrder(1, espressoAndPasta(), "a")
			closed, _, err := s.SetOrderStatus(o.ID, status)
			require.NoError(t, err)

			_, err = s.AddItems(o.ID, espressoAndPasta())
			assert.ErrorIs(t, err, domain.ErrOrderClosed)

			_, _, err = s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemReady)
			assert.ErrorIs(t, err, domain.ErrOrderClosed)

			current, err := s.Get(o.ID)
			require.NoError(t, err)
			assert.Same(t, closed, current)
		})
	}
}

func TestStore_MissingIDsLeaveCollectionUnchanged(t *testing.T) {
	s := newTestStore()
	a := s.CreateOrder(1, espressoAndPasta(), "a")
	b := s.CreateOrder(2, espressoAndPasta(), "b")
	before := s.Snapshot()

	_, err := s.AddItems("missing", espressoAndPasta())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	_, _, err = s.SetItemStatus("missing", a.Items[0].ID, domain.ItemReady)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	_, _, err = s.SetItemStatus(a.ID, "missing-item", domain.ItemReady)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, _, err = s.SetOrderStatus("missing", domain.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	_, _, err = s.RecordPayment("missing", domain.PaymentCash)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	after := s.Snapshot()
	require.Len(t, after, 2)
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[1], after[1])
	assert.Same(t, b, after[0])
	assert.Same(t, a, after[1])
}

func TestStore_MutationKeepsOtherOrdersAndOldSnapshots(t *testing.T) {
	s := newTestStore()
	a := s.CreateOrder(1, espressoAndPasta(), "a")
	b := s.CreateOrder(2, espressoAndPasta(), "b")
	before := s.Snapshot()

	updated, _, err := s.SetItemStatus(a.ID, a.Items[0].ID, domain.ItemPreparing)
	require.NoError(t, err)

	after := s.Snapshot()
	assert.Same(t, b, after[0])
	assert.Same(t, updated, after[1])
	assert.NotSame(t, a, updated)
	assert.Equal(t, domain.ItemPending, before[1].Items[0].Status)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, uint64(2), updated.Version)
	assert.True(t, updated.UpdatedAt.After(a.UpdatedAt))
}

func TestStore_InvalidStatusRejected(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	_, _, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemStatus("DONE"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	_, _, err = s.SetOrderStatus(o.ID, domain.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStore_RecordPayment(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	_, _, err := s.RecordPayment(o.ID, domain.PaymentCard)
	assert.ErrorIs(t, err, domain.ErrOrderNotReady)

	_, _, err = s.SetOrderStatus(o.ID, domain.StatusReady)
	require.NoError(t, err)

	paid, _, err := s.RecordPayment(o.ID, domain.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	assert.Equal(t, domain.PaymentCard, paid.PaymentMethod)

	again, _, err := s.RecordPayment(o.ID, domain.PaymentCash)
	require.NoError(t, err)
	assert.Same(t, paid, again)
	assert.Equal(t, domain.PaymentCard, again.PaymentMethod)
}

func TestStore_TablesAndQueues(t *testing.T) {
	s := newTestStore()
	a := s.CreateOrder(1, espressoAndPasta(), "a")
	b := s.CreateOrder(2, []domain.OrderItem{line("Margherita Pizza", domain.CategoryFood, 1, "12.5")}, "b")
	c := s.CreateOrder(3, espressoAndPasta(), "c")
	_, _, err := s.SetOrderStatus(c.ID, domain.StatusCancelled)
	require.NoError(t, err)

	open, ok := s.OpenOrderForTable(1)
	require.True(t, ok)
	assert.Equal(t, a.ID, open.ID)
	_, ok = s.OpenOrderForTable(3)
	assert.False(t, ok)

	occupied := s.OccupiedTables()
	assert.Len(t, occupied, 2)
	assert.Contains(t, occupied, 1)
	assert.Contains(t, occupied, 2)

	bar := s.StationQueue(domain.CategoryDrink)
	require.Len(t, bar, 1)
	assert.Equal(t, a.ID, bar[0].ID)
	require.Len(t, bar[0].Items, 1)
	assert.Equal(t, "Espresso", bar[0].Items[0].Name)

	kitchen := s.StationQueue(domain.CategoryFood)
	require.Len(t, kitchen, 2)
	assert.Equal(t, b.ID, kitchen[0].ID)

	assert.Len(t, s.ByStatus(domain.StatusCancelled), 1)
	assert.Len(t, s.ByStatus(domain.StatusPending), 2)
}

func TestStore_TotalAlwaysMatchesItems(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")
	assertTotalConsistent(t, o)

	for i := 0; i < 3; i++ {
		var err error
		o, err = s.AddItems(o.ID, []domain.OrderItem{line("Cappuccino", domain.CategoryDrink, i+1, "4.5")})
		require.NoError(t, err)
		assertTotalConsistent(t, o)
	}
	o, _, _ = s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemReady)
	assertTotalConsistent(t, o)
	o, _, _ = s.SetOrderStatus(o.ID, domain.StatusReady)
	assertTotalConsistent(t, o)
}

func TestStore_SubmitOpensOrAppends(t *testing.T) {
	s := newTestStore()

	first, created := s.Submit(4, espressoAndPasta(), "a")
	require.True(t, created)
	assert.Equal(t, domain.StatusPending, first.Status)

	second, created := s.Submit(4, []domain.OrderItem{line("Cappuccino", domain.CategoryDrink, 1, "4.5")}, "b")
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Items, 3)
	assert.Equal(t, domain.StatusPreparing, second.Status)
	assert.Equal(t, "a", second.ServerName)
	assertTotalConsistent(t, second)

	_, _, err := s.SetOrderStatus(first.ID, domain.StatusCancelled)
	require.NoError(t, err)
	third, created := s.Submit(4, espressoAndPasta(), "c")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Len(t, s.Snapshot(), 2)
}

func TestStore_ConcurrentSubmitsOpenOneOrder(t *testing.T) {
	s := newTestStore()

	const callers = 32
	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, c := s.Submit(9, espressoAndPasta(), "a"); c {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	orders := s.Snapshot()
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2*callers)
	assert.Equal(t, uint64(callers), orders[0].Version)
}

func TestStore_SameItemStatusIsNoop(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	o, changed, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemPreparing)
	require.NoError(t, err)
	require.True(t, changed)

	again, changed, err := s.SetItemStatus(o.ID, o.Items[0].ID, domain.ItemPreparing)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, o, again)
	assert.Equal(t, uint64(2), again.Version)
	assert.Equal(t, o.UpdatedAt, again.UpdatedAt)

	// an untouched PENDING item is also unchanged
	_, changed, err = s.SetItemStatus(o.ID, o.Items[1].ID, domain.ItemPending)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStore_MutatorsReportChange(t *testing.T) {
	s := newTestStore()
	o := s.CreateOrder(1, espressoAndPasta(), "a")

	_, changed, err := s.SetOrderStatus(o.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = s.SetOrderStatus(o.ID, domain.StatusReady)
	require.NoError(t, err)
	assert.True(t, changed)

	_, changed, err = s.RecordPayment(o.ID, domain.PaymentCash)
	require.NoError(t, err)
	assert.True(t, changed)

	paid, changed, err := s.RecordPayment(o.ID, domain.PaymentCash)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, uint64(3), paid.Version)

	_, changed, err = s.SetOrderStatus("missing", domain.StatusReady)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.False(t, changed)
}
