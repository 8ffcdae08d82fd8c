package app

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

// Store is the in-memory order collection and the only place order status is derived.
//
// Every mutation swaps the affected order for an updated copy, so snapshots
// handed out earlier never change and untouched orders keep their pointer.
// Lookups of unknown ids leave the collection as it was and report
// domain.ErrOrderNotFound or domain.ErrItemNotFound; callers are free to ignore them.
type Store struct {
	mu     sync.RWMutex
	orders []*domain.Order // newest first
	now    func() time.Time
	newID  func() string
}

// errUnchanged lets an update step report that the order already has the requested state.
var errUnchanged = errors.New("unchanged")

type StoreOption func(*Store)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) { s.newID = gen }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder opens a new PENDING order. An empty item list is accepted.
func (s *Store) CreateOrder(tableID int, items []domain.OrderItem, serverName string) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(tableID, items, serverName)
}

// Submit appends the items to the open order of the table, or opens a new
// order when the table has none. Lookup and write happen under one lock, so
// concurrent submits for a free table open a single order. The boolean
// reports whether the order was created.
func (s *Store) Submit(tableID int, items []domain.OrderItem, serverName string) (*domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.TableID != tableID || o.IsClosed() {
			continue
		}
		order, _, _ := s.apply(i, func(o *domain.Order) error {
			s.appendItems(o, items)
			return nil
		})
		return order, false
	}
	return s.create(tableID, items, serverName), true
}

// AddItems appends PENDING items and reopens the order as PREPARING,
// whatever the state of the items already on it.
func (s *Store) AddItems(orderID string, items []domain.OrderItem) (*domain.Order, error) {
	order, _, err := s.update(orderID, func(o *domain.Order) error {
		if o.IsClosed() {
			return domain.ErrOrderClosed
		}
		s.appendItems(o, items)
		return nil
	})
	return order, err
}

// SetItemStatus changes one item and re-derives the order status. Setting
// the status the item already has leaves the order untouched and reports
// changed as false.
func (s *Store) SetItemStatus(orderID, itemID string, status domain.ItemStatus) (order *domain.Order, changed bool, err error) {
	if !status.Valid() {
		return nil, false, domain.ErrInvalidStatus
	}
	return s.update(orderID, func(o *domain.Order) error {
		if o.IsClosed() {
			return domain.ErrOrderClosed
		}
		idx := -1
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrItemNotFound
		}
		if o.Items[idx].Status == status {
			return errUnchanged
		}
		o.Items[idx].Status = status
		o.Status = domain.DeriveStatus(o.Status, o.Items)
		return nil
	})
}

// SetOrderStatus writes the order status directly, bypassing derivation.
// Setting the status an order already has is a no-op.
func (s *Store) SetOrderStatus(orderID string, status domain.OrderStatus) (order *domain.Order, changed bool, err error) {
	if !status.Valid() {
		return nil, false, domain.ErrInvalidStatus
	}
	return s.update(orderID, func(o *domain.Order) error {
		if o.Status == status {
			return errUnchanged
		}
		o.Status = status
		return nil
	})
}

// RecordPayment moves a READY order to PAID with the given method. Paying an
// order that is already PAID returns it unchanged; any other status yields
// domain.ErrOrderNotReady.
func (s *Store) RecordPayment(orderID string, method domain.PaymentMethod) (order *domain.Order, changed bool, err error) {
	return s.update(orderID, func(o *domain.Order) error {
		switch o.Status {
		case domain.StatusPaid:
			return errUnchanged
		case domain.StatusReady:
		default:
			return domain.ErrOrderNotReady
		}
		o.Status = domain.StatusPaid
		o.PaymentMethod = method
		return nil
	})
}

func (s *Store) update(orderID string, fn func(o *domain.Order) error) (*domain.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(orderID)
	if idx < 0 {
		return nil, false, domain.ErrOrderNotFound
	}
	return s.apply(idx, fn)
}

// apply runs fn on a copy of the order at idx and publishes the copy only
// when fn succeeds. The caller holds the write lock.
func (s *Store) apply(idx int, fn func(o *domain.Order) error) (*domain.Order, bool, error) {
	current := s.orders[idx]
	next := current.Clone()
	if err := fn(next); err != nil {
		if errors.Is(err, errUnchanged) {
			return current, false, nil
		}
		return nil, false, err
	}
	next.UpdatedAt = s.now()
	next.Version++

	orders := make([]*domain.Order, len(s.orders))
	copy(orders, s.orders)
	orders[idx] = next
	s.orders = orders

	return next, true, nil
}

// create prepends a new order. The caller holds the write lock.
func (s *Store) create(tableID int, items []domain.OrderItem, serverName string) *domain.Order {
	now := s.now()
	order := &domain.Order{
		ID:         s.newID(),
		TableID:    tableID,
		Items:      s.pendingItems(items),
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
		ServerName: serverName,
		Version:    1,
	}
	order.Total = domain.CalculateTotal(order.Items)

	s.orders = append([]*domain.Order{order}, s.orders...)
	return order
}

func (s *Store) appendItems(o *domain.Order, items []domain.OrderItem) {
	o.Items = append(o.Items, s.pendingItems(items)...)
	o.Total = domain.CalculateTotal(o.Items)
	o.Status = domain.StatusPreparing
}

func (s *Store) pendingItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = s.newID()
		}
		it.Status = domain.ItemPending
		out[i] = it
	}
	return out
}

func (s *Store) indexOf(orderID string) int {
	for i, o := range s.orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

// Snapshot returns the current collection, newest first. The returned slice
// and the orders in it are never modified by the store.
func (s *Store) Snapshot() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

func (s *Store) Get(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(orderID); idx >= 0 {
		return s.orders[idx], nil
	}
	return nil, domain.ErrOrderNotFound
}

func (s *Store) ByStatus(status domain.OrderStatus) []*domain.Order {
	return s.filter(func(o *domain.Order) bool { return o.Status == status })
}

// OpenOrderForTable returns the newest order of the table that is neither PAID nor CANCELLED.
func (s *Store) OpenOrderForTable(tableID int) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.TableID == tableID && !o.IsClosed() {
			return o, true
		}
	}
	return nil, false
}

// OccupiedTables maps each table with an open order to that order.
func (s *Store) OccupiedTables() map[int]*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occupied := make(map[int]*domain.Order)
	// newest first, so keep the first hit per table
	for _, o := range s.orders {
		if o.IsClosed() {
			continue
		}
		if _, ok := occupied[o.TableID]; !ok {
			occupied[o.TableID] = o
		}
	}
	return occupied
}

// StationQueue lists open orders holding items of the category, with only those items kept.
func (s *Store) StationQueue(category domain.Category) []*domain.Order {
	open := s.filter(func(o *domain.Order) bool {
		return !o.IsClosed() && o.HasCategory(category)
	})

	out := make([]*domain.Order, 0, len(open))
	for _, o := range open {
		view := *o
		view.Items = make([]domain.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			if it.Category == category {
				view.Items = append(view.Items, it)
			}
		}
		out = append(out, &view)
	}
	return out
}

func (s *Store) filter(keep func(o *domain.Order) bool) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
