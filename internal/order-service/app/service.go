package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	catalogdomain "github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/cache"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/events"
)

const (
	recentOrdersInReport = 5

	// pendingSubmission marks an idempotency key whose order is still being written.
	pendingSubmission = "pending"
	submissionWait    = 3 * time.Second
	submissionPoll    = 20 * time.Millisecond
)

// ProductCatalog is what the order service needs from the catalog.
type ProductCatalog interface {
	Product(id string) (catalogdomain.Product, error)
	ActiveStaff() (active, total int)
}

// CartLine is one product the server put in the cart.
type CartLine struct {
	ProductID string
	Quantity  int
}

type SubmitCartInput struct {
	TableID        int
	Lines          []CartLine
	ServerName     string
	IdempotencyKey string
}

// Table is the occupancy view of one table of the floor.
type Table struct {
	ID       int
	Occupied bool
	Order    *domain.Order
}

type Report struct {
	TotalSales      decimal.Decimal
	PaidOrders      int
	ActiveOrders    int
	CancelledOrders int
	SalesByCategory map[domain.Category]decimal.Decimal
	Recent          []*domain.Order
	StaffOnline     int
	StaffTotal      int
}

// Service owns the order workflow of the restaurant: carts become orders,
// stations move items along, the cashier closes them. Every accepted change
// is written to the audit log and published as an event.
type Service struct {
	store          *Store
	catalog        ProductCatalog
	cache          cache.Cache
	idempotencyTTL time.Duration
	history        orderlog.Repository
	publisher      events.Publisher
	tablesCount    int
	tracer         trace.Tracer
}

type ServiceConfig struct {
	Store          *Store
	Catalog        ProductCatalog
	Cache          cache.Cache
	IdempotencyTTL time.Duration
	// History may be nil, in which case no audit trail is kept.
	History     orderlog.Repository
	Publisher   events.Publisher
	TablesCount int
}

func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		store:          cfg.Store,
		catalog:        cfg.Catalog,
		cache:          cfg.Cache,
		idempotencyTTL: cfg.IdempotencyTTL,
		history:        cfg.History,
		publisher:      cfg.Publisher,
		tablesCount:    cfg.TablesCount,
		tracer:         otel.Tracer("order-service"),
	}
	if s.store == nil {
		s.store = NewStore()
	}
	if s.publisher == nil {
		s.publisher = events.NewNoopPublisher()
	}
	return s
}

// SubmitCart turns a cart into kitchen and bar work. If the table already
// has an open order the lines are appended to it, otherwise a new order is
// opened. The boolean reports whether a new order was created.
func (s *Service) SubmitCart(ctx context.Context, in SubmitCartInput) (*domain.Order, bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.SubmitCart",
		trace.WithAttributes(attribute.Int("table.id", in.TableID)))
	defer span.End()

	if in.TableID < 1 || in.TableID > s.tablesCount {
		return nil, false, fail(span, fmt.Errorf("%w: %d", domain.ErrInvalidTable, in.TableID))
	}
	if len(in.Lines) == 0 {
		return nil, false, fail(span, domain.ErrEmptyCart)
	}

	items, err := s.resolve(in.Lines)
	if err != nil {
		return nil, false, fail(span, err)
	}

	cacheKey := ""
	if in.IdempotencyKey != "" && s.cache != nil {
		key := s.cache.GenerateKey("submit-cart", in.IdempotencyKey)
		reserved, err := s.cache.SetNX(ctx, key, pendingSubmission, s.idempotencyTTL)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "failed to reserve idempotency key", "key", key, "error", err)
		case reserved:
			cacheKey = key
		default:
			order, err := s.awaitSubmission(ctx, key)
			if err != nil {
				return nil, false, fail(span, err)
			}
			if order != nil {
				slog.InfoContext(ctx, "cart already submitted", "order_id", order.ID, "idempotency_key", in.IdempotencyKey)
				return order, false, nil
			}
			// the key points at an order this process does not know
			cacheKey = key
		}
	}

	order, created := s.store.Submit(in.TableID, items, in.ServerName)
	if created {
		s.record(ctx, order, orderlog.ActionCreated, in.ServerName)
		s.publish(ctx, events.RKOrderCreated, order, nil)
	} else {
		s.record(ctx, order, orderlog.ActionItemsAdded, in.ServerName)
		s.publish(ctx, events.RKOrderItemsAdded, order, nil)
	}
	span.SetAttributes(attribute.String("order.id", order.ID), attribute.Bool("order.created", created))

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, order.ID, s.idempotencyTTL); err != nil {
			slog.WarnContext(ctx, "failed to store idempotency key", "key", cacheKey, "error", err)
		}
	}

	slog.InfoContext(ctx, "cart submitted",
		"order_id", order.ID,
		"table_id", order.TableID,
		"lines", len(items),
		"created", created,
		"total", order.Total.StringFixed(2),
	)
	return order, created, nil
}

// awaitSubmission waits for the request that reserved key to store its order
// id. It returns a nil order when the id is unknown to the store, and
// domain.ErrSubmissionInProgress when the wait runs out.
func (s *Service) awaitSubmission(ctx context.Context, key string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, submissionWait)
	defer cancel()

	ticker := time.NewTicker(submissionPoll)
	defer ticker.Stop()

	for {
		orderID, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "idempotency lookup failed", "key", key, "error", err)
		}
		if orderID != "" && orderID != pendingSubmission {
			order, err := s.store.Get(orderID)
			if err != nil {
				return nil, nil
			}
			return order, nil
		}

		select {
		case <-ctx.Done():
			return nil, domain.ErrSubmissionInProgress
		case <-ticker.C:
		}
	}
}

// resolve prices every line from the catalog as it is right now.
func (s *Service) resolve(lines []CartLine) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrInvalidQuantity, l.ProductID)
		}
		p, err := s.catalog.Product(l.ProductID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, l.ProductID)
			}
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  l.Quantity,
			UnitPrice: p.Price,
		})
	}
	return items, nil
}

// AddItems appends catalog products to an existing order.
func (s *Service) AddItems(ctx context.Context, orderID string, lines []CartLine, actor string) (*domain.Order, error) {
	ctx, span := s.startOrderSpan(ctx, "OrderService.AddItems", orderID)
	defer span.End()

	if len(lines) == 0 {
		return nil, fail(span, domain.ErrEmptyCart)
	}
	items, err := s.resolve(lines)
	if err != nil {
		return nil, fail(span, err)
	}
	order, err := s.store.AddItems(orderID, items)
	if err != nil {
		return nil, fail(span, err)
	}

	s.record(ctx, order, orderlog.ActionItemsAdded, actor)
	s.publish(ctx, events.RKOrderItemsAdded, order, nil)
	return order, nil
}

func (s *Service) SetItemStatus(ctx context.Context, orderID, itemID string, status domain.ItemStatus, actor string) (*domain.Order, error) {
	ctx, span := s.startOrderSpan(ctx, "OrderService.SetItemStatus", orderID)
	defer span.End()
	span.SetAttributes(attribute.String("item.id", itemID), attribute.String("item.status", string(status)))

	order, changed, err := s.store.SetItemStatus(orderID, itemID, status)
	if err != nil {
		return nil, fail(span, err)
	}
	if !changed {
		return order, nil
	}

	entry := orderlog.NewEntry(ctx, order.ID, orderlog.ActionItemStatus, string(order.Status), actor, order.Total.StringFixed(2), order.Version)
	entry.ItemID = itemID
	entry.ItemStatus = string(status)
	s.save(ctx, entry)
	s.publish(ctx, events.RKItemStatus, order, &itemChange{id: itemID, status: status})

	slog.InfoContext(ctx, "item status changed",
		"order_id", order.ID,
		"item_id", itemID,
		"item_status", status,
		"order_status", order.Status,
	)
	return order, nil
}

// SetOrderStatus writes the status as given. Nothing is logged or published
// when the order already had it.
func (s *Service) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, actor string) (*domain.Order, error) {
	ctx, span := s.startOrderSpan(ctx, "OrderService.SetOrderStatus", orderID)
	defer span.End()
	span.SetAttributes(attribute.String("order.status", string(status)))

	order, changed, err := s.store.SetOrderStatus(orderID, status)
	if err != nil {
		return nil, fail(span, err)
	}
	if !changed {
		return order, nil
	}

	s.record(ctx, order, orderlog.ActionStatus, actor)
	s.publish(ctx, events.RKOrderStatus, order, nil)
	slog.InfoContext(ctx, "order status changed", "order_id", order.ID, "status", order.Status)
	return order, nil
}

// Cancel moves the order to CANCELLED whatever its current state.
func (s *Service) Cancel(ctx context.Context, orderID, actor string) (*domain.Order, error) {
	return s.SetOrderStatus(ctx, orderID, domain.StatusCancelled, actor)
}

// Pay settles a READY order. Paying it again returns the order as it is.
func (s *Service) Pay(ctx context.Context, orderID string, method domain.PaymentMethod, actor string) (*domain.Order, error) {
	ctx, span := s.startOrderSpan(ctx, "OrderService.Pay", orderID)
	defer span.End()
	span.SetAttributes(attribute.String("payment.method", string(method)))

	if !method.Valid() {
		return nil, fail(span, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, method))
	}

	order, changed, err := s.store.RecordPayment(orderID, method)
	if err != nil {
		return nil, fail(span, err)
	}
	if !changed {
		return order, nil
	}

	s.record(ctx, order, orderlog.ActionPaid, actor)
	s.publish(ctx, events.RKOrderPaid, order, nil)
	slog.InfoContext(ctx, "order paid",
		"order_id", order.ID,
		"table_id", order.TableID,
		"method", method,
		"total", order.Total.StringFixed(2),
	)
	return order, nil
}

// --- Queries ---

// Orders lists orders newest first, all of them when status is empty.
func (s *Service) Orders(status domain.OrderStatus) ([]*domain.Order, error) {
	if status == "" {
		return s.store.Snapshot(), nil
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.store.ByStatus(status), nil
}

func (s *Service) Order(orderID string) (*domain.Order, error) {
	return s.store.Get(orderID)
}

// History returns the audit trail of an order, oldest first. It is empty
// when the audit log is disabled.
func (s *Service) History(ctx context.Context, orderID string) ([]orderlog.Entry, error) {
	if _, err := s.store.Get(orderID); err != nil {
		return nil, err
	}
	if s.history == nil {
		return []orderlog.Entry{}, nil
	}
	entries, err := s.history.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list history of order %s: %w", orderID, err)
	}
	return entries, nil
}

// Tables reports every table of the floor, numbered from 1.
func (s *Service) Tables() []Table {
	occupied := s.store.OccupiedTables()
	tables := make([]Table, s.tablesCount)
	for i := range tables {
		id := i + 1
		order, ok := occupied[id]
		tables[i] = Table{ID: id, Occupied: ok, Order: order}
	}
	return tables
}

// StationQueue is the ticket list of the bar (DRINK) or the kitchen (FOOD).
func (s *Service) StationQueue(category domain.Category) ([]*domain.Order, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}
	return s.store.StationQueue(category), nil
}

// Report summarises the day for the admin dashboard. Sales only count PAID orders.
func (s *Service) Report() Report {
	orders := s.store.Snapshot()
	r := Report{
		TotalSales:      decimal.Zero,
		SalesByCategory: map[domain.Category]decimal.Decimal{},
	}
	for _, c := range []domain.Category{domain.CategoryDrink, domain.CategoryFood} {
		r.SalesByCategory[c] = decimal.Zero
	}

	for _, o := range orders {
		switch o.Status {
		case domain.StatusPaid:
			r.PaidOrders++
			r.TotalSales = r.TotalSales.Add(o.Total)
			for _, it := range o.Items {
				r.SalesByCategory[it.Category] = r.SalesByCategory[it.Category].Add(it.Subtotal())
			}
		case domain.StatusCancelled:
			r.CancelledOrders++
		default:
			r.ActiveOrders++
		}
	}

	r.Recent = orders[:min(recentOrdersInReport, len(orders))]
	if s.catalog != nil {
		r.StaffOnline, r.StaffTotal = s.catalog.ActiveStaff()
	}
	return r
}

// --- Side effects ---

type itemChange struct {
	id     string
	status domain.ItemStatus
}

func (s *Service) record(ctx context.Context, order *domain.Order, action orderlog.Action, actor string) {
	s.save(ctx, orderlog.NewEntry(ctx, order.ID, action, string(order.Status), actor, order.Total.StringFixed(2), order.Version))
}

// save never fails the caller: the order change has already been applied.
func (s *Service) save(ctx context.Context, entry *orderlog.Entry) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to write order log", "order_id", entry.OrderID, "action", entry.Action, "error", err)
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, order *domain.Order, item *itemChange) {
	event := events.OrderEvent{
		OrderID:       order.ID,
		TableID:       order.TableID,
		Status:        string(order.Status),
		Total:         order.Total.StringFixed(2),
		PaymentMethod: string(order.PaymentMethod),
		ServerName:    order.ServerName,
		Version:       order.Version,
		OccurredAt:    order.UpdatedAt,
	}
	for _, c := range []domain.Category{domain.CategoryDrink, domain.CategoryFood} {
		if order.HasCategory(c) {
			event.Categories = append(event.Categories, string(c))
		}
	}
	if item != nil {
		event.ItemID = item.id
		event.ItemStatus = string(item.status)
	}

	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order event", "routing_key", routingKey, "order_id", order.ID, "error", err)
	}
}

func (s *Service) startOrderSpan(ctx context.Context, name, orderID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("order.id", orderID)))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
