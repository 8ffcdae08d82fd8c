package ports

import (
	"context"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/app"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog"
)

// OrderService is the order workflow as the HTTP API sees it.
type OrderService interface {
	SubmitCart(ctx context.Context, in app.SubmitCartInput) (*domain.Order, bool, error)
	AddItems(ctx context.Context, orderID string, lines []app.CartLine, actor string) (*domain.Order, error)
	SetItemStatus(ctx context.Context, orderID, itemID string, status domain.ItemStatus, actor string) (*domain.Order, error)
	SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, actor string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, actor string) (*domain.Order, error)
	Pay(ctx context.Context, orderID string, method domain.PaymentMethod, actor string) (*domain.Order, error)

	Orders(status domain.OrderStatus) ([]*domain.Order, error)
	Order(orderID string) (*domain.Order, error)
	History(ctx context.Context, orderID string) ([]orderlog.Entry, error)
	Tables() []app.Table
	StationQueue(category domain.Category) ([]*domain.Order, error)
	Report() app.Report
}

var _ OrderService = (*app.Service)(nil)
