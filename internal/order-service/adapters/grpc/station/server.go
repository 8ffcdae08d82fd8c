// Package station serves the bar and kitchen display terminals over gRPC.
package station

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/mappers"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/stationv1"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

// OrderService is the part of the order service the stations use.
type OrderService interface {
	StationQueue(category domain.Category) ([]*domain.Order, error)
	SetItemStatus(ctx context.Context, orderID, itemID string, status domain.ItemStatus, actor string) (*domain.Order, error)
}

type Server struct {
	stationv1.UnimplementedStationServer
	orders OrderService
}

func NewServer(orders OrderService) *Server {
	return &Server{orders: orders}
}

var _ stationv1.StationServer = (*Server)(nil)

func (s *Server) ListTickets(_ context.Context, req *stationv1.ListTicketsRequest) (*stationv1.ListTicketsResponse, error) {
	category, ok := mappers.CategoryFromWire(req.GetCategory())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown category %q", req.GetCategory())
	}

	orders, err := s.orders.StationQueue(category)
	if err != nil {
		return nil, toStatus(err)
	}
	return &stationv1.ListTicketsResponse{Tickets: mappers.TicketsFromOrders(orders)}, nil
}

func (s *Server) SetItemStatus(ctx context.Context, req *stationv1.SetItemStatusRequest) (*stationv1.SetItemStatusResponse, error) {
	if req.OrderId == "" || req.ItemId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id and item_id are required")
	}
	itemStatus, ok := mappers.ItemStatusFromWire(req.Status)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown item status %q", req.Status)
	}

	actor := req.Station
	if actor == "" {
		actor = "station"
	}
	order, err := s.orders.SetItemStatus(ctx, req.OrderId, req.ItemId, itemStatus, actor)
	if err != nil {
		return nil, toStatus(err)
	}
	return &stationv1.SetItemStatusResponse{Ticket: mappers.TicketFromOrder(order)}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrOrderClosed), errors.Is(err, domain.ErrOrderNotReady):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidCategory):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
