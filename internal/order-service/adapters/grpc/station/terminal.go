package station

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/stationv1"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors"
)

// Terminal is the client side used by a display terminal. Request ids found
// in the caller's context are forwarded to the server.
type Terminal struct {
	client stationv1.StationClient
	name   string
}

func NewTerminal(cc grpc.ClientConnInterface, name string) *Terminal {
	return &Terminal{client: stationv1.NewStationClient(cc), name: name}
}

func (t *Terminal) Tickets(ctx context.Context, category domain.Category) ([]*stationv1.Ticket, error) {
	ctx = interceptors.ContextWithPropagatedIDs(ctx)

	res, err := t.client.ListTickets(ctx, &stationv1.ListTicketsRequest{Category: string(category)})
	if err != nil {
		return nil, fmt.Errorf("grpc ListTickets: %w", err)
	}
	return res.GetTickets(), nil
}

func (t *Terminal) MarkItem(ctx context.Context, orderID, itemID string, status domain.ItemStatus) (*stationv1.Ticket, error) {
	ctx = interceptors.ContextWithPropagatedIDs(ctx)

	res, err := t.client.SetItemStatus(ctx, &stationv1.SetItemStatusRequest{
		OrderId: orderID,
		ItemId:  itemID,
		Status:  string(status),
		Station: t.name,
	})
	if err != nil {
		return nil, fmt.Errorf("grpc SetItemStatus: %w", err)
	}

	ticket := res.GetTicket()
	if ticket == nil {
		return nil, fmt.Errorf("grpc SetItemStatus: empty ticket in response")
	}
	return ticket, nil
}
