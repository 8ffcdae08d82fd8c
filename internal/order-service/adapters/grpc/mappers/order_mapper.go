package mappers

import (
	"time"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/stationv1"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

func TicketFromOrder(o *domain.Order) *stationv1.Ticket {
	if o == nil {
		return nil
	}

	return &stationv1.Ticket{
		OrderId:   o.ID,
		TableId:   int32(o.TableID),
		Status:    string(o.Status),
		Items:     mapItemsToTicket(o.Items),
		Version:   o.Version,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func TicketsFromOrders(orders []*domain.Order) []*stationv1.Ticket {
	tickets := make([]*stationv1.Ticket, len(orders))
	for i, o := range orders {
		tickets[i] = TicketFromOrder(o)
	}
	return tickets
}

// ItemStatusFromWire parses a status sent by a terminal. Unknown values
// return false.
func ItemStatusFromWire(s string) (domain.ItemStatus, bool) {
	st := domain.ItemStatus(s)
	return st, st.Valid()
}

func CategoryFromWire(s string) (domain.Category, bool) {
	c := domain.Category(s)
	return c, c.Valid()
}

func mapItemsToTicket(items []domain.OrderItem) []*stationv1.TicketItem {
	out := make([]*stationv1.TicketItem, len(items))
	for i, it := range items {
		out[i] = &stationv1.TicketItem{
			Id:       it.ID,
			Name:     it.Name,
			Category: string(it.Category),
			Quantity: int32(it.Quantity),
			Status:   string(it.Status),
		}
	}
	return out
}
