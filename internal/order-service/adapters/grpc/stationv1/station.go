// Package stationv1 declares the pos.station.v1.Station gRPC service used
// by the bar and kitchen display terminals. Messages travel as JSON.
package stationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName                          = "pos.station.v1.Station"
	Station_ListTickets_FullMethodName   = "/pos.station.v1.Station/ListTickets"
	Station_SetItemStatus_FullMethodName = "/pos.station.v1.Station/SetItemStatus"
)

type ListTicketsRequest struct {
	// Category is DRINK for the bar, FOOD for the kitchen.
	Category string `json:"category"`
}

type ListTicketsResponse struct {
	Tickets []*Ticket `json:"tickets"`
}

type SetItemStatusRequest struct {
	OrderId string `json:"order_id"`
	ItemId  string `json:"item_id"`
	Status  string `json:"status"`
	// Station names the terminal making the change; it ends up in the order log.
	Station string `json:"station,omitempty"`
}

type SetItemStatusResponse struct {
	Ticket *Ticket `json:"ticket"`
}

// Ticket is an order as a station sees it.
type Ticket struct {
	OrderId   string        `json:"order_id"`
	TableId   int32         `json:"table_id"`
	Status    string        `json:"status"`
	Items     []*TicketItem `json:"items"`
	Version   uint64        `json:"version"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

type TicketItem struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int32  `json:"quantity"`
	Status   string `json:"status"`
}

func (r *ListTicketsRequest) GetCategory() string {
	if r == nil {
		return ""
	}
	return r.Category
}

func (r *ListTicketsResponse) GetTickets() []*Ticket {
	if r == nil {
		return nil
	}
	return r.Tickets
}

func (r *SetItemStatusResponse) GetTicket() *Ticket {
	if r == nil {
		return nil
	}
	return r.Ticket
}

// StationClient is the client API for the Station service.
type StationClient interface {
	ListTickets(ctx context.Context, in *ListTicketsRequest, opts ...grpc.CallOption) (*ListTicketsResponse, error)
	SetItemStatus(ctx context.Context, in *SetItemStatusRequest, opts ...grpc.CallOption) (*SetItemStatusResponse, error)
}

type stationClient struct {
	cc grpc.ClientConnInterface
}

func NewStationClient(cc grpc.ClientConnInterface) StationClient {
	return &stationClient{cc: cc}
}

func (c *stationClient) ListTickets(ctx context.Context, in *ListTicketsRequest, opts ...grpc.CallOption) (*ListTicketsResponse, error) {
	out := new(ListTicketsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, Station_ListTickets_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stationClient) SetItemStatus(ctx context.Context, in *SetItemStatusRequest, opts ...grpc.CallOption) (*SetItemStatusResponse, error) {
	out := new(SetItemStatusResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, Station_SetItemStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StationServer is the server API for the Station service.
type StationServer interface {
	ListTickets(context.Context, *ListTicketsRequest) (*ListTicketsResponse, error)
	SetItemStatus(context.Context, *SetItemStatusRequest) (*SetItemStatusResponse, error)
}

// UnimplementedStationServer can be embedded to keep servers compiling when
// methods are added.
type UnimplementedStationServer struct{}

func (UnimplementedStationServer) ListTickets(context.Context, *ListTicketsRequest) (*ListTicketsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTickets not implemented")
}

func (UnimplementedStationServer) SetItemStatus(context.Context, *SetItemStatusRequest) (*SetItemStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetItemStatus not implemented")
}

func RegisterStationServer(s grpc.ServiceRegistrar, srv StationServer) {
	s.RegisterService(&Station_ServiceDesc, srv)
}

func _Station_ListTickets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTicketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationServer).ListTickets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Station_ListTickets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationServer).ListTickets(ctx, req.(*ListTicketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Station_SetItemStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetItemStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StationServer).SetItemStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Station_SetItemStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StationServer).SetItemStatus(ctx, req.(*SetItemStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Station_ServiceDesc is the grpc.ServiceDesc for the Station service.
var Station_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTickets",
			Handler:    _Station_ListTickets_Handler,
		},
		{
			MethodName: "SetItemStatus",
			Handler:    _Station_SetItemStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/station/v1",
}
