package httpx

import (
	"time"

	"github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/app"
	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func mapOrderToResponse(o *orderdomain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		TableID:       o.TableID,
		Status:        string(o.Status),
		Total:         o.Total.StringFixed(2),
		ServerName:    o.ServerName,
		PaymentMethod: string(o.PaymentMethod),
		Version:       o.Version,
		Items:         mapItems(o.Items),
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func mapOrders(orders []*orderdomain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = mapOrderToResponse(o)
	}
	return out
}

func mapItems(items []orderdomain.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, it := range items {
		out[i] = OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Category:  string(it.Category),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Subtotal:  it.Subtotal().StringFixed(2),
			Status:    string(it.Status),
		}
	}
	return out
}

func mapTables(tables []app.Table) []TableResponse {
	out := make([]TableResponse, len(tables))
	for i, t := range tables {
		out[i] = TableResponse{ID: t.ID, Occupied: t.Occupied}
		if t.Order != nil {
			o := mapOrderToResponse(t.Order)
			out[i].Order = &o
		}
	}
	return out
}

func mapHistory(entries []orderlog.Entry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			Action:     string(e.Action),
			Status:     e.Status,
			ItemID:     e.ItemID,
			ItemStatus: e.ItemStatus,
			Actor:      e.Actor,
			Total:      e.Total,
			Version:    e.Version,
			TraceID:    e.TraceID,
			At:         formatTime(e.At),
		}
	}
	return out
}

func mapReport(r app.Report) ReportResponse {
	sales := make(map[string]string, len(r.SalesByCategory))
	for c, v := range r.SalesByCategory {
		sales[string(c)] = v.StringFixed(2)
	}
	return ReportResponse{
		TotalSales:      r.TotalSales.StringFixed(2),
		PaidOrders:      r.PaidOrders,
		ActiveOrders:    r.ActiveOrders,
		CancelledOrders: r.CancelledOrders,
		SalesByCategory: sales,
		RecentOrders:    mapOrders(r.Recent),
		StaffOnline:     r.StaffOnline,
		StaffTotal:      r.StaffTotal,
	}
}

func mapProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.StringFixed(2),
		Category: string(p.Category),
		Image:    p.Image,
	}
}

// mapEmployee never exposes the password hash.
func mapEmployee(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Username: e.Username,
		Role:     string(e.Role),
		Shift:    e.Shift,
		Active:   e.Active,
		Photo:    e.Photo,
		Phone:    e.Phone,
		Address:  e.Address,
	}
}

func mapSupplier(s domain.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Category: s.Category}
}

func mapReclamation(r domain.Reclamation) ReclamationResponse {
	replies := make([]ReplyResponse, len(r.Replies))
	for i, rep := range r.Replies {
		replies[i] = ReplyResponse{
			ID:         rep.ID,
			AuthorName: rep.AuthorName,
			Message:    rep.Message,
			CreatedAt:  formatTime(rep.CreatedAt),
		}
	}
	return ReclamationResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		AuthorName: r.AuthorName,
		Message:    r.Message,
		Status:     string(r.Status),
		CreatedAt:  formatTime(r.CreatedAt),
		Replies:    replies,
	}
}

func mapAll[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
