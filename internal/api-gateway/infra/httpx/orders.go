package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/app"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapTables(h.orders.Tables()))
}

// SubmitCart answers 201 when a new order was opened for the table and 200
// when the cart was appended to the open one.
func (h *Handler) SubmitCart(w http.ResponseWriter, r *http.Request) {
	table, err := strconv.Atoi(chi.URLParam(r, "table"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_table", "table must be a number")
		return
	}

	var req SubmitCartRequest
	if !decode(w, r, &req) {
		return
	}

	serverName := req.ServerName
	if serverName == "" {
		serverName = actor(r)
	}
	idempKey, _ := r.Context().Value(constants.ContextKeyIdempotencyKey).(string)
	requestID, _ := r.Context().Value(constants.ContextKeyRequestID).(string)

	slog.InfoContext(r.Context(), "submitting cart", "request_id", requestID, "table_id", table, "lines", len(req.Items))

	order, created, err := h.orders.SubmitCart(r.Context(), app.SubmitCartInput{
		TableID:        table,
		Lines:          cartLines(req.Items),
		ServerName:     serverName,
		IdempotencyKey: idempKey,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, mapOrderToResponse(order))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Orders(domain.OrderStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrders(orders))
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Order(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.orders.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapHistory(entries))
}

func (h *Handler) AddItems(w http.ResponseWriter, r *http.Request) {
	var req AddItemsRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orders.AddItems(r.Context(), chi.URLParam(r, "id"), cartLines(req.Items), actor(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orders.SetItemStatus(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "itemID"),
		domain.ItemStatus(req.Status),
		actor(r),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

// UpdateOrderStatus is the admin override; CANCELLED goes through Cancel.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}

	var (
		order *domain.Order
		err   error
	)
	orderID := chi.URLParam(r, "id")
	if status := domain.OrderStatus(req.Status); status == domain.StatusCancelled {
		order, err = h.orders.Cancel(r.Context(), orderID, actor(r))
	} else {
		order, err = h.orders.SetOrderStatus(r.Context(), orderID, status, actor(r))
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) PayOrder(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orders.Pay(r.Context(), chi.URLParam(r, "id"), domain.PaymentMethod(req.Method), actor(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) StationTickets(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.StationQueue(domain.Category(chi.URLParam(r, "category")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrders(orders))
}

func (h *Handler) SummaryReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapReport(h.orders.Report()))
}

func cartLines(items []CartLineDTO) []app.CartLine {
	lines := make([]app.CartLine, len(items))
	for i, it := range items {
		lines[i] = app.CartLine{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return lines
}
