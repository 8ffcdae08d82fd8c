package httpx

import "github.com/shopspring/decimal"

// Money is always rendered with two decimals, e.g. "21.00".

type CartLineDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SubmitCartRequest struct {
	ServerName string        `json:"server_name"`
	Items      []CartLineDTO `json:"items"`
}

type AddItemsRequest struct {
	Items []CartLineDTO `json:"items"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type PaymentRequest struct {
	Method string `json:"method"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	TableID       int                 `json:"table_id"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	ServerName    string              `json:"server_name"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Version       uint64              `json:"version"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
	Status    string `json:"status"`
}

type TableResponse struct {
	ID       int            `json:"id"`
	Occupied bool           `json:"occupied"`
	Order    *OrderResponse `json:"order,omitempty"`
}

type HistoryEntryResponse struct {
	Action     string `json:"action"`
	Status     string `json:"status"`
	ItemID     string `json:"item_id,omitempty"`
	ItemStatus string `json:"item_status,omitempty"`
	Actor      string `json:"actor,omitempty"`
	Total      string `json:"total"`
	Version    uint64 `json:"version"`
	TraceID    string `json:"trace_id,omitempty"`
	At         string `json:"at"`
}

type ReportResponse struct {
	TotalSales      string            `json:"total_sales"`
	PaidOrders      int               `json:"paid_orders"`
	ActiveOrders    int               `json:"active_orders"`
	CancelledOrders int               `json:"cancelled_orders"`
	SalesByCategory map[string]string `json:"sales_by_category"`
	RecentOrders    []OrderResponse   `json:"recent_orders"`
	StaffOnline     int               `json:"staff_online"`
	StaffTotal      int               `json:"staff_total"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

type EmployeeRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Shift    string `json:"shift"`
	Active   bool   `json:"active"`
	Photo    string `json:"photo"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ProfileRequest leaves absent fields untouched.
type ProfileRequest struct {
	Name     *string `json:"name"`
	Photo    *string `json:"photo"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Shift    string `json:"shift"`
	Active   bool   `json:"active"`
	Photo    string `json:"photo,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type SupplierRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}

type SupplierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}

type ReclamationRequest struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type ReplyRequest struct {
	AuthorID string `json:"author_id"`
	Message  string `json:"message"`
}

type ReclamationResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	AuthorName string          `json:"author_name"`
	Message    string          `json:"message"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	Replies    []ReplyResponse `json:"replies"`
}

type ReplyResponse struct {
	ID         string `json:"id"`
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
