package domain

import (
	"github.com/shopspring/decimal"

	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Category orderdomain.Category
	Image    string
}

type Supplier struct {
	ID       string
	Name     string
	Contact  string
	Category string
}
