package ports

import (
	"github.com/shopspring/decimal"

	catalogservice "github.com/jcmexdev/restaurant-pos/internal/catalog-service"
	"github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

// Catalog is the reference data behind the admin console and the login screen.
type Catalog interface {
	Authenticate(username, password string) (domain.Employee, error)

	Products() []domain.Product
	AddProduct(name string, price decimal.Decimal, category orderdomain.Category, image string) (domain.Product, error)
	DeleteProduct(id string) error

	Employees() []domain.Employee
	Employee(id string) (domain.Employee, error)
	AddEmployee(in catalogservice.NewEmployee) (domain.Employee, error)
	DeleteEmployee(id string) error
	ToggleEmployee(id string) (domain.Employee, error)
	UpdateProfile(id string, upd domain.ProfileUpdate) (domain.Employee, error)

	Suppliers() []domain.Supplier
	AddSupplier(name, contact, category string) (domain.Supplier, error)
	DeleteSupplier(id string) error

	Reclamations() []domain.Reclamation
	AddReclamation(employeeID, message string) (domain.Reclamation, error)
	ResolveReclamation(id string) (domain.Reclamation, error)
	ReplyToReclamation(id, authorID, message string) (domain.Reclamation, error)
}

var _ Catalog = (*catalogservice.Catalog)(nil)
