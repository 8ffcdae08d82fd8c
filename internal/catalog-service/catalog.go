// Package catalogservice keeps the restaurant reference data in memory:
// menu products, staff accounts, suppliers and staff reclamations.
package catalogservice

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

const maxPasswordBytes = 72

type Catalog struct {
	mu           sync.RWMutex
	products     []*domain.Product
	employees    []*domain.Employee
	suppliers    []*domain.Supplier
	reclamations []*domain.Reclamation // newest first

	bcryptCost int
	now        func() time.Time
	newID      func() string
}

type Option func(*Catalog)

// WithBcryptCost lowers the hashing cost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(c *Catalog) { c.bcryptCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New builds a catalog holding the seed data. A nil seed gives an empty catalog.
func New(seed *Seed, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if seed == nil {
		return c, nil
	}

	products, err := seed.products()
	if err != nil {
		return nil, err
	}
	employees, err := seed.employees(c.bcryptCost)
	if err != nil {
		return nil, err
	}
	c.products = products
	c.employees = employees
	c.suppliers = seed.suppliers()

	slog.Info("catalog seeded",
		"products", len(c.products),
		"employees", len(c.employees),
		"suppliers", len(c.suppliers),
	)
	return c, nil
}

// --- Products ---

func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return values(c.products)
}

func (c *Catalog) Product(id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return *p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (c *Catalog) AddProduct(name string, price decimal.Decimal, category orderdomain.Category, image string) (domain.Product, error) {
	if name == "" || !price.IsPositive() || !category.Valid() {
		return domain.Product{}, domain.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := &domain.Product{
		ID:       c.newID(),
		Name:     name,
		Price:    price,
		Category: category,
		Image:    image,
	}
	c.products = append(c.products, p)
	slog.Info("product added", "product_id", p.ID, "name", p.Name, "price", p.Price.StringFixed(2))
	return *p, nil
}

func (c *Catalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return remove(&c.products, func(p *domain.Product) bool { return p.ID == id })
}

// --- Employees ---

// NewEmployee is the input for AddEmployee; Password is stored hashed.
type NewEmployee struct {
	Name     string
	Username string
	Password string
	Role     domain.Role
	Shift    string
	Active   bool
	Photo    string
	Phone    string
	Address  string
}

func (c *Catalog) Employees() []domain.Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return values(c.employees)
}

func (c *Catalog) Employee(id string) (domain.Employee, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e := c.findEmployee(id); e != nil {
		return *e, nil
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (c *Catalog) AddEmployee(in NewEmployee) (domain.Employee, error) {
	if in.Name == "" || in.Username == "" || !in.Role.Valid() {
		return domain.Employee{}, domain.ErrInvalidInput
	}
	hash, err := c.hashPassword(in.Password)
	if err != nil {
		return domain.Employee{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.employees {
		if e.Username == in.Username {
			return domain.Employee{}, domain.ErrUsernameTaken
		}
	}

	e := &domain.Employee{
		ID:           c.newID(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		Shift:        in.Shift,
		Active:       in.Active,
		Photo:        in.Photo,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	c.employees = append(c.employees, e)
	slog.Info("employee added", "employee_id", e.ID, "role", e.Role)
	return *e, nil
}

// hashPassword accepts passwords of 1 to 72 bytes, the most bcrypt reads.
func (c *Catalog) hashPassword(password string) ([]byte, error) {
	if password == "" || len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be 1 to %d bytes", domain.ErrInvalidInput, maxPasswordBytes)
	}
	return bcrypt.GenerateFromPassword([]byte(password), c.bcryptCost)
}

func (c *Catalog) DeleteEmployee(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return remove(&c.employees, func(e *domain.Employee) bool { return e.ID == id })
}

// ToggleEmployee flips the active flag and returns the updated employee.
func (c *Catalog) ToggleEmployee(id string) (domain.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.findEmployee(id)
	if e == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	e.Active = !e.Active
	return *e, nil
}

func (c *Catalog) UpdateProfile(id string, upd domain.ProfileUpdate) (domain.Employee, error) {
	var hash []byte
	if upd.Password != nil {
		var err error
		hash, err = c.hashPassword(*upd.Password)
		if err != nil {
			return domain.Employee{}, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.findEmployee(id)
	if e == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Photo != nil {
		e.Photo = *upd.Photo
	}
	if upd.Phone != nil {
		e.Phone = *upd.Phone
	}
	if upd.Address != nil {
		e.Address = *upd.Address
	}
	if hash != nil {
		e.PasswordHash = hash
	}
	return *e, nil
}

// Authenticate returns the employee whose username and password match.
func (c *Catalog) Authenticate(username, password string) (domain.Employee, error) {
	c.mu.RLock()
	var found *domain.Employee
	for _, e := range c.employees {
		if e.Username == username {
			found = e
			break
		}
	}
	var emp domain.Employee
	if found != nil {
		emp = *found
	}
	c.mu.RUnlock()

	if found == nil {
		return domain.Employee{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(emp.PasswordHash, []byte(password)); err != nil {
		return domain.Employee{}, domain.ErrInvalidCredentials
	}
	return emp, nil
}

// ActiveStaff counts active employees and the total headcount.
func (c *Catalog) ActiveStaff() (active, total int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.employees {
		if e.Active {
			active++
		}
	}
	return active, len(c.employees)
}

func (c *Catalog) findEmployee(id string) *domain.Employee {
	for _, e := range c.employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// --- Suppliers ---

func (c *Catalog) Suppliers() []domain.Supplier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return values(c.suppliers)
}

func (c *Catalog) AddSupplier(name, contact, category string) (domain.Supplier, error) {
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := &domain.Supplier{
		ID:       c.newID(),
		Name:     name,
		Contact:  contact,
		Category: category,
	}
	c.suppliers = append(c.suppliers, s)
	return *s, nil
}

func (c *Catalog) DeleteSupplier(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return remove(&c.suppliers, func(s *domain.Supplier) bool { return s.ID == id })
}

// --- Reclamations ---

func (c *Catalog) Reclamations() []domain.Reclamation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Reclamation, len(c.reclamations))
	for i, r := range c.reclamations {
		out[i] = *r
		out[i].Replies = slices.Clone(r.Replies)
	}
	return out
}

// AddReclamation files a new OPEN reclamation on behalf of an employee.
func (c *Catalog) AddReclamation(employeeID, message string) (domain.Reclamation, error) {
	if message == "" {
		return domain.Reclamation{}, domain.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	author := c.findEmployee(employeeID)
	if author == nil {
		return domain.Reclamation{}, domain.ErrNotFound
	}

	r := &domain.Reclamation{
		ID:         c.newID(),
		EmployeeID: author.ID,
		AuthorName: author.Name,
		Message:    message,
		CreatedAt:  c.now(),
		Status:     domain.ReclamationOpen,
	}
	c.reclamations = append([]*domain.Reclamation{r}, c.reclamations...)
	slog.Info("reclamation filed", "reclamation_id", r.ID, "employee_id", author.ID)
	return *r, nil
}

func (c *Catalog) ResolveReclamation(id string) (domain.Reclamation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.findReclamation(id)
	if r == nil {
		return domain.Reclamation{}, domain.ErrNotFound
	}
	r.Status = domain.ReclamationResolved
	out := *r
	out.Replies = slices.Clone(r.Replies)
	return out, nil
}

func (c *Catalog) ReplyToReclamation(id, authorID, message string) (domain.Reclamation, error) {
	if message == "" {
		return domain.Reclamation{}, domain.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.findReclamation(id)
	if r == nil {
		return domain.Reclamation{}, domain.ErrNotFound
	}
	author := c.findEmployee(authorID)
	if author == nil {
		return domain.Reclamation{}, domain.ErrNotFound
	}

	r.Replies = append(r.Replies, domain.ReclamationReply{
		ID:         c.newID(),
		AuthorName: author.Name,
		Message:    message,
		CreatedAt:  c.now(),
	})
	out := *r
	out.Replies = slices.Clone(r.Replies)
	return out, nil
}

func (c *Catalog) findReclamation(id string) *domain.Reclamation {
	for _, r := range c.reclamations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func values[T any](in []*T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = *v
	}
	return out
}

func remove[T any](list *[]*T, match func(*T) bool) error {
	idx := slices.IndexFunc(*list, match)
	if idx < 0 {
		return domain.ErrNotFound
	}
	*list = slices.Delete(slices.Clone(*list), idx, idx+1)
	return nil
}
