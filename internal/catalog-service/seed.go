package catalogservice

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/restaurant-pos/internal/catalog-service/domain"
	orderdomain "github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of a catalog, as written in YAML.
type Seed struct {
	Products  []seedProduct  `yaml:"products"`
	Employees []seedEmployee `yaml:"employees"`
	Suppliers []seedSupplier `yaml:"suppliers"`
}

type seedProduct struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
}

type seedEmployee struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Shift    string `yaml:"shift"`
	Active   bool   `yaml:"active"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
}

type seedSupplier struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Contact  string `yaml:"contact"`
	Category string `yaml:"category"`
}

// DefaultSeed returns the demo dataset bundled with the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("catalog: parse seed: %w", err)
	}
	return &s, nil
}

func (s *Seed) products() ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(s.Products))
	for _, p := range s.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog: product %q price %q: %w", p.ID, p.Price, err)
		}
		category := orderdomain.Category(p.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("catalog: product %q: unknown category %q", p.ID, p.Category)
		}
		out = append(out, &domain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    price,
			Category: category,
			Image:    p.Image,
		})
	}
	return out, nil
}

func (s *Seed) employees(cost int) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		role := domain.Role(e.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("catalog: employee %q: unknown role %q", e.ID, e.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("catalog: hash password for %q: %w", e.Username, err)
		}
		out = append(out, &domain.Employee{
			ID:           e.ID,
			Name:         e.Name,
			Username:     e.Username,
			PasswordHash: hash,
			Role:         role,
			Shift:        e.Shift,
			Active:       e.Active,
			Phone:        e.Phone,
			Address:      e.Address,
		})
	}
	return out, nil
}

func (s *Seed) suppliers() []*domain.Supplier {
	out := make([]*domain.Supplier, 0, len(s.Suppliers))
	for _, sp := range s.Suppliers {
		out = append(out, &domain.Supplier{
			ID:       sp.ID,
			Name:     sp.Name,
			Contact:  sp.Contact,
			Category: sp.Category,
		})
	}
	return out
}
