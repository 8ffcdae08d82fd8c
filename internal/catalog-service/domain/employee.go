package domain

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleServer     Role = "SERVER"
	RoleBarista    Role = "BARISTA"
	RoleCook       Role = "COOK"
	RoleCashier    Role = "CASHIER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleServer, RoleBarista, RoleCook, RoleCashier:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	Name         string
	Username     string
	PasswordHash []byte
	Role         Role
	Shift        string
	Active       bool
	Photo        string
	Phone        string
	Address      string
}

// ProfileUpdate carries the fields an employee may change on their own profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Photo    *string
	Phone    *string
	Address  *string
	Password *string
}
