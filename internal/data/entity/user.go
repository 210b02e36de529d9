package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the known values. Storage keeps
// the role as plain text, so unknown values are rejected at the boundary.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	ContactNo    string   `db:"contact_no"`
	Barangay     string   `db:"barangay"`
	Sitio        string   `db:"sitio"`
}
