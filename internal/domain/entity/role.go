// Package entity contains the core business objects of the application.
package entity

// Role defines the authorization role attached to an account.
type Role string

// Defines the roles an account can hold.
const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}
