package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a login-capable identity in the system. Customers are
// accounts holding the customer role; their profile fields double as the
// contact information for reservations.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the account holds the administrator role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Summary projects the account into the shape embedded in reservation
// responses.
func (a *Account) Summary() *CustomerSummary {
	if a == nil {
		return nil
	}

	return &CustomerSummary{
		ID:       a.ID,
		Username: a.Username,
		FullName: a.FullName,
		Email:    a.Email,
		Phone:    a.Phone,
	}
}
