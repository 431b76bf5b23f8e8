// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountSearchFilter narrows a role-scoped account listing.
// Both fields are case-insensitive substrings; empty fields are ignored.
type AccountSearchFilter struct {
	Name  string // Matches full name or username.
	Email string
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its login handle.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByRole retrieves every account holding the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// Search retrieves accounts of the given role matching the filter.
	Search(ctx context.Context, role entity.Role, filter AccountSearchFilter) ([]*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. Reservations referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
