package repository

import (
	"context"
	"errors"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTourNotFound is a domain-specific error returned when a tour is not found.
var ErrTourNotFound = errors.New("tour not found")

// TourSearchFilter narrows a catalog listing. All provided filters apply
// conjunctively; zero values are ignored.
type TourSearchFilter struct {
	Destination string            // Case-insensitive substring.
	MinPrice    *float64          // Inclusive lower bound.
	MaxPrice    *float64          // Inclusive upper bound.
	Difficulty  entity.Difficulty // Exact match.
}

// TourRepository defines the standard operations for tour catalog persistence.
type TourRepository interface {
	// FindByID retrieves a single tour by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)

	// FindAll retrieves the whole catalog in insertion order.
	FindAll(ctx context.Context) ([]*entity.Tour, error)

	// Search retrieves tours matching the filter.
	Search(ctx context.Context, filter TourSearchFilter) ([]*entity.Tour, error)

	// Create persists a new tour entity to the storage.
	Create(ctx context.Context, tour *entity.Tour) error

	// Update modifies an existing tour entity in the storage.
	Update(ctx context.Context, tour *entity.Tour) error

	// Delete removes a tour. Reservations referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
