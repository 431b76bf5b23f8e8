package repository

import (
	"context"
	"errors"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is a domain-specific error returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines the standard operations for reservation persistence.
// Writes are last-write-wins; the storage guarantees atomicity per single row only.
type ReservationRepository interface {
	// FindByID retrieves a single reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindAll retrieves every reservation in insertion order.
	FindAll(ctx context.Context) ([]*entity.Reservation, error)

	// FindByCustomer retrieves the reservations belonging to one customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error)

	// CountByTour returns how many reservations reference the given tour.
	CountByTour(ctx context.Context, tourID uuid.UUID) (int64, error)

	// Create persists a new reservation entity to the storage.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// Update modifies an existing reservation entity in the storage.
	Update(ctx context.Context, reservation *entity.Reservation) error

	// Delete removes a reservation permanently. No archival copy is kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
