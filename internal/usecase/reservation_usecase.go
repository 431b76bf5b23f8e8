package usecase

import (
	"context"
	"time"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// EmergencyContactInput mirrors entity.EmergencyContact at the boundary.
type EmergencyContactInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// CreateReservationInput defines the data required to book a tour.
// CustomerID is honored only for administrators; customers always book
// for themselves regardless of what the payload claims.
type CreateReservationInput struct {
	TourID          uuid.UUID              `json:"tourId" validate:"required"`
	CustomerID      *uuid.UUID             `json:"customerId"`
	Date            time.Time              `json:"date" validate:"required"`
	NumberOfPeople  int                    `json:"numberOfPeople" validate:"required,gt=0"`
	SpecialRequests string                 `json:"specialRequests"`
	ContactPhone    string                 `json:"contactPhone"`
	Emergency       *EmergencyContactInput `json:"emergencyContact"`
}

// UpdateReservationInput carries a partial reservation update. Status is
// deliberately absent; status changes go through UpdateStatus so the
// transition guard cannot be bypassed.
type UpdateReservationInput struct {
	Date            *time.Time             `json:"date"`
	NumberOfPeople  *int                   `json:"numberOfPeople" validate:"omitempty,gt=0"`
	SpecialRequests *string                `json:"specialRequests"`
	ContactPhone    *string                `json:"contactPhone"`
	Emergency       *EmergencyContactInput `json:"emergencyContact"`
}

// UpdateReservationStatusInput names the target lifecycle state.
type UpdateReservationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// ReservationUsecase defines the interface for booking operations.
type ReservationUsecase interface {
	Create(ctx context.Context, actor Actor, input *CreateReservationInput) (*entity.Reservation, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Reservation, error)
	List(ctx context.Context) ([]*entity.Reservation, error)
	ListMine(ctx context.Context, actor Actor) ([]*entity.Reservation, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateReservationInput) (*entity.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *UpdateReservationStatusInput) (*entity.Reservation, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
