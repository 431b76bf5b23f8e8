package usecase

import (
	"context"
	"time"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTourInput defines the data required to create a catalog entry.
// Duration and price must be strictly positive; malformed numeric input is
// rejected at the boundary instead of being persisted as garbage.
type CreateTourInput struct {
	Name           string      `json:"name" validate:"required"`
	Description    string      `json:"description" validate:"required"`
	Duration       int         `json:"duration" validate:"required,gt=0"`
	Price          float64     `json:"price" validate:"required,gt=0"`
	AvailableDates []time.Time `json:"availableDates"`
	Image          string      `json:"image"`
	MaxCapacity    int         `json:"maxCapacity" validate:"omitempty,gt=0"`
	Destination    string      `json:"destination" validate:"required"`
	Includes       []string    `json:"includes"`
	Difficulty     string      `json:"difficulty" validate:"omitempty,oneof=easy moderate hard"`
}

// UpdateTourInput carries a partial tour update. Nil fields are left as-is.
type UpdateTourInput struct {
	Name           *string      `json:"name"`
	Description    *string      `json:"description"`
	Duration       *int         `json:"duration" validate:"omitempty,gt=0"`
	Price          *float64     `json:"price" validate:"omitempty,gt=0"`
	AvailableDates *[]time.Time `json:"availableDates"`
	Image          *string      `json:"image"`
	MaxCapacity    *int         `json:"maxCapacity" validate:"omitempty,gt=0"`
	Destination    *string      `json:"destination"`
	Includes       *[]string    `json:"includes"`
	Difficulty     *string      `json:"difficulty" validate:"omitempty,oneof=easy moderate hard"`
}

// SearchToursInput defines the catalog search filters. All provided filters
// apply conjunctively; absent filters are ignored.
type SearchToursInput struct {
	Destination string   `query:"destination"`
	MinPrice    *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice    *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	Difficulty  string   `query:"difficulty" validate:"omitempty,oneof=easy moderate hard"`
}

// TourUsecase defines the interface for catalog business operations.
type TourUsecase interface {
	Create(ctx context.Context, input *CreateTourInput) (*entity.Tour, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	List(ctx context.Context) ([]*entity.Tour, error)
	Search(ctx context.Context, input *SearchToursInput) ([]*entity.Tour, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateTourInput) (*entity.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
