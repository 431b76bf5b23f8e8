package usecase

import (
	"context"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCustomerInput defines the data an administrator supplies when opening
// a customer account. No password is accepted; credentials are generated
// server-side and returned exactly once.
type CreateCustomerInput struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateCustomerInput carries a partial customer profile update.
// Nil fields are left as-is. A supplied password rotates the credential;
// the role is not updatable here.
type UpdateCustomerInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// SearchCustomersInput defines the customer search filters.
type SearchCustomersInput struct {
	Name  string `query:"name"`
	Email string `query:"email"`
}

// --- Output DTOs ---

// CreateCustomerOutput returns the new account together with its one-time
// generated password. The plaintext never leaves this response.
type CreateCustomerOutput struct {
	Customer          *entity.Account `json:"customer"`
	TemporaryPassword string          `json:"temporaryPassword"`
}

// CustomerUsecase defines the interface for customer management operations.
// All operations are restricted to administrators at the delivery layer.
type CustomerUsecase interface {
	Create(ctx context.Context, input *CreateCustomerInput) (*CreateCustomerOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Search(ctx context.Context, input *SearchCustomersInput) ([]*entity.Account, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
