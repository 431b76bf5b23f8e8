// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the request-scoped identity resolved from the session token.
// It is passed explicitly into operations that attribute or gate work by
// caller, instead of living in any process-wide state.
type Actor struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
