package usecase

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a user record directly.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput defines the mutable fields of a user record. A nil Password
// leaves the stored hash untouched; a non-nil one re-hashes before persisting.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password *string
}

// UserOutput is the externally visible projection of a user record.
// The password hash never leaves the service layer.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserOutput maps a domain entity to its response projection.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserUsecase defines the interface for the token-gated user record operations.
// Every method expects the caller to have passed the access gate; the
// authenticated subject travels in ctx.
type UserUsecase interface {
	// ListUsers returns all stored user records.
	ListUsers(ctx context.Context) ([]*UserOutput, error)

	// GetUser returns a single user record by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*UserOutput, error)

	// CreateUser stores a new user record with a hashed password.
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)

	// UpdateUser modifies name, email, and optionally the password of a record.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*UserOutput, error)

	// DeleteUser removes a record. Deleting an already deleted record reports not-found.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
