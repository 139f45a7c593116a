// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's identifier.
type RegisterOutput struct {
	User *UserOutput
}

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for credential verification and token issuance.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register hashes the password and stores a new credential record.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the email/password pair and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
