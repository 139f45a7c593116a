package usecase

import "context"

// SeedUsecase loads configured example accounts into an empty user store.
type SeedUsecase interface {
	// EnsureExampleUsers registers the configured example accounts when seeding
	// is enabled and the store is empty. Passwords go through the hasher,
	// exactly as for a normal registration.
	EnsureExampleUsers(ctx context.Context) error
}
