package impl

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	Config   *config.Config
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		cfg:      params.Config,
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// EnsureExampleUsers registers the configured example accounts when seeding is
// enabled and the store is still empty. Passwords go through the hasher like
// any normal registration, so the plaintext never reaches the database.
func (srv *seedService) EnsureExampleUsers(ctx context.Context) error {
	if srv.cfg.Seed == nil || !srv.cfg.Seed.Enabled {
		return nil
	}

	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users before seeding")
	}
	if count > 0 {
		srv.logger.Debug("Skipping seed, user store is not empty", slog.Int64("count", count))

		return nil
	}

	for _, seedUser := range srv.cfg.Seed.Users {
		input := &usecase.CreateUserInput{
			Name:     seedUser.Name,
			Email:    seedUser.Email,
			Password: seedUser.Password,
		}

		output, err := createUserRecord(ctx, srv.userRepo, srv.hasher, input)
		if err != nil {
			return errors.Wrapf(err, "failed to seed user %s", seedUser.Email)
		}

		srv.logger.Info("Seeded example user",
			slog.Any("userID", output.ID),
			slog.String("email", output.Email))
	}

	return nil
}
