package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface. Every operation assumes
// the access gate already verified the caller; the subject identifier is read
// from ctx for audit logging only, since the authorization model is flat.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, annotated with the
// authenticated subject when the gate recorded one.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if subjectID, ok := deliverycontext.SubjectID(ctx); ok {
		logger = logger.With(slog.Any("subjectID", subjectID))
	}

	return logger
}

// ListUsers returns all stored user records.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}

// GetUser returns a single user record by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserOutput(user), nil
}

// CreateUser stores a new user record with a hashed password.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	output, err := createUserRecord(ctx, srv.userRepo, srv.hasher, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Any("userID", output.ID))

	return output, nil
}

// UpdateUser modifies name and email, and re-hashes the password only when a
// new one was supplied. Without a password field the stored hash is untouched.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user failed")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	user.Name = input.Name
	user.Email = input.Email

	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during update")
		}
		user.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("update user failed")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user failed")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}

// DeleteUser removes a record. Deleting the same record twice reports
// not-found the second time; that is the defined behavior, not an error.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete user failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// createUserRecord is shared by the authenticated create operation and the
// startup seeder: hash the password, persist, map duplicate emails.
func createUserRecord(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	input *usecase.CreateUserInput,
) (*usecase.UserOutput, error) {
	hashedPassword, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("create user failed")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return usecase.NewUserOutput(newUser), nil
}
