package impl

import (
	"context"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo, hasher
}

func TestUserService_ListUsers(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	stored := []*entity.User{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
	}
	userRepo.EXPECT().ListAll(ctx).Return(stored, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().ListAll(ctx).Return(nil, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)
}

func TestUserService_GetUser_Success(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil)

	user, err := svc.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_CreateUser_Success(t *testing.T) {
	svc, userRepo, hasher := newUserServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$storedhash", nil).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "$2a$10$storedhash", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_CreateUser_EmailTaken(t *testing.T) {
	svc, userRepo, hasher := newUserServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$storedhash", nil).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	user, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_UpdateUser_WithoutPassword(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$originalhash",
		}, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Alice Cooper", user.Name)
			// No password in the input, so the stored hash stays untouched.
			assert.Equal(t, "$2a$10$originalhash", user.PasswordHash)
		}).
		Return(nil)

	user, err := svc.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Name:  "Alice Cooper",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
}

func TestUserService_UpdateUser_WithPassword(t *testing.T) {
	svc, userRepo, hasher := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	newPassword := "brand-new-secret"

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$originalhash",
		}, nil)
	hasher.EXPECT().Hash(newPassword).Return("$2a$10$rehashedhash", nil).Once()
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "$2a$10$rehashedhash", user.PasswordHash)
		}).
		Return(nil)

	_, err := svc.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: &newPassword,
	})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Name:  "Ghost",
		Email: "ghost@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	user, err := svc.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Name:  "Alice",
		Email: "bob@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, userID))
}

func TestUserService_DeleteUser_Twice(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	userRepo.EXPECT().Delete(ctx, userID).Return(nil).Once()
	userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound).Once()

	require.NoError(t, svc.DeleteUser(ctx, userID))

	err := svc.DeleteUser(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
