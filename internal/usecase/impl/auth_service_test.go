package impl

import (
	"context"
	"testing"
	"time"

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

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	// The constructor prepares one decoy hash up front.
	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$10$decoydecoydecoydecoydecoy", nil).Once()

	svc, err := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc, userRepo, hasher, tokenSvc
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$storedhash", nil).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "$2a$10$storedhash", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("$2a$10$storedhash", nil).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$storedhash",
	}

	userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret123", "$2a$10$storedhash").Return(true).Once()
	tokenSvc.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	tokenSvc.EXPECT().Generate(userID, 15*time.Minute).Return("signed.token.value", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$storedhash",
	}

	userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "$2a$10$storedhash").Return(false).Once()

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// The unknown-email path still performs exactly one bcrypt comparison,
	// against the decoy hash, so its timing matches a wrong password.
	hasher.EXPECT().Check("whatever", "$2a$10$decoydecoydecoydecoydecoy").Return(false).Once()

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	// Same error as a wrong password: responses must not reveal which emails exist.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$storedhash",
	}

	userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret123", "$2a$10$storedhash").Return(true).Once()
	tokenSvc.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	tokenSvc.EXPECT().Generate(userID, 15*time.Minute).Return("", errors.New("signing failed"))

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestNewAuthService_DecoyHashFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.New("cost out of range")).Once()

	svc, err := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
	require.Error(t, err)
	assert.Nil(t, svc)
}
