package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestTokenConfig("", 0))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Generate(userID, svc.AccessTokenTTL())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate(uuid.New(), time.Hour)
	require.NoError(t, err)

	// Flip one character of the payload.
	tampered := []byte(token)
	middle := len(tampered) / 2
	if tampered[middle] == 'a' {
		tampered[middle] = 'b'
	} else {
		tampered[middle] = 'a'
	}

	_, err = svc.Validate(string(tampered))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Validate(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	}
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret", 0))
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTTL, svc.AccessTokenTTL())
}
