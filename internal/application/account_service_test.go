package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack-io/logitrack/internal/infrastructure/memory"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return NewAccountService(store.Users(), jwt, nil, nil)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")

	got, _, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice@example.com", "different1", "Other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email uniqueness is case-insensitive.
	_, _, err = svc.Register(ctx, "ALICE@Example.COM", "different1", "Other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUniformFailure(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	// Unknown email and wrong password fail identically.
	_, _, errUnknown := svc.Login(ctx, "bob@example.com", "password123")
	_, _, errWrongPwd := svc.Login(ctx, "alice@example.com", "wrongwrong")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPwd, ErrInvalidCredentials)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice@Example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "password123")
	assert.NoError(t, err)
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	// An access token is not a refresh token.
	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIdempotent(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	// No session, no redis: must not panic or error.
	svc.Logout(ctx, "nonexistent")
	svc.Logout(ctx, "")
}

func TestProfile(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	got, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = svc.Profile(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
