package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/samar-devp/workforce-backend-go/internal/domain/auth"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubUserRepository struct {
	usersByEmail map[string]user.User
	usersByID    map[string]user.User
}

func (s *stubUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := s.usersByEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := s.usersByID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepository) Create(_ context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (s *stubUserRepository) UpdatePassword(context.Context, string, string) error {
	return nil
}

func newTestAuthService(users ...user.User) (auth.AuthService, jwt.Service) {
	repo := &stubUserRepository{
		usersByEmail: make(map[string]user.User),
		usersByID:    make(map[string]user.User),
	}
	for _, u := range users {
		repo.usersByEmail[u.Email] = u
		repo.usersByID[u.ID] = u
	}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService, slog.New(slog.NewTextHandler(io.Discard, nil))), jwtService
}

func testUser(t *testing.T, password string) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)
	adminID := "admin-1"
	return user.User{
		ID:           "user-1",
		Email:        "worker@example.com",
		PasswordHash: &hash,
		Role:         user.RoleEmployee,
		AdminID:      &adminID,
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with valid credentials", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, string(user.RoleEmployee), tokens.Role)
		assert.Greater(t, tokens.RefreshExpiresAt, tokens.AccessExpiresAt)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("rejects inactive user", func(t *testing.T) {
		inactive := testUser(t, "password123")
		inactive.IsActive = false
		svc, _ := newTestAuthService(inactive)

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, user.ErrUserInactive)
	})

	t.Run("rejects user without a password", func(t *testing.T) {
		noPassword := testUser(t, "password123")
		noPassword.PasswordHash = nil
		svc, _ := newTestAuthService(noPassword)

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new access token", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("rejects an access token used as refresh token", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rejects a revoked refresh token", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		svc, _ := newTestAuthService(testUser(t, "password123"))

		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not-a-token"})
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		svc, jwtService := newTestAuthService(testUser(t, "password123"))

		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "worker@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))
		assert.True(t, jwtService.IsTokenRevoked(tokens.RefreshToken))
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		svc, _ := newTestAuthService()

		err := svc.Logout(ctx, "")
		assert.ErrorIs(t, err, auth.ErrMissingRefreshToken)
	})
}
