package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository/gormdb"
)

const testSecret = "test-secret"

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormdb.NewUserRepository(db)
	svc := NewAuthService(userRepo, testSecret, time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	stored, err := userRepo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(gormdb.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password-one")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "alice@example.com", "password-two")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormdb.NewUserRepository(db)
	svc := NewAuthService(userRepo, testSecret, time.Hour)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Bob", "bob@example.com", "hunter2hunter2")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "bob@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	// Login stamps last_login_at as a separate write.
	stored, err := userRepo.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(gormdb.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Carol", "carol@example.com", "swordfish123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "carol@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// Unknown accounts fail identically to wrong passwords.
	_, _, err = svc.Login(ctx, "nobody@example.com", "swordfish123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestIssueTokenClaims(t *testing.T) {
	svc := NewAuthService(nil, testSecret, 30*time.Minute)

	user := &domain.User{ID: 42, Email: "dave@example.com", Role: domain.RoleAdmin}
	signed, err := svc.IssueToken(user)
	require.NoError(t, err)

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "dave@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "fitforge", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
