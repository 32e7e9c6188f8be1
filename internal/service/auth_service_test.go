package service

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	userRepo := repository.NewUserRepository(repository.NewSnapshots(store.NewMemoryStore()))
	return NewAuthService(userRepo, auth.NewManager("test-secret", time.Hour)), userRepo
}

func TestRegister(t *testing.T) {
	svc, userRepo := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, RegisterInput{
		Email:    "Writer@Example.com",
		Password: "hunter22",
		Name:     "Writer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Writer", result.User.Name)
	assert.Equal(t, "writer@example.com", result.User.Email)

	// stored password is hashed
	stored, err := userRepo.GetByEmail(ctx, "writer@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterDefaultsNameFromEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "jane.doe@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", result.User.Name)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "not-an-email",
		Password: "123",
		Name:     "x",
	})
	require.Error(t, err)

	appErr := err.(*models.AppError)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
	assert.Contains(t, appErr.Fields, "name")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "another1"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", err.(*models.AppError).Code)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "a@example.com", result.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", err.(*models.AppError).Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", err.(*models.AppError).Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{})
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Contains(t, appErr.Fields, "email")
		assert.Contains(t, appErr.Fields, "password")
	})
}

func TestCheckAuth(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.CheckAuth(ctx, auth.Identity{ID: result.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	_, err = svc.CheckAuth(ctx, auth.Identity{ID: "ghost"})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.(*models.AppError).Code)
}
