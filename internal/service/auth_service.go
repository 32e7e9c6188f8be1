// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"strings"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.Manager
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a signed token plus the public view of its account.
type AuthResult struct {
	Token string                 `json:"token"`
	User  *models.CreatorSummary `json:"user"`
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	fields := map[string]string{}
	if err := validation.ValidateEmail(in.Email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields["password"] = err.Error()
	}
	if err := validation.ValidateName(in.Name); err != nil {
		fields["name"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = nameFromEmail(email)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.signIn(user)
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	}
	if in.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	return s.signIn(user)
}

// CheckAuth resolves a previously issued identity back to its account.
// A stale identity whose account no longer exists is treated as signed out.
func (s *AuthService) CheckAuth(ctx context.Context, identity auth.Identity) (*models.CreatorSummary, error) {
	user, err := s.userRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, models.NewUnauthorizedError("Account no longer exists")
	}
	return user.Summary(), nil
}

func (s *AuthService) signIn(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.IssueToken(auth.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{Token: token, User: user.Summary()}, nil
}

// nameFromEmail derives a display name from the local part of an email
// address, so "jane.doe@example.com" signs up as "jane.doe".
func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
