package services

import (
	"context"
	"fmt"

	"taproom/internal/models"
	"taproom/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks HTTP Basic credentials against the stored accounts.
type AuthService struct {
	userRepo repositories.UserRepository
	cost     int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
	}
}

// EnsureUser creates the account, or resets its password when it already
// exists, so the configured credentials always work.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(password)) == nil {
			return nil
		}
		existing.Password = string(hashedPassword)
		return s.userRepo.UpdatePassword(ctx, existing)
	}

	user := &models.User{Username: username, Password: string(hashedPassword)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Authenticate reports whether username and password name a stored account.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
