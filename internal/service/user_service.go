package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

// UserService keeps identity records for the external identity provider.
// Registration is an upsert keyed by the provider UID: registering an
// already-known UID returns the existing record unchanged.
type UserService interface {
	Register(ctx context.Context, email, name, firebaseUID string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register stores a user record, returning the existing one when the
// provider UID is already known.
func (s *userService) Register(ctx context.Context, email, name, firebaseUID string) (*domain.User, error) {
	existing, err := s.userRepo.FindByFirebaseUID(ctx, firebaseUID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	user := &domain.User{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		FirebaseUID: firebaseUID,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
