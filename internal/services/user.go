package services

import (
	"context"
	"errors"
	"fmt"

	"movierec/internal/models"
	"movierec/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown user and wrong password, so login
// failures do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid user id or password")

type UserService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Signup creates a user with a bcrypt password hash. Returns
// repository.ErrUserExists when the id is taken.
func (s *UserService) Signup(ctx context.Context, id, password, name string) (*models.User, error) {
	if id == "" || password == "" || name == "" {
		return nil, fmt.Errorf("user id, password and name are all required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           id,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", id).Info("A user has been created")
	return user, nil
}

// Login verifies the submitted password against the stored hash.
func (s *UserService) Login(ctx context.Context, id, password string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.WithField("user_id", id).Info("User logged in")
	return user, nil
}
