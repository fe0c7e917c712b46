package services

import (
	"fmt"
	"log"

	"pizzeria/internal/models"
	"pizzeria/internal/repositories"
	"pizzeria/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user accounts. All password hashing
// happens here, at the boundary where plaintext arrives; repositories only
// ever see the hash.
type UserService struct {
	repo     repositories.UserRepository
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. mqClient may be nil, in which case
// no events are published.
func NewUserService(repo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Register hashes the submitted plaintext password exactly once and stores the
// new user. Duplicate emails are rejected before hitting the unique index so
// the caller gets a clean validation error.
func (s *UserService) Register(user *models.User) (*models.User, error) {
	if existing, err := s.repo.GetByEmail(user.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' already registered: %w", user.Email, repositories.ErrDuplicate)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.publishEvent("user.registered", map[string]interface{}{
		"userID": user.ID,
		"email":  user.Email,
	})

	return user, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateProfile persists a user whose identity fields (email, name, surname,
// address) were overwritten by the caller. The password column is carried
// through untouched, so an unrelated update can never re-hash an existing
// hash.
func (s *UserService) UpdateProfile(user *models.User) (*models.User, error) {
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return user, nil
}

// ChangePassword replaces the stored hash with the hash of a newly submitted
// plaintext. This is the only path besides Register that writes the password
// column.
func (s *UserService) ChangePassword(id, newPassword string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to change password for user %s: %w", id, err)
	}
	return nil
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}

func (s *UserService) publishEvent(event string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishShopEvent(event, data); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
