package service

import (
	"fmt"
	"strings"

	"wishbot/internal/domain"
	"wishbot/internal/repository"
)

// UserService handles registration and user management logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a user for telegramID with the given name, or returns the
// existing one unchanged. The name must be non-empty after trimming.
func (s *UserService) Register(telegramID int64, name, username string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	return s.userRepo.GetOrCreate(telegramID, name, username)
}

// FindByTelegramID returns the registered user, or nil if unknown
func (s *UserService) FindByTelegramID(telegramID int64) (*domain.User, error) {
	return s.userRepo.FindByTelegramID(telegramID)
}

// RefreshUsername updates the stored display handle if it changed
func (s *UserService) RefreshUsername(user *domain.User, username string) (*domain.User, error) {
	if user.Username == username {
		return user, nil
	}
	updated, err := s.userRepo.UpdateUsername(user.TelegramID, username)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return user, nil
	}
	return updated, nil
}

// DeleteUser removes the user and all their wishes
func (s *UserService) DeleteUser(telegramID int64) (bool, error) {
	return s.userRepo.Delete(telegramID)
}

// ListUsers returns all registered users
func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.userRepo.ListAll()
}
