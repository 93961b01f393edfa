package testutil

import (
	"wishbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(telegramID int64, name, username string) (*domain.User, error) {
	args := m.Called(telegramID, name, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByTelegramID(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUsername(telegramID int64, username string) (*domain.User, error) {
	args := m.Called(telegramID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(telegramID int64) (bool, error) {
	args := m.Called(telegramID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListAll() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockWishRepository is a mock for WishRepository
type MockWishRepository struct {
	mock.Mock
}

func (m *MockWishRepository) Create(userID int, text string, priority int) (*domain.Wish, error) {
	args := m.Called(userID, text, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishRepository) ListByUser(userID int) ([]domain.Wish, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wish), args.Error(1)
}

func (m *MockWishRepository) Delete(wishID, userID int) (bool, error) {
	args := m.Called(wishID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishRepository) ListAll() ([]domain.Wish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wish), args.Error(1)
}
