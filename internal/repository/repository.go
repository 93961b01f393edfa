package repository

import (
	"wishbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(telegramID int64, name, username string) (*domain.User, error)
	FindByTelegramID(telegramID int64) (*domain.User, error)
	UpdateUsername(telegramID int64, username string) (*domain.User, error)
	Delete(telegramID int64) (bool, error)
	ListAll() ([]domain.User, error)
}

// WishRepository defines wish data operations
type WishRepository interface {
	Create(userID int, text string, priority int) (*domain.Wish, error)
	ListByUser(userID int) ([]domain.Wish, error)
	Delete(wishID, userID int) (bool, error)
	ListAll() ([]domain.Wish, error)
}
