package testutil

import (
	"wishbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int, telegramID int64, name string, isAdmin bool) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		Name:       name,
		IsAdmin:    isAdmin,
	}
}

// NewTestWish creates a test wish
func NewTestWish(id, userID int, text string, priority int) *domain.Wish {
	return &domain.Wish{
		ID:       id,
		UserID:   userID,
		Text:     text,
		Priority: priority,
	}
}
