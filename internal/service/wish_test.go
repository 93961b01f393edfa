package service

import (
	"fmt"
	"testing"

	"wishbot/internal/domain"
	"wishbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWishService_CreateWish(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		priority      int
		expectedError bool
	}{
		{
			name:     "valid wish",
			text:     "Bike",
			priority: 7,
		},
		{
			name:     "lowest priority",
			text:     "Socks",
			priority: 1,
		},
		{
			name:     "highest priority",
			text:     "Drone",
			priority: 10,
		},
		{
			name:          "empty text",
			text:          "",
			priority:      5,
			expectedError: true,
		},
		{
			name:          "priority below range",
			text:          "Bike",
			priority:      0,
			expectedError: true,
		},
		{
			name:          "priority above range",
			text:          "Bike",
			priority:      11,
			expectedError: true,
		},
		{
			name:          "negative priority",
			text:          "Bike",
			priority:      -3,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWishRepository)

			if !tt.expectedError {
				mockRepo.On("Create", 1, tt.text, tt.priority).
					Return(testutil.NewTestWish(42, 1, tt.text, tt.priority), nil)
			}

			service := NewWishService(mockRepo)

			wish, err := service.CreateWish(1, tt.text, tt.priority)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, wish)
				mockRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.text, wish.Text)
				assert.Equal(t, tt.priority, wish.Priority)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestWishService_ListWishes(t *testing.T) {
	mockRepo := new(testutil.MockWishRepository)
	mockRepo.On("ListByUser", 1).Return([]domain.Wish{
		*testutil.NewTestWish(3, 1, "Bike", 9),
		*testutil.NewTestWish(1, 1, "Book", 5),
	}, nil)

	service := NewWishService(mockRepo)

	wishes, err := service.ListWishes(1)

	assert.NoError(t, err)
	assert.Len(t, wishes, 2)
	assert.Equal(t, 9, wishes[0].Priority)
	mockRepo.AssertExpectations(t)
}

func TestWishService_DeleteWish(t *testing.T) {
	tests := []struct {
		name    string
		wishID  int
		userID  int
		deleted bool
	}{
		{
			name:    "owned wish",
			wishID:  42,
			userID:  1,
			deleted: true,
		},
		{
			name:    "not owned or already gone",
			wishID:  42,
			userID:  2,
			deleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWishRepository)
			mockRepo.On("Delete", tt.wishID, tt.userID).Return(tt.deleted, nil)

			service := NewWishService(mockRepo)

			deleted, err := service.DeleteWish(tt.wishID, tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWishService_ListAllWishes_Error(t *testing.T) {
	mockRepo := new(testutil.MockWishRepository)
	mockRepo.On("ListAll").Return(nil, fmt.Errorf("db down"))

	service := NewWishService(mockRepo)

	wishes, err := service.ListAllWishes()

	assert.Error(t, err)
	assert.Nil(t, wishes)
	mockRepo.AssertExpectations(t)
}
