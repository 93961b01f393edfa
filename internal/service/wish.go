package service

import (
	"wishbot/internal/domain"
	"wishbot/internal/repository"

	"github.com/go-playground/validator/v10"
)

// WishService handles wishlist business logic
type WishService struct {
	wishRepo repository.WishRepository
	validate *validator.Validate
}

// wishInput carries the validation rules for a new wish
type wishInput struct {
	Text     string `validate:"required"`
	Priority int    `validate:"min=1,max=10"`
}

// NewWishService creates a new wish service
func NewWishService(wishRepo repository.WishRepository) *WishService {
	return &WishService{
		wishRepo: wishRepo,
		validate: validator.New(),
	}
}

// CreateWish validates and persists a new wish for userID
func (s *WishService) CreateWish(userID int, text string, priority int) (*domain.Wish, error) {
	if err := s.validate.Struct(wishInput{Text: text, Priority: priority}); err != nil {
		return nil, err
	}
	return s.wishRepo.Create(userID, text, priority)
}

// ListWishes returns the user's wishes ordered by descending priority
func (s *WishService) ListWishes(userID int) ([]domain.Wish, error) {
	return s.wishRepo.ListByUser(userID)
}

// DeleteWish removes a wish owned by userID.
// Returns false when the wish is gone or belongs to another user.
func (s *WishService) DeleteWish(wishID, userID int) (bool, error) {
	return s.wishRepo.Delete(wishID, userID)
}

// ListAllWishes returns every wish in the store
func (s *WishService) ListAllWishes() ([]domain.Wish, error) {
	return s.wishRepo.ListAll()
}
