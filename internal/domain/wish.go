package domain

// Priority bounds for a wish
const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
)

// Wish represents a single wishlist entry
type Wish struct {
	ID       int
	UserID   int
	Text     string
	Priority int
}
