package domain

// User represents a registered bot user
type User struct {
	ID         int
	TelegramID int64
	Username   string
	Name       string
	IsAdmin    bool
}

// DialogState represents user's current dialog step
type DialogState string

const (
	StateNone             DialogState = "none"
	StateAwaitingName     DialogState = "awaiting_name"
	StateAwaitingWishText DialogState = "awaiting_wish_text"
	StateAwaitingPriority DialogState = "awaiting_priority"
)

// StateData holds temporary data for user's current dialog
type StateData struct {
	State    DialogState
	UserID   int    // internal id of the registered user driving the dialog
	IsAdmin  bool   // snapshot for menu rendering only, never for authorization
	WishText string // draft wish text collected before the priority step
}
