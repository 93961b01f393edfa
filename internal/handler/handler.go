package handler

import (
	"strings"
	"sync"

	"wishbot/internal/domain"
	"wishbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Common reply texts
const (
	msgTryAgain      = "Something went wrong. Please try again later."
	msgRegisterFirst = "Please register first with /start."
	msgAccessDenied  = "🚫 This action is for admins only."
	msgAskName       = "Hi! What's your name?"
	msgEmptyName     = "Name cannot be empty. What's your name?"
	msgAskWishText   = "What do you wish for? Send me the text:"
	msgEmptyWish     = "Wish text cannot be empty. What do you wish for?"
	msgAskPriority   = "Choose a priority from 1 to 10:"
	msgBadPriority   = "Priority must be a number from 1 to 10. Try again:"
	msgCancelled     = "Cancelled."
	msgMainMenu      = "🏠 Main menu\n\nChoose an action:"
	msgAdminMenu     = "🛠 Admin panel\n\nChoose an action:"
	msgEmptyList     = "Your wishlist is empty. Add your first wish!"
	msgWishlistTitle = "🎁 Your wishlist:"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	userService *service.UserService
	wishService *service.WishService
	logger      *zap.Logger

	// Per-sender dialog states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	wishService *service.WishService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		userService: userService,
		wishService: wishService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/addwish", h.handleAddWish)
	h.bot.Handle("/mywishes", h.handleMyWishes)
	h.bot.Handle("/share", h.handleShare)
	h.bot.Handle("/admin", h.handleAdminPanel)

	// Text messages (dialog steps)
	h.bot.Handle(tele.OnText, h.handleText)

	// Static inline buttons
	h.bot.Handle(&btnMyWishes, h.handleMyWishes)
	h.bot.Handle(&btnAddWish, h.handleAddWish)
	h.bot.Handle(&btnShare, h.handleShare)
	h.bot.Handle(&btnAdmin, h.handleAdminPanel)
	h.bot.Handle(&btnAllUsers, h.handleAllUsers)
	h.bot.Handle(&btnAllWishes, h.handleAllWishes)
	h.bot.Handle(&btnDeleteUser, h.handleDeleteUser)
	h.bot.Handle(&btnMainMenu, h.handleMainMenu)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current dialog state
func (h *Handler) GetState(senderID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[senderID]
	if !exists {
		return &domain.StateData{State: domain.StateNone}
	}
	return state
}

// SetState sets user's dialog state
func (h *Handler) SetState(senderID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[senderID] = state
}

// ResetState clears scratch data and returns the user to the idle state
func (h *Handler) ResetState(senderID int64) {
	h.SetState(senderID, &domain.StateData{State: domain.StateNone})
}

// reply is a composed response: text plus optional markup and parse mode
type reply struct {
	text   string
	markup *tele.ReplyMarkup
	mode   tele.ParseMode
}

// respond delivers a reply: edits the message for callbacks, sends otherwise
func (h *Handler) respond(c tele.Context, r reply) error {
	opts := make([]interface{}, 0, 2)
	if r.markup != nil {
		opts = append(opts, r.markup)
	}
	if r.mode != "" {
		opts = append(opts, r.mode)
	}

	if c.Callback() != nil {
		if err := c.Edit(r.text, opts...); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(r.text, opts...)
		}
		return c.Respond()
	}
	return c.Send(r.text, opts...)
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback; otherwise acknowledge and return the error so
// the caller can send a new message instead
func (h *Handler) handleEditError(err error, c tele.Context, senderID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("sender_id", senderID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("sender_id", senderID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// requireUser fetches the sender's user record. The second return is a denial
// or error reply to deliver when the third return is false.
func (h *Handler) requireUser(senderID int64) (*domain.User, reply, bool) {
	user, err := h.userService.FindByTelegramID(senderID)
	if err != nil {
		h.logger.Error("Failed to fetch user", zap.Error(err), zap.Int64("sender_id", senderID))
		return nil, reply{text: msgTryAgain}, false
	}
	if user == nil {
		return nil, reply{text: msgRegisterFirst}, false
	}
	return user, reply{}, true
}

// requireAdmin re-fetches the sender's record and checks the admin flag.
// Scratch snapshots are never trusted here.
func (h *Handler) requireAdmin(senderID int64) (*domain.User, reply, bool) {
	user, err := h.userService.FindByTelegramID(senderID)
	if err != nil {
		h.logger.Error("Failed to fetch user for role check", zap.Error(err), zap.Int64("sender_id", senderID))
		return nil, reply{text: msgTryAgain}, false
	}
	if user == nil || !user.IsAdmin {
		return nil, reply{text: msgAccessDenied}, false
	}
	return user, reply{}, true
}
