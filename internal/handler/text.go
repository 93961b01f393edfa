package handler

import (
	"fmt"
	"strconv"
	"strings"

	"wishbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes free text to the current dialog step
func (h *Handler) handleText(c tele.Context) error {
	sender := c.Sender()
	text := c.Text()

	// Commands have their own handlers
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	return h.respond(c, h.textReply(sender, text))
}

// textReply is the dialog state machine. Validation failures re-prompt the
// same state; store failures reply generically and leave the state unchanged.
func (h *Handler) textReply(sender *tele.User, text string) reply {
	text = strings.TrimSpace(text)
	state := h.GetState(sender.ID)

	switch state.State {
	case domain.StateAwaitingName:
		return h.nameStep(sender, text)
	case domain.StateAwaitingWishText:
		return h.wishTextStep(sender.ID, state, text)
	case domain.StateAwaitingPriority:
		return h.priorityStep(sender.ID, state, text)
	default:
		return h.idleTextReply(sender.ID)
	}
}

func (h *Handler) nameStep(sender *tele.User, name string) reply {
	if name == "" {
		return reply{text: msgEmptyName}
	}

	user, err := h.userService.Register(sender.ID, name, sender.Username)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err), zap.Int64("sender_id", sender.ID))
		return reply{text: msgTryAgain}
	}

	h.logger.Info("User registered",
		zap.Int64("sender_id", sender.ID),
		zap.String("name", user.Name),
	)

	h.ResetState(sender.ID)
	return reply{
		text:   fmt.Sprintf("✅ Nice to meet you, %s!\n\n%s", user.Name, msgMainMenu),
		markup: mainMenuMarkup(user.IsAdmin),
	}
}

func (h *Handler) wishTextStep(senderID int64, state *domain.StateData, text string) reply {
	if text == "" {
		return reply{text: msgEmptyWish, markup: cancelMarkup()}
	}

	h.SetState(senderID, &domain.StateData{
		State:    domain.StateAwaitingPriority,
		UserID:   state.UserID,
		IsAdmin:  state.IsAdmin,
		WishText: text,
	})
	return reply{text: msgAskPriority, markup: priorityMarkup()}
}

func (h *Handler) priorityStep(senderID int64, state *domain.StateData, text string) reply {
	priority, err := strconv.Atoi(text)
	if err != nil || priority < domain.MinPriority || priority > domain.MaxPriority {
		return reply{text: msgBadPriority, markup: priorityMarkup()}
	}

	wish, err := h.wishService.CreateWish(state.UserID, state.WishText, priority)
	if err != nil {
		h.logger.Error("Failed to create wish", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	h.logger.Info("Wish created",
		zap.Int64("sender_id", senderID),
		zap.Int("wish_id", wish.ID),
		zap.Int("priority", wish.Priority),
	)

	h.ResetState(senderID)
	return reply{
		text:   fmt.Sprintf("✅ Saved: [%d] %s\n\n%s", wish.Priority, wish.Text, msgMainMenu),
		markup: mainMenuMarkup(state.IsAdmin),
	}
}

// idleTextReply handles text outside any dialog
func (h *Handler) idleTextReply(senderID int64) reply {
	user, err := h.userService.FindByTelegramID(senderID)
	if err != nil {
		h.logger.Error("Failed to look up sender", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}
	if user == nil {
		return reply{text: "👋 Hi! Use /start to register."}
	}
	return reply{text: msgMainMenu, markup: mainMenuMarkup(user.IsAdmin)}
}
