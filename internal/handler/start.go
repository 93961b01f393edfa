package handler

import (
	"wishbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: greets registered users, starts the
// registration dialog for everyone else
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("sender_id", sender.ID),
		zap.String("username", sender.Username),
	)

	return h.respond(c, h.startReply(sender))
}

func (h *Handler) startReply(sender *tele.User) reply {
	user, err := h.userService.FindByTelegramID(sender.ID)
	if err != nil {
		h.logger.Error("Failed to look up sender", zap.Error(err), zap.Int64("sender_id", sender.ID))
		return reply{text: msgTryAgain}
	}

	if user == nil {
		h.SetState(sender.ID, &domain.StateData{State: domain.StateAwaitingName})
		return reply{text: msgAskName}
	}

	// Registered, refresh the display handle if it changed
	if refreshed, err := h.userService.RefreshUsername(user, sender.Username); err != nil {
		h.logger.Warn("Failed to refresh username", zap.Error(err), zap.Int64("sender_id", sender.ID))
	} else {
		user = refreshed
	}

	h.ResetState(sender.ID)
	return reply{
		text:   "👋 Welcome back, " + user.Name + "!\n\n" + msgMainMenu,
		markup: mainMenuMarkup(user.IsAdmin),
	}
}

// handleMainMenu redraws the main menu for a registered sender
func (h *Handler) handleMainMenu(c tele.Context) error {
	return h.respond(c, h.mainMenuReply(c.Sender().ID))
}

func (h *Handler) mainMenuReply(senderID int64) reply {
	user, r, ok := h.requireUser(senderID)
	if !ok {
		return r
	}
	h.ResetState(senderID)
	return reply{text: msgMainMenu, markup: mainMenuMarkup(user.IsAdmin)}
}

// handleCancel aborts any in-progress dialog and clears scratch data
func (h *Handler) handleCancel(c tele.Context) error {
	senderID := c.Sender().ID
	h.ResetState(senderID)

	user, err := h.userService.FindByTelegramID(senderID)
	if err != nil || user == nil {
		return h.respond(c, reply{text: msgCancelled})
	}
	return h.respond(c, reply{
		text:   msgCancelled + "\n\n" + msgMainMenu,
		markup: mainMenuMarkup(user.IsAdmin),
	})
}
