package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdminPanel opens the admin sub-menu, admins only
func (h *Handler) handleAdminPanel(c tele.Context) error {
	return h.respond(c, h.adminPanelReply(c.Sender().ID))
}

func (h *Handler) adminPanelReply(senderID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}
	return reply{text: msgAdminMenu, markup: adminMenuMarkup()}
}

// handleAllUsers lists every registered user, names escaped for MarkdownV2
func (h *Handler) handleAllUsers(c tele.Context) error {
	return h.respond(c, h.allUsersReply(c.Sender().ID))
}

func (h *Handler) allUsersReply(senderID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}

	users, err := h.userService.ListUsers()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	return reply{
		text:   formatUsersList(users),
		markup: adminMenuMarkup(),
		mode:   tele.ModeMarkdownV2,
	}
}

// handleAllWishes lists every wish with its owner
func (h *Handler) handleAllWishes(c tele.Context) error {
	return h.respond(c, h.allWishesReply(c.Sender().ID))
}

func (h *Handler) allWishesReply(senderID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}

	wishes, err := h.wishService.ListAllWishes()
	if err != nil {
		h.logger.Error("Failed to list all wishes", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}
	users, err := h.userService.ListUsers()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	return reply{text: formatAllWishes(wishes, users), markup: adminMenuMarkup()}
}

// handleDeleteUser shows the user picker for the admin delete flow
func (h *Handler) handleDeleteUser(c tele.Context) error {
	return h.respond(c, h.deleteUserReply(c.Sender().ID))
}

func (h *Handler) deleteUserReply(senderID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}

	users, err := h.userService.ListUsers()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	if len(users) == 0 {
		return reply{text: "No users yet.", markup: adminMenuMarkup()}
	}
	return reply{text: "Select a user to delete:", markup: userPickerMarkup(users)}
}

// adminPickReply draws the confirm pair for deleting one user
func (h *Handler) adminPickReply(senderID, targetID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}

	target, err := h.userService.FindByTelegramID(targetID)
	if err != nil {
		h.logger.Error("Failed to fetch target user", zap.Error(err), zap.Int64("target_id", targetID))
		return reply{text: msgTryAgain}
	}
	if target == nil {
		return reply{text: "User not found.", markup: adminMenuMarkup()}
	}

	return reply{
		text:   fmt.Sprintf("Delete %s and all their wishes?", target.Name),
		markup: adminConfirmMarkup(targetID),
	}
}

// adminDeleteReply cascades deletion of a user. The presser's role is
// re-checked because anyone who can see the message can press the button.
func (h *Handler) adminDeleteReply(senderID, targetID int64) reply {
	if _, r, ok := h.requireAdmin(senderID); !ok {
		return r
	}

	target, err := h.userService.FindByTelegramID(targetID)
	if err != nil {
		h.logger.Error("Failed to fetch target user", zap.Error(err), zap.Int64("target_id", targetID))
		return reply{text: msgTryAgain}
	}

	deleted, err := h.userService.DeleteUser(targetID)
	if err != nil {
		h.logger.Error("Failed to delete user", zap.Error(err), zap.Int64("target_id", targetID))
		return reply{text: msgTryAgain}
	}

	if !deleted || target == nil {
		return reply{text: "User not found.", markup: adminMenuMarkup()}
	}

	h.logger.Info("User deleted by admin",
		zap.Int64("admin_id", senderID),
		zap.Int64("target_id", targetID),
		zap.String("name", target.Name),
	)
	return reply{
		text:   fmt.Sprintf("🗑 Deleted %s and all their wishes.", target.Name),
		markup: adminMenuMarkup(),
	}
}

// adminCancelReply redraws a plain cancellation notice
func (h *Handler) adminCancelReply() reply {
	return reply{text: "Deletion cancelled.", markup: adminMenuMarkup()}
}
