package handler

import (
	"strconv"
	"strings"
	"unicode"

	"wishbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	sender := c.Sender()
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("sender_id", sender.ID),
	)

	// Static buttons land here when their Unique did not match a registered
	// handler (stale keyboards from older messages)
	switch callback.Unique {
	case btnMyWishes.Unique:
		return h.handleMyWishes(c)
	case btnAddWish.Unique:
		return h.handleAddWish(c)
	case btnShare.Unique:
		return h.handleShare(c)
	case btnAdmin.Unique:
		return h.handleAdminPanel(c)
	case btnAllUsers.Unique:
		return h.handleAllUsers(c)
	case btnAllWishes.Unique:
		return h.handleAllWishes(c)
	case btnDeleteUser.Unique:
		return h.handleDeleteUser(c)
	case btnMainMenu.Unique:
		return h.handleMainMenu(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	}

	// Exact tokens without arguments
	switch data {
	case "cancel_delete":
		return h.respond(c, h.cancelDeleteReply(sender.ID))
	case "admin_cancel_delete":
		return h.respond(c, h.adminCancelReply())
	}

	// Tokens with an argument, action-prefix routed
	switch {
	case strings.HasPrefix(data, "admin_pick_"):
		if id, ok := parseInt64Arg(data, "admin_pick_"); ok {
			return h.respond(c, h.adminPickReply(sender.ID, id))
		}
	case strings.HasPrefix(data, "admin_delete_"):
		if id, ok := parseInt64Arg(data, "admin_delete_"); ok {
			return h.respond(c, h.adminDeleteReply(sender.ID, id))
		}
	case strings.HasPrefix(data, "delete_"):
		if id, ok := parseIntArg(data, "delete_"); ok {
			return h.respond(c, h.deletePromptReply(sender.ID, id))
		}
	case strings.HasPrefix(data, "confirm_"):
		if id, ok := parseIntArg(data, "confirm_"); ok {
			return h.respond(c, h.confirmDeleteReply(sender.ID, id))
		}
	case strings.HasPrefix(data, "prio_"):
		if p, ok := parseIntArg(data, "prio_"); ok {
			return h.respond(c, h.prioPickReply(sender, p))
		}
	case strings.HasPrefix(data, "noop_"):
		// Label-only button, acknowledge and change nothing
		return c.Respond()
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

func parseIntArg(data, prefix string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt64Arg(data, prefix string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// deletePromptReply swaps the wishlist for a confirm/cancel pair scoped to one
// wish. Pressing the same button again just redraws the same prompt.
func (h *Handler) deletePromptReply(senderID int64, wishID int) reply {
	if _, r, ok := h.requireUser(senderID); !ok {
		return r
	}
	return reply{text: "Delete this wish?", markup: confirmDeleteMarkup(wishID)}
}

// confirmDeleteReply performs the ownership-scoped delete. A retry of the same
// token after deletion reports failure without mutating anything.
func (h *Handler) confirmDeleteReply(senderID int64, wishID int) reply {
	user, r, ok := h.requireUser(senderID)
	if !ok {
		return r
	}

	deleted, err := h.wishService.DeleteWish(wishID, user.ID)
	if err != nil {
		h.logger.Error("Failed to delete wish", zap.Error(err), zap.Int("wish_id", wishID))
		return reply{text: msgTryAgain}
	}
	if !deleted {
		return reply{
			text:   "Couldn't delete that wish. It may already be gone.",
			markup: mainMenuMarkup(user.IsAdmin),
		}
	}

	h.logger.Info("Wish deleted",
		zap.Int64("sender_id", senderID),
		zap.Int("wish_id", wishID),
	)

	wishes, err := h.wishService.ListWishes(user.ID)
	if err != nil {
		h.logger.Error("Failed to list wishes", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: "Wish deleted."}
	}
	if len(wishes) == 0 {
		return reply{
			text:   "Wish deleted. Your wishlist is now empty.",
			markup: mainMenuMarkup(user.IsAdmin),
		}
	}
	return reply{text: "Wish deleted.\n\n" + msgWishlistTitle, markup: wishListMarkup(wishes)}
}

// cancelDeleteReply redraws the wishlist unchanged
func (h *Handler) cancelDeleteReply(senderID int64) reply {
	return h.myWishesReply(senderID)
}

// prioPickReply feeds an inline priority pick into the priority step
func (h *Handler) prioPickReply(sender *tele.User, priority int) reply {
	state := h.GetState(sender.ID)
	if state.State != domain.StateAwaitingPriority {
		return reply{text: "No wish in progress. Use ➕ Add Wish first."}
	}
	return h.priorityStep(sender.ID, state, strconv.Itoa(priority))
}
