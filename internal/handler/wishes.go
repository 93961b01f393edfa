package handler

import (
	"wishbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddWish starts the add-wish dialog for a registered sender
func (h *Handler) handleAddWish(c tele.Context) error {
	return h.respond(c, h.addWishReply(c.Sender().ID))
}

func (h *Handler) addWishReply(senderID int64) reply {
	user, r, ok := h.requireUser(senderID)
	if !ok {
		return r
	}

	h.SetState(senderID, &domain.StateData{
		State:   domain.StateAwaitingWishText,
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	})
	return reply{text: msgAskWishText, markup: cancelMarkup()}
}

// handleMyWishes shows the sender's wishlist with delete buttons
func (h *Handler) handleMyWishes(c tele.Context) error {
	return h.respond(c, h.myWishesReply(c.Sender().ID))
}

func (h *Handler) myWishesReply(senderID int64) reply {
	user, r, ok := h.requireUser(senderID)
	if !ok {
		return r
	}

	wishes, err := h.wishService.ListWishes(user.ID)
	if err != nil {
		h.logger.Error("Failed to list wishes", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	if len(wishes) == 0 {
		return reply{text: msgEmptyList, markup: mainMenuMarkup(user.IsAdmin)}
	}
	return reply{text: msgWishlistTitle, markup: wishListMarkup(wishes)}
}

// handleShare renders the sender's wishlist as shareable plain text
func (h *Handler) handleShare(c tele.Context) error {
	return h.respond(c, h.shareReply(c.Sender().ID))
}

func (h *Handler) shareReply(senderID int64) reply {
	user, r, ok := h.requireUser(senderID)
	if !ok {
		return r
	}

	wishes, err := h.wishService.ListWishes(user.ID)
	if err != nil {
		h.logger.Error("Failed to list wishes", zap.Error(err), zap.Int64("sender_id", senderID))
		return reply{text: msgTryAgain}
	}

	if len(wishes) == 0 {
		return reply{text: msgEmptyList, markup: mainMenuMarkup(user.IsAdmin)}
	}
	return reply{text: formatShareText(user.Name, wishes), markup: mainMenuMarkup(user.IsAdmin)}
}
