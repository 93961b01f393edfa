package handler

import (
	"fmt"
	"strconv"
	"strings"

	"wishbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Inline keyboard buttons
var (
	btnMyWishes = tele.Btn{
		Unique: "my_wishes",
		Text:   "🎁 My Wishes",
	}
	btnAddWish = tele.Btn{
		Unique: "add_wish",
		Text:   "➕ Add Wish",
	}
	btnShare = tele.Btn{
		Unique: "share_list",
		Text:   "📤 Share",
	}
	btnAdmin = tele.Btn{
		Unique: "admin_panel",
		Text:   "🛠 Admin Panel",
	}
	btnAllUsers = tele.Btn{
		Unique: "admin_users",
		Text:   "👥 All Users",
	}
	btnAllWishes = tele.Btn{
		Unique: "admin_wishes",
		Text:   "📋 All Wishes",
	}
	btnDeleteUser = tele.Btn{
		Unique: "admin_del_user",
		Text:   "🗑 Delete User",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main Menu",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

// mainMenuMarkup returns the main menu keyboard for the given role
func mainMenuMarkup(isAdmin bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{
		menu.Row(btnMyWishes, btnAddWish),
		menu.Row(btnShare),
	}
	if isAdmin {
		rows = append(rows, menu.Row(btnAdmin))
	}
	menu.Inline(rows...)
	return menu
}

// adminMenuMarkup returns the admin sub-menu keyboard
func adminMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAllUsers, btnAllWishes),
		menu.Row(btnDeleteUser),
		menu.Row(btnMainMenu),
	)
	return menu
}

// cancelMarkup returns a single cancel button for dialog steps
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}

// priorityMarkup returns the 1-10 priority picker, two rows of five
func priorityMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	row := tele.Row{}
	for p := domain.MinPriority; p <= domain.MaxPriority; p++ {
		row = append(row, menu.Data(strconv.Itoa(p), "prio_"+strconv.Itoa(p)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	rows = append(rows, menu.Row(btnCancel))
	menu.Inline(rows...)
	return menu
}

// wishLabel renders a wish as a button label, long texts are truncated
func wishLabel(w domain.Wish) string {
	text := w.Text
	if runes := []rune(text); len(runes) > 30 {
		text = string(runes[:27]) + "…"
	}
	return fmt.Sprintf("[%d] %s", w.Priority, text)
}

// wishListMarkup returns one row per wish, each press starts a delete flow
func wishListMarkup(wishes []domain.Wish) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(wishes)+1)
	for _, w := range wishes {
		rows = append(rows, menu.Row(menu.Data(wishLabel(w), "delete_"+strconv.Itoa(w.ID))))
	}
	rows = append(rows, menu.Row(btnMainMenu))
	menu.Inline(rows...)
	return menu
}

// confirmDeleteMarkup returns the confirm/cancel pair for one wish
func confirmDeleteMarkup(wishID int) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.Data("✅ Yes, delete", "confirm_"+strconv.Itoa(wishID)),
		menu.Data("↩️ Keep it", "cancel_delete"),
	))
	return menu
}

// userPickerMarkup returns one row per user for the admin delete flow
func userPickerMarkup(users []domain.User) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(users)+1)
	for _, u := range users {
		rows = append(rows, menu.Row(
			menu.Data(u.Name, "admin_pick_"+strconv.FormatInt(u.TelegramID, 10)),
		))
	}
	rows = append(rows, menu.Row(menu.Data("❌ Cancel", "admin_cancel_delete")))
	menu.Inline(rows...)
	return menu
}

// adminConfirmMarkup returns the confirm/cancel pair for deleting a user
func adminConfirmMarkup(telegramID int64) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.Data("✅ Yes, delete", "admin_delete_"+strconv.FormatInt(telegramID, 10)),
		menu.Data("↩️ Cancel", "admin_cancel_delete"),
	))
	return menu
}

// mdEscaper escapes every MarkdownV2-significant character, backslash first
var mdEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
	"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
	">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
	".", "\\.", "!", "\\!",
)

// escapeMarkdown makes user-supplied text safe to embed in MarkdownV2
func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}

// formatShareText renders a wishlist as shareable plain text
func formatShareText(name string, wishes []domain.Wish) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎁 %s's wishlist:\n\n", name)
	for i, w := range wishes {
		fmt.Fprintf(&b, "%d. [%d] %s\n", i+1, w.Priority, w.Text)
	}
	return b.String()
}

// formatUsersList renders all users in MarkdownV2 with escaped names
func formatUsersList(users []domain.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👥 Users: %d\n\n", len(users))
	for i, u := range users {
		fmt.Fprintf(&b, "%d\\. *%s*", i+1, escapeMarkdown(u.Name))
		if u.Username != "" {
			fmt.Fprintf(&b, " @%s", escapeMarkdown(u.Username))
		}
		if u.IsAdmin {
			b.WriteString(" 👑")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatAllWishes renders every wish with its owner's name in plain text
func formatAllWishes(wishes []domain.Wish, users []domain.User) string {
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Wishes: %d\n\n", len(wishes))
	for _, w := range wishes {
		owner, ok := names[w.UserID]
		if !ok {
			owner = "?"
		}
		fmt.Fprintf(&b, "[%d] %s (%s)\n", w.Priority, w.Text, owner)
	}
	return b.String()
}
