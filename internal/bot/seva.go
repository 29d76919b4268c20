package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ashramdev/sangha/internal/seva"
)

// shortName strips the parenthesized transliteration for button labels
func shortName(t seva.Type) string {
	name := t.Name
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}

// sendSevaMenu shows the seva type grid, two per row
func (b *Bot) sendSevaMenu(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(seva.Types); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(shortName(seva.Types[i]), "seva:"+seva.Types[i].ID),
		}
		if i+1 < len(seva.Types) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(shortName(seva.Types[i+1]), "seva:"+seva.Types[i+1].ID))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("📜 Seva History", "seva:history"),
	})

	b.replyKeyboard(chatID,
		"🪔 *Seva Check-in / Check-out*\n\nSelect a seva type to check in or check out:",
		tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// toggleCheckIn checks the member in, or offers checkout when already in
func (b *Bot) toggleCheckIn(ctx context.Context, cq *tgbotapi.CallbackQuery, sevaID string) {
	sevaType := seva.TypeByID(sevaID)
	if sevaType == nil {
		b.ack(cq, "Unknown seva type.")
		return
	}

	m := b.lookup(ctx, cq.From.ID)
	if m == nil {
		b.ack(cq, "Please /start first to register.")
		return
	}

	checkIn, err := b.sevas.CheckIn(ctx, m.ID, sevaID)
	if err != nil {
		if errors.Is(err, seva.ErrAlreadyCheckedIn) {
			kb := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("✅ Yes, Check Out", "seva_out:"+sevaID),
					tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "seva:cancel"),
				),
			)
			b.ack(cq, "")
			b.editKeyboard(cq, fmt.Sprintf(
				"You are currently checked into *%s*.\n\nCheck out now?", sevaType.Name), kb)
			return
		}
		b.logger.Error("check-in failed", zap.Error(err))
		b.ack(cq, "Check-in failed. Try again.")
		return
	}

	b.ack(cq, fmt.Sprintf("Checked in to %s!", shortName(*sevaType)))
	b.edit(cq, fmt.Sprintf(
		"*Checked in to %s!*\n\nHari Om, %s. Your seva began at `%s`.\nUse /seva to check out when you are done.",
		sevaType.Name, m.Name, checkIn.CheckedInAt.Format("15:04")))
}

// confirmCheckOut closes the open session and reports its duration
func (b *Bot) confirmCheckOut(ctx context.Context, cq *tgbotapi.CallbackQuery, sevaID string) {
	sevaType := seva.TypeByID(sevaID)
	if sevaType == nil {
		b.ack(cq, "Unknown seva type.")
		return
	}

	m := b.lookup(ctx, cq.From.ID)
	if m == nil {
		b.ack(cq, "Member not found.")
		return
	}

	checkIn, err := b.sevas.CheckOut(ctx, m.ID, sevaID)
	if err != nil {
		if errors.Is(err, seva.ErrNoActiveCheckIn) {
			b.ack(cq, "No active seva found.")
			return
		}
		b.logger.Error("checkout failed", zap.Error(err))
		b.ack(cq, "Checkout failed. Try again.")
		return
	}

	duration := 0
	if checkIn.DurationMinutes != nil {
		duration = *checkIn.DurationMinutes
	}
	b.ack(cq, "Checked out!")
	b.edit(cq, fmt.Sprintf(
		"✅ *Checked out of %s*\n\nDuration: *%s*\nThank you for your seva, %s! 🙏",
		sevaType.Name, seva.FormatDuration(duration), m.Name))
}

// sendSevaHistory lists the member's last sessions
func (b *Bot) sendSevaHistory(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	m := b.lookup(ctx, cq.From.ID)
	if m == nil {
		b.ack(cq, "Please /start first.")
		return
	}

	records, err := b.sevas.History(ctx, m.ID, 10)
	if err != nil {
		b.logger.Error("history failed", zap.Error(err))
		b.ack(cq, "Could not load history.")
		return
	}

	if len(records) == 0 {
		b.ack(cq, "")
		b.edit(cq, "📜 *Seva History*\n\nNo seva records yet. Start serving with /seva!")
		return
	}

	lines := make([]string, 0, len(records))
	for i, r := range records {
		name := r.SevaType
		if t := seva.TypeByID(r.SevaType); t != nil {
			name = shortName(*t)
		}
		duration := "⏳ active"
		if r.DurationMinutes != nil {
			duration = seva.FormatDuration(*r.DurationMinutes)
		}
		lines = append(lines, fmt.Sprintf("%d. %s — %s — %s",
			i+1, name, r.CheckedInAt.Format("2006-01-02"), duration))
	}

	b.ack(cq, "")
	b.edit(cq, fmt.Sprintf("📜 *Seva History for %s*\n\n%s", m.Name, strings.Join(lines, "\n")))
}
