package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ashramdev/sangha/internal/member"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🪔 Seva Check-in", "open:seva"),
			tgbotapi.NewInlineKeyboardButtonData("📸 Post", "open:post"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽️ Food Prayer", "open:food"),
			tgbotapi.NewInlineKeyboardButtonData("🕉️ Satsang", "open:satsang"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙏 Prayer Text", "open:prayer"),
			tgbotapi.NewInlineKeyboardButtonData("🕐 Ashram Time", "open:time"),
		),
	)
}

func modeLabel(m member.Mode) string {
	if m == member.ModePhysical {
		return "🏕️ Physical (at ashram)"
	}
	return "🌐 Remote (online)"
}

// handleStart welcomes a known member back or begins onboarding
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	if m := b.lookup(ctx, msg.From.ID); m != nil {
		b.replyKeyboard(msg.Chat.ID, fmt.Sprintf(
			"🙏 Hari Om, *%s*!\n\nWelcome back to the Ashram Sangha.\nMode: %s\n\nWhat would you like to do?",
			m.Name, modeLabel(m.Mode)), mainMenuKeyboard())
		return
	}

	b.setState(msg.From.ID, &convState{Step: stepAwaitingName})
	b.replyMarkdown(msg.Chat.ID,
		"🙏 *Hari Om! Welcome to the Ashram Sangha.*\n\n"+
			"This bot connects ashram residents and remote devotees.\n\n"+
			"What is your name? (spiritual or given name)")
}

// captureName stores the onboarding name and asks for the member's mode
func (b *Bot) captureName(msg *tgbotapi.Message) {
	name := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(name, "/") {
		return
	}
	if len(name) < 1 || len(name) > 100 {
		b.reply(msg.Chat.ID, "Please enter a valid name (1-100 characters).")
		return
	}

	b.setState(msg.From.ID, &convState{Step: stepAwaitingMode, Name: name})

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏕️ Physical (at the ashram)", "mode:physical"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 Remote (online devotee)", "mode:remote"),
		),
	)
	b.replyKeyboard(msg.Chat.ID, fmt.Sprintf(
		"Namaste, *%s*! 🙏\n\nAre you physically at the ashram or joining remotely?", name), kb)
}

// finishOnboarding registers the member with the chosen mode
func (b *Bot) finishOnboarding(ctx context.Context, cq *tgbotapi.CallbackQuery, mode string) {
	st := b.getState(cq.From.ID)
	if st == nil || st.Name == "" {
		b.ack(cq, "Session expired. Use /start again.")
		return
	}

	telegramID := strconv.FormatInt(cq.From.ID, 10)
	m, err := b.members.Register(ctx, &member.RegisterRequest{
		Name:       st.Name,
		Mode:       mode,
		TelegramID: &telegramID,
	})
	if err != nil {
		b.logger.Error("registration failed", zap.Error(err))
		b.ack(cq, "Registration failed. Try /start again.")
		return
	}

	b.setState(cq.From.ID, nil)
	b.ack(cq, "Welcome to the Sangha!")
	b.editKeyboard(cq, fmt.Sprintf(
		"✅ *Welcome to the Sangha, %s!*\n\nMode: %s\n\n"+
			"You are now part of the ashram community.\nUse the menu below to get started:",
		m.Name, modeLabel(m.Mode)), mainMenuKeyboard())
}

// handleMode toggles a member between physical and remote
func (b *Bot) handleMode(ctx context.Context, msg *tgbotapi.Message) {
	m := b.lookup(ctx, msg.From.ID)
	if m == nil {
		b.reply(msg.Chat.ID, "You need to /start first to register.")
		return
	}

	updated, err := b.members.SwitchMode(ctx, m.ID)
	if err != nil {
		b.logger.Error("mode switch failed", zap.Error(err))
		b.reply(msg.Chat.ID, "Could not switch mode. Try again.")
		return
	}

	b.replyMarkdown(msg.Chat.ID, fmt.Sprintf("Mode updated: %s", modeLabel(updated.Mode)))
}

// sendAshramTime shows IST and UTC, the two clocks the sangha lives by
func (b *Bot) sendAshramTime(chatID int64) {
	now := time.Now().UTC()
	ist := now.Add(5*time.Hour + 30*time.Minute)

	b.replyMarkdown(chatID, fmt.Sprintf(
		"🕐 *Ashram Time*\n\n🇮🇳 IST: `%s`\n🌍 UTC: `%s`",
		ist.Format("2006-01-02 15:04:05"),
		now.Format("2006-01-02 15:04:05")))
}
