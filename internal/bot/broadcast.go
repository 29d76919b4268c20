package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ashramdev/sangha/internal/alert"
	"github.com/ashramdev/sangha/internal/feed"
)

// sendSatsangMenu asks where the satsang is happening
func (b *Bot) sendSatsangMenu(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⛺ Tent", "satsang:Tent"),
			tgbotapi.NewInlineKeyboardButtonData("☕ Coffee Area", "satsang:Coffee Area"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌿 Garden", "satsang:Garden"),
			tgbotapi.NewInlineKeyboardButtonData("🏛️ Hall", "satsang:Hall"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Custom Location", "satsang:custom"),
		),
	)
	b.replyKeyboard(chatID, "🕉️ *Satsang Announcement*\n\nWhere is the satsang happening?", kb)
}

// announceSatsang broadcasts a satsang alert for the chosen location
func (b *Bot) announceSatsang(ctx context.Context, cq *tgbotapi.CallbackQuery, location string) {
	if location == "custom" {
		b.setState(cq.From.ID, &convState{Step: stepAwaitingLocation})
		b.ack(cq, "")
		b.edit(cq, "📝 Type the custom satsang location:")
		return
	}

	b.ack(cq, "")
	b.broadcastSatsang(ctx, cq.Message.Chat.ID, cq.From.ID, location)
}

// captureSatsangLocation finishes the custom-location flow
func (b *Bot) captureSatsangLocation(ctx context.Context, msg *tgbotapi.Message) {
	location := strings.TrimSpace(msg.Text)
	if location == "" || strings.HasPrefix(location, "/") {
		return
	}
	b.setState(msg.From.ID, nil)
	b.broadcastSatsang(ctx, msg.Chat.ID, msg.From.ID, location)
}

func (b *Bot) broadcastSatsang(ctx context.Context, chatID, userID int64, location string) {
	m := b.lookup(ctx, userID)
	if m == nil {
		b.reply(chatID, "Please /start first to register.")
		return
	}

	message := fmt.Sprintf("Satsang is gathering at the %s. Come sit with the sangha. 🕉️", location)
	if _, err := b.alerts.Broadcast(ctx, alert.TypeSatsang, "Satsang", message, &m.ID); err != nil {
		b.logger.Error("satsang alert failed", zap.Error(err))
		b.reply(chatID, "Could not announce the satsang. Try again.")
		return
	}

	// The feed post keeps the announcement visible after the alert ages out
	content := message
	if _, err := b.feeds.CreatePost(ctx, m.ID, &feed.CreatePostRequest{
		Type:    string(feed.PostTypeBroadcast),
		Content: &content,
	}); err != nil {
		b.logger.Error("satsang post failed", zap.Error(err))
	}

	b.replyMarkdown(chatID, fmt.Sprintf(
		"🕉️ *Satsang announced!*\n\nLocation: *%s*\nThe sangha has been notified.", location))
}

// handleFood rings the food bell
func (b *Bot) handleFood(ctx context.Context, msg *tgbotapi.Message) {
	b.foodBell(ctx, msg.Chat.ID, fmt.Sprintf("%d", msg.From.ID))
}

func (b *Bot) foodBell(ctx context.Context, chatID int64, telegramID string) {
	m, err := b.members.LookupByTelegramID(ctx, telegramID)
	if err != nil {
		b.reply(chatID, "Please /start first to register.")
		return
	}

	message := "The food bell has been rung. Bhojan is served — come with gratitude. 🍽️"
	if _, err := b.alerts.Broadcast(ctx, alert.TypeFoodPrayer, "Food Bell", message, &m.ID); err != nil {
		b.logger.Error("food alert failed", zap.Error(err))
		b.reply(chatID, "Could not ring the food bell. Try again.")
		return
	}

	content := message
	if _, err := b.feeds.CreatePost(ctx, m.ID, &feed.CreatePostRequest{
		Type:    string(feed.PostTypeBroadcast),
		Content: &content,
	}); err != nil {
		b.logger.Error("food post failed", zap.Error(err))
	}

	b.replyMarkdown(chatID, "🍽️ *Food bell rung!* The sangha has been called to bhojan.\n\n"+foodPrayerText)
}

// sendPrayer sends the full prayer text
func (b *Bot) sendPrayer(chatID int64) {
	b.replyMarkdown(chatID, "🙏 *Food Prayer*\n\n"+foodPrayerText)
}

// foodPrayerText is recited before meals at the ashram
const foodPrayerText = "Brahmarpanam Brahma Havir\n" +
	"Brahmagnau Brahmana Hutam\n" +
	"Brahmaiva Tena Gantavyam\n" +
	"Brahma Karma Samadhina\n\n" +
	"_The act of offering is Brahman. The offering itself is Brahman.\n" +
	"The offering is made into the fire of Brahman.\n" +
	"He whose mind is absorbed in such action reaches Brahman alone._"
