package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ashramdev/sangha/internal/feed"
)

// handlePostCommand begins the text-post flow
func (b *Bot) handlePostCommand(msg *tgbotapi.Message) {
	b.promptPost(msg.From.ID, msg.Chat.ID)
}

func (b *Bot) promptPost(userID, chatID int64) {
	b.setState(userID, &convState{Step: stepAwaitingPost})
	b.replyMarkdown(chatID,
		"📝 *Share with the Sangha*\n\nType your post — a reflection, a note from practice, anything for the community:")
}

// capturePost publishes the typed text to the community feed
func (b *Bot) capturePost(ctx context.Context, msg *tgbotapi.Message) {
	content := strings.TrimSpace(msg.Text)
	if content == "" || strings.HasPrefix(content, "/") {
		return
	}

	m := b.lookup(ctx, msg.From.ID)
	if m == nil {
		b.setState(msg.From.ID, nil)
		b.reply(msg.Chat.ID, "Please /start first to register before posting.")
		return
	}

	b.setState(msg.From.ID, nil)

	if _, err := b.feeds.CreatePost(ctx, m.ID, &feed.CreatePostRequest{
		Type:    string(feed.PostTypeText),
		Content: &content,
	}); err != nil {
		b.logger.Error("post failed", zap.Error(err))
		b.reply(msg.Chat.ID, "Could not publish your post. Try again.")
		return
	}

	b.replyMarkdown(msg.Chat.ID, fmt.Sprintf(
		"✅ *Posted to the Sangha feed!*\n\nThank you for sharing, %s. 🙏", m.Name))
}
