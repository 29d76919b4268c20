// Package bot is the Telegram surface of the sangha. It mirrors the web
// API: onboarding registers members, the seva grid drives check-ins, and
// the broadcast commands feed the alert and post tables the web clients
// poll.
package bot

import (
	"context"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ashramdev/sangha/internal/alert"
	"github.com/ashramdev/sangha/internal/feed"
	"github.com/ashramdev/sangha/internal/member"
	"github.com/ashramdev/sangha/internal/seva"
)

// step is where a conversation currently stands
type step string

const (
	stepAwaitingName     step = "awaiting_name"
	stepAwaitingMode     step = "awaiting_mode"
	stepAwaitingPost     step = "awaiting_post"
	stepAwaitingLocation step = "awaiting_location"
)

// convState is per-chat in-memory conversation state. It survives only as
// long as the process; an expired conversation restarts with /start.
type convState struct {
	Step step
	Name string
}

// Bot wires Telegram updates to the sangha services
type Bot struct {
	api     *tgbotapi.BotAPI
	members *member.Service
	sevas   *seva.Service
	feeds   *feed.Service
	alerts  *alert.Service
	logger  *zap.Logger

	mu    sync.Mutex
	state map[int64]*convState
}

// New creates a bot over an authorized Telegram API client
func New(api *tgbotapi.BotAPI, members *member.Service, sevas *seva.Service, feeds *feed.Service, alerts *alert.Service, logger *zap.Logger) *Bot {
	return &Bot{
		api:     api,
		members: members,
		sevas:   sevas,
		feeds:   feeds,
		alerts:  alerts,
		logger:  logger,
		state:   make(map[int64]*convState),
	}
}

// Run long-polls Telegram until the context is cancelled
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot long polling started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic while handling update", zap.Any("panic", r), zap.Int("update_id", update.UpdateID))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleText(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "seva":
		b.sendSevaMenu(msg.Chat.ID)
	case "satsang":
		b.sendSatsangMenu(msg.Chat.ID)
	case "food":
		b.handleFood(ctx, msg)
	case "prayer":
		b.sendPrayer(msg.Chat.ID)
	case "post":
		b.handlePostCommand(msg)
	case "mode":
		b.handleMode(ctx, msg)
	case "time":
		b.sendAshramTime(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Try /start for the menu.")
	}
}

// handleText routes free text through the conversation state machine
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	st := b.getState(msg.From.ID)
	if st == nil {
		return
	}

	switch st.Step {
	case stepAwaitingName:
		b.captureName(msg)
	case stepAwaitingPost:
		b.capturePost(ctx, msg)
	case stepAwaitingLocation:
		b.captureSatsangLocation(ctx, msg)
	}
}

// handleCallback routes inline keyboard presses by callback data prefix
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	data := cq.Data
	switch {
	case strings.HasPrefix(data, "mode:"):
		b.finishOnboarding(ctx, cq, strings.TrimPrefix(data, "mode:"))
	case data == "seva:history":
		b.sendSevaHistory(ctx, cq)
	case data == "seva:cancel":
		b.ack(cq, "Cancelled.")
		b.edit(cq, "Seva action cancelled. Use /seva to try again.")
	case strings.HasPrefix(data, "seva_out:"):
		b.confirmCheckOut(ctx, cq, strings.TrimPrefix(data, "seva_out:"))
	case strings.HasPrefix(data, "seva:"):
		b.toggleCheckIn(ctx, cq, strings.TrimPrefix(data, "seva:"))
	case strings.HasPrefix(data, "satsang:"):
		b.announceSatsang(ctx, cq, strings.TrimPrefix(data, "satsang:"))
	case data == "open:seva":
		b.ack(cq, "")
		b.sendSevaMenu(cq.Message.Chat.ID)
	case data == "open:satsang":
		b.ack(cq, "")
		b.sendSatsangMenu(cq.Message.Chat.ID)
	case data == "open:food":
		b.ack(cq, "")
		b.foodBell(ctx, cq.Message.Chat.ID, strconv.FormatInt(cq.From.ID, 10))
	case data == "open:prayer":
		b.ack(cq, "")
		b.sendPrayer(cq.Message.Chat.ID)
	case data == "open:post":
		b.ack(cq, "")
		b.promptPost(cq.From.ID, cq.Message.Chat.ID)
	case data == "open:time":
		b.ack(cq, "")
		b.sendAshramTime(cq.Message.Chat.ID)
	default:
		b.ack(cq, "")
	}
}

// lookup resolves the member bound to a Telegram user, nil when unregistered
func (b *Bot) lookup(ctx context.Context, userID int64) *member.Member {
	m, err := b.members.LookupByTelegramID(ctx, strconv.FormatInt(userID, 10))
	if err != nil {
		return nil
	}
	return m
}

func (b *Bot) getState(userID int64) *convState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state[userID]
}

func (b *Bot) setState(userID int64, st *convState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st == nil {
		delete(b.state, userID)
		return
	}
	b.state[userID] = st
}

// reply sends a plain message to a chat
func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// replyMarkdown sends a Markdown-formatted message to a chat
func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

// replyKeyboard sends a Markdown message with an inline keyboard
func (b *Bot) replyKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = kb
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("send failed", zap.Error(err))
	}
}

// ack answers a callback query, optionally with a toast
func (b *Bot) ack(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
		b.logger.Error("callback ack failed", zap.Error(err))
	}
}

// edit replaces the message a callback came from
func (b *Bot) edit(cq *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Error("edit failed", zap.Error(err))
	}
}

// editKeyboard replaces the message a callback came from, with a keyboard
func (b *Bot) editKeyboard(cq *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID, text, kb)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Error("edit failed", zap.Error(err))
	}
}
