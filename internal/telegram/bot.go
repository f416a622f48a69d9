// Package telegram is the long-polling transport in front of the
// command router.
package telegram

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskbot/internal/commands"
	"taskbot/internal/router"
)

// Bot receives updates from the Telegram Bot API, decodes command
// messages into router requests, and sends the replies back.
type Bot struct {
	api    *tgbotapi.BotAPI
	router *router.Router
	log    *slog.Logger

	pollTimeout int
	wg          sync.WaitGroup
}

// Options configures the transport.
type Options struct {
	// Token is the bot token.
	Token string

	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int

	// Debug enables Bot API request logging.
	Debug bool
}

// New connects to the Bot API and returns a ready transport.
func New(opts Options, r *router.Router, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(opts.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = opts.Debug

	return &Bot{
		api:         api,
		router:      r,
		log:         log,
		pollTimeout: opts.PollTimeout,
	}, nil
}

// Run polls for updates until ctx is cancelled. Each update is handled
// on its own goroutine; the store serializes per-chat access, so
// bursts from one chat resolve to some serial order.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot is running and listening for commands", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return nil
			}
			msg := update.Message
			if msg == nil || !msg.IsCommand() {
				continue
			}
			b.wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleCommand(ctx, msg)
			}(msg)
		}
	}
}

// handleCommand decodes one command message, routes it, and sends the
// reply. Failures are logged and dropped; nothing here is fatal.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	req := commands.Request{
		ChatID:    msg.Chat.ID,
		Command:   msg.Command(),
		Args:      msg.CommandArguments(),
		MessageID: msg.MessageID,
		Sender:    displayName(msg.From),
	}

	resp, ok := b.router.Handle(ctx, req)
	if !ok {
		b.log.Debug("unknown command", "command", req.Command, "chat_id", req.ChatID)
		return
	}

	reply := tgbotapi.NewMessage(req.ChatID, resp.Text)
	if resp.ReplyTo != 0 {
		reply.ReplyToMessageID = resp.ReplyTo
	}
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("send reply", "chat_id", req.ChatID, "command", req.Command, "error", err)
	}
}

// displayName resolves the author label stored with a task: the
// @username when set, else the trimmed full name, else "Someone".
func displayName(u *tgbotapi.User) string {
	if u == nil {
		return "Someone"
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return "Someone"
}
