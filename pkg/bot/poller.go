package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// Handler processes one parsed command
type Handler interface {
	Handle(ctx context.Context, cmd Command) error
}

// Updater is the long-poll side of the Telegram client
type Updater interface {
	GetMe(ctx context.Context) (*User, error)
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error)
}

// Poller drives the sequential long-poll loop, parsing updates into
// commands and handing them to the processor one at a time
type Poller struct {
	client      Updater
	handler     Handler
	pollTimeout time.Duration // passed to getUpdates
	retryDelay  time.Duration // pause after a failed poll
}

// NewPoller creates the update loop
func NewPoller(client Updater, handler Handler, pollTimeout time.Duration) *Poller {
	return &Poller{
		client:      client,
		handler:     handler,
		pollTimeout: pollTimeout,
		retryDelay:  3 * time.Second,
	}
}

// Run polls until the context is canceled. Updates are confirmed by
// advancing the offset past the highest seen update id, so a crashed
// handler never replays the whole backlog.
func (p *Poller) Run(ctx context.Context) error {
	me, err := p.client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("identify bot: %w", err)
	}
	lgr.Printf("[INFO] polling updates as @%s (id %d)", me.UserName, me.ID)

	var offset int64
	for {
		if err := ctx.Err(); err != nil {
			lgr.Printf("[INFO] poller stopped")
			return nil
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				lgr.Printf("[INFO] poller stopped")
				return nil
			}
			lgr.Printf("[WARN] poll failed: %v", err)
			select {
			case <-ctx.Done():
				lgr.Printf("[INFO] poller stopped")
				return nil
			case <-time.After(p.retryDelay):
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			cmd, ok := parseCommand(upd)
			if !ok {
				continue
			}
			if err := p.handler.Handle(ctx, cmd); err != nil {
				lgr.Printf("[WARN] command /%s from user %d failed: %v", cmd.Name, cmd.UserID, err)
			}
		}
	}
}

// parseCommand extracts a bot command from an update. Non-command messages
// and updates without a message or sender are skipped.
func parseCommand(upd Update) (Command, bool) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return Command{}, false
	}
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}

	name, arg, _ := strings.Cut(text[1:], " ")
	// group chats address commands as /cmd@botname
	name, _, _ = strings.Cut(name, "@")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Command{}, false
	}

	return Command{
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
		Name:   name,
		Arg:    strings.TrimSpace(arg),
	}, true
}
