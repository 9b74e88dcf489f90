package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/frazabot/fraza/pkg/domain"
	"github.com/frazabot/fraza/pkg/lang"
	"github.com/frazabot/fraza/pkg/pipeline"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/pipeline.go -pkg mocks -skip-ensure -fmt goimports . SentencePipeline
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// Store is the user state store the command layer needs
type Store interface {
	EnsureUser(ctx context.Context, userID int64) error
	GetSettings(ctx context.Context, userID int64) (*domain.UserPreference, error)
	SetLanguages(ctx context.Context, userID int64, source, target string) error
	SetQuota(ctx context.Context, userID int64, quota int) error
	ResetUsageIfNewDay(ctx context.Context, userID int64) error
	IncrementUsage(ctx context.Context, userID int64) error
}

// SentencePipeline runs one generate-translate-synthesize sequence
type SentencePipeline interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Messenger sends replies back to the chat
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendAudio(ctx context.Context, chatID int64, audioPath, caption string) error
}

// Command is one parsed inbound bot command
type Command struct {
	UserID int64
	ChatID int64
	Name   string // command name without the leading slash
	Arg    string // raw argument text, may be empty
}

// user-facing replies
const (
	msgUnsupportedLang = "Unsupported language code. Try /languages."
	msgSetSourceUsage  = "Usage: /set_source <language_code>. Try /languages for supported codes."
	msgSetTargetUsage  = "Usage: /set_target <language_code>. Try /languages for supported codes."
	msgSetQuotaUsage   = "Usage: /set_quota <number>"
	msgQuotaRange      = "Please choose a number between 1 and 100."
	msgQuotaInvalid    = "Invalid number. Usage: /set_quota <number>"
	msgGenericFailure  = "Sorry, something went wrong. Please try again."
	msgGenFailed       = "Sorry, sentence generation failed. Please try again."
	msgTransFailed     = "Sorry, translation failed. Please try again."
	msgSynthFailed     = "Sorry, audio synthesis failed. Please try again."
	msgUnknownCommand  = "Unknown command. Try /help."
)

// Processor maps inbound commands to store and pipeline operations and
// formats the replies
type Processor struct {
	store     Store
	pipeline  SentencePipeline
	messenger Messenger
	sanitizer *bluemonday.Policy
}

// NewProcessor creates the command processor
func NewProcessor(store Store, pipe SentencePipeline, messenger Messenger) *Processor {
	return &Processor{
		store:     store,
		pipeline:  pipe,
		messenger: messenger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Handle dispatches one command. The returned error is for logging only,
// every outcome the user should know about is already replied to the chat.
func (p *Processor) Handle(ctx context.Context, cmd Command) error {
	switch cmd.Name {
	case "start", "help":
		return p.handleStart(ctx, cmd)
	case "languages":
		return p.handleLanguages(ctx, cmd)
	case "get":
		return p.handleGet(ctx, cmd)
	case "set_source":
		return p.handleSetLang(ctx, cmd, true)
	case "set_target":
		return p.handleSetLang(ctx, cmd, false)
	case "set_quota":
		return p.handleSetQuota(ctx, cmd)
	default:
		return p.messenger.SendText(ctx, cmd.ChatID, msgUnknownCommand)
	}
}

// handleStart greets the user and shows current settings. /help shares the
// same reply.
func (p *Processor) handleStart(ctx context.Context, cmd Command) error {
	if err := p.store.EnsureUser(ctx, cmd.UserID); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}
	user, err := p.store.GetSettings(ctx, cmd.UserID)
	if err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}

	source, _ := lang.Resolve(user.SourceLang)
	target, _ := lang.Resolve(user.TargetLang)

	lines := []string{
		"Welcome! I send sentences in your target language with audio and a translation.",
		"",
		"Current settings:",
		fmt.Sprintf("- Source language: %s (%s)", source.Name, user.SourceLang),
		fmt.Sprintf("- Target language: %s (%s)", target.Name, user.TargetLang),
		fmt.Sprintf("- Daily quota: %d (used today: %d)", user.DailyQuota, user.SentToday),
		"",
		"Commands:",
		"- /get - receive one sentence now (respects daily quota)",
		"- /set_source <code> - set your source language",
		"- /set_target <code> - set your target language",
		"- /set_quota <n> - set your daily sentence limit",
		"- /languages - list supported language codes",
		"- /help - show help",
	}
	return p.messenger.SendText(ctx, cmd.ChatID, strings.Join(lines, "\n"))
}

// handleLanguages lists supported codes sorted by code
func (p *Processor) handleLanguages(ctx context.Context, cmd Command) error {
	lines := []string{"Supported languages (code - name):"}
	for _, info := range lang.All() {
		lines = append(lines, fmt.Sprintf("%s - %s", info.Code, info.Name))
	}
	return p.messenger.SendText(ctx, cmd.ChatID, strings.Join(lines, "\n"))
}

// handleGet delivers one sentence, enforcing the daily quota. The quota gate
// runs against the pre-request counter; usage is incremented only after the
// audio reply was delivered, and the temp audio file is removed on every
// exit path.
func (p *Processor) handleGet(ctx context.Context, cmd Command) error {
	if err := p.store.EnsureUser(ctx, cmd.UserID); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}
	if err := p.store.ResetUsageIfNewDay(ctx, cmd.UserID); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}
	user, err := p.store.GetSettings(ctx, cmd.UserID)
	if err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}

	if user.QuotaReached() {
		msg := fmt.Sprintf("Daily quota reached (%d/%d). Try again tomorrow or increase it with /set_quota.",
			user.SentToday, user.DailyQuota)
		return p.messenger.SendText(ctx, cmd.ChatID, msg)
	}

	source, ok := lang.Resolve(user.SourceLang)
	if !ok {
		return p.storageFailure(ctx, cmd.ChatID, fmt.Errorf("stored source language %q not in registry", user.SourceLang))
	}
	target, ok := lang.Resolve(user.TargetLang)
	if !ok {
		return p.storageFailure(ctx, cmd.ChatID, fmt.Errorf("stored target language %q not in registry", user.TargetLang))
	}

	res, err := p.pipeline.Run(ctx, pipeline.Request{
		SourceLangName:      source.Name,
		TargetTranslateCode: target.TranslateCode,
		TargetSpeechCode:    target.SpeechCode,
	})
	if err != nil {
		return p.pipelineFailure(ctx, cmd.ChatID, err)
	}
	defer res.Cleanup()

	caption := p.caption(source.Name, target.Name, res)
	if err := p.messenger.SendAudio(ctx, cmd.ChatID, res.AudioPath, caption); err != nil {
		return fmt.Errorf("send audio reply: %w", err)
	}

	if err := p.store.IncrementUsage(ctx, cmd.UserID); err != nil {
		// the reply is already out, only the counter lagged
		return fmt.Errorf("increment usage after delivery: %w", err)
	}
	return nil
}

// handleSetLang validates the code against the registry before any mutation
func (p *Processor) handleSetLang(ctx context.Context, cmd Command, isSource bool) error {
	if err := p.store.EnsureUser(ctx, cmd.UserID); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}

	if strings.TrimSpace(cmd.Arg) == "" {
		usage := msgSetTargetUsage
		if isSource {
			usage = msgSetSourceUsage
		}
		return p.messenger.SendText(ctx, cmd.ChatID, usage)
	}

	info, ok := lang.Resolve(cmd.Arg)
	if !ok {
		return p.messenger.SendText(ctx, cmd.ChatID, msgUnsupportedLang)
	}

	var err error
	var which string
	if isSource {
		err = p.store.SetLanguages(ctx, cmd.UserID, info.Code, "")
		which = "Source"
	} else {
		err = p.store.SetLanguages(ctx, cmd.UserID, "", info.Code)
		which = "Target"
	}
	if err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}

	return p.messenger.SendText(ctx, cmd.ChatID,
		fmt.Sprintf("%s language set to %s (%s).", which, info.Name, info.Code))
}

// handleSetQuota validates the range before any mutation
func (p *Processor) handleSetQuota(ctx context.Context, cmd Command) error {
	if err := p.store.EnsureUser(ctx, cmd.UserID); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}

	arg := strings.TrimSpace(cmd.Arg)
	if arg == "" {
		return p.messenger.SendText(ctx, cmd.ChatID, msgSetQuotaUsage)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return p.messenger.SendText(ctx, cmd.ChatID, msgQuotaInvalid)
	}
	if n < 1 || n > 100 {
		return p.messenger.SendText(ctx, cmd.ChatID, msgQuotaRange)
	}

	if err := p.store.SetQuota(ctx, cmd.UserID, n); err != nil {
		return p.storageFailure(ctx, cmd.ChatID, err)
	}
	return p.messenger.SendText(ctx, cmd.ChatID, fmt.Sprintf("Daily quota set to %d.", n))
}

// caption pairs the original and the translated sentence for the audio reply
func (p *Processor) caption(sourceName, targetName string, res *pipeline.Result) string {
	return fmt.Sprintf("Original in %s:\n<b>%s</b>\n-------------------------------------------\nTranslation to %s:\n<b>%s</b>",
		sourceName, p.sanitizer.Sanitize(res.Original), targetName, p.sanitizer.Sanitize(res.Translated))
}

// pipelineFailure replies with the stage-specific message, keeping backend
// details out of the chat
func (p *Processor) pipelineFailure(ctx context.Context, chatID int64, err error) error {
	msg := msgGenericFailure
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case pipeline.StageGeneration:
			msg = msgGenFailed
		case pipeline.StageTranslation:
			msg = msgTransFailed
		case pipeline.StageSynthesis:
			msg = msgSynthFailed
		}
	}
	if sendErr := p.messenger.SendText(ctx, chatID, msg); sendErr != nil {
		lgr.Printf("[WARN] failed to send pipeline failure reply: %v", sendErr)
	}
	return err
}

// storageFailure replies generically; storage errors end the request but
// never the process
func (p *Processor) storageFailure(ctx context.Context, chatID int64, err error) error {
	if sendErr := p.messenger.SendText(ctx, chatID, msgGenericFailure); sendErr != nil {
		lgr.Printf("[WARN] failed to send failure reply: %v", sendErr)
	}
	return err
}
