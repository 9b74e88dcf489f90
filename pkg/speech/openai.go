package speech

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/frazabot/fraza/pkg/config"
)

// openAIVoices is the voice set the TTS models offer
var openAIVoices = []openai.SpeechVoice{
	openai.VoiceAlloy, openai.VoiceEcho, openai.VoiceFable,
	openai.VoiceOnyx, openai.VoiceNova, openai.VoiceShimmer,
}

// OpenAI synthesizes speech through the OpenAI TTS API, producing mp3
type OpenAI struct {
	client *openai.Client
	cfg    config.SpeechConfig
}

// NewOpenAI creates an OpenAI TTS synthesizer
func NewOpenAI(cfg config.SpeechConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.Endpoint != "" {
		clientConfig.BaseURL = cfg.OpenAI.Endpoint
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

// Synthesize renders the text to outFile. The TTS models detect the language
// from the text itself, so the speech code is not sent over the wire.
func (p *OpenAI) Synthesize(ctx context.Context, text, _ string, outFile string) error {
	voice, err := p.pickVoice()
	if err != nil {
		return err
	}

	if p.cfg.OpenAI.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.OpenAI.Timeout)
		defer cancel()
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.cfg.OpenAI.Model),
		Input:          text,
		Voice:          voice,
		Speed:          p.cfg.OpenAI.Speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	resp, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}
	defer resp.Close()

	out, err := os.Create(outFile) //nolint:gosec // path created by the pipeline
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}

// pickVoice returns the configured voice, or a random one from the offered set
func (p *OpenAI) pickVoice() (openai.SpeechVoice, error) {
	if p.cfg.OpenAI.Voice != "" {
		return openai.SpeechVoice(p.cfg.OpenAI.Voice), nil
	}
	if len(openAIVoices) == 0 {
		return "", fmt.Errorf("no voice available")
	}
	return openAIVoices[rand.Intn(len(openAIVoices))], nil //nolint:gosec // voice pick needs no crypto rand
}

// Name returns the backend name
func (p *OpenAI) Name() string { return "openai" }

// FileSuffix returns the produced audio extension
func (p *OpenAI) FileSuffix() string { return ".mp3" }
