// Package speech provides text-to-speech backends writing audio to a local
// file. Exactly one implementation is active at a time, selected by
// configuration.
package speech

import (
	"context"
	"fmt"

	"github.com/frazabot/fraza/pkg/config"
)

// Synthesizer renders text as speech audio into outFile
type Synthesizer interface {
	// Synthesize writes audio of the text, spoken in the language identified
	// by the speech-backend code, to outFile
	Synthesize(ctx context.Context, text, speechCode, outFile string) error

	// Name returns the backend name
	Name() string

	// FileSuffix returns the audio file extension the backend produces, e.g. ".mp3"
	FileSuffix() string
}

// New creates the synthesizer selected by the configuration
func New(cfg config.SpeechConfig) (Synthesizer, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("speech.openai.api_key is required")
		}
		return NewOpenAI(cfg), nil
	case "xtts":
		return NewXTTS(cfg), nil
	default:
		return nil, fmt.Errorf("unknown speech provider: %s", cfg.Provider)
	}
}
