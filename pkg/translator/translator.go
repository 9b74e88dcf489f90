// Package translator provides translation backends. The source language is
// always auto-detected by the backend, only the target code is passed in.
package translator

import (
	"context"
	"fmt"

	"github.com/frazabot/fraza/pkg/config"
)

// Translator translates text into the target language
type Translator interface {
	// Translate returns the text translated into the language identified by
	// the translation-backend code, e.g. "zh-CN"
	Translate(ctx context.Context, text, targetCode string) (string, error)

	// Name returns the backend name
	Name() string
}

// New creates the translator selected by the configuration
func New(cfg config.TranslatorConfig) (Translator, error) {
	switch cfg.Provider {
	case "google":
		return NewGoogle(cfg.Google.Endpoint, cfg.Google.Timeout), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("translator.openai.api_key is required")
		}
		return NewOpenAI(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown translator provider: %s", cfg.Provider)
	}
}
