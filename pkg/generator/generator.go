// Package generator provides sentence generation backends. Exactly one
// implementation is active at a time, selected by configuration.
package generator

import (
	"context"
	"fmt"

	"github.com/frazabot/fraza/pkg/config"
)

// Generator produces one short sentence in the given language
type Generator interface {
	// Generate returns a single declarative sentence in the language named
	// by its display name, e.g. "Russian"
	Generate(ctx context.Context, languageName string) (string, error)

	// Name returns the backend name
	Name() string
}

// New creates the generator selected by the configuration
func New(cfg config.GeneratorConfig) (Generator, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("generator.openai.api_key is required")
		}
		return NewOpenAI(cfg.OpenAI), nil
	case "template":
		return NewTemplate(0), nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %s", cfg.Provider)
	}
}
