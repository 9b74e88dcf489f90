// Package pipeline runs the generate-translate-synthesize sequence for one
// sentence request. The three stages fail independently and strictly in
// order: a failed stage aborts the run before any later stage does work.
// There are no retries and no partial resumption.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator
//go:generate moq -out mocks/synthesizer.go -pkg mocks -skip-ensure -fmt goimports . Synthesizer

// Generator produces one sentence in the source language
type Generator interface {
	Generate(ctx context.Context, languageName string) (string, error)
}

// Translator translates text into the target language, source auto-detected
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

// Synthesizer renders text as speech audio into outFile
type Synthesizer interface {
	Synthesize(ctx context.Context, text, speechCode, outFile string) error
	FileSuffix() string
}

// Request identifies the languages for one pipeline run
type Request struct {
	SourceLangName      string // display name passed to the generator, e.g. "Russian"
	TargetTranslateCode string // translation-backend code, e.g. "en"
	TargetSpeechCode    string // speech-backend code, e.g. "en"
}

// Result is one generated sentence with its translation and audio file.
// The audio file's lifetime belongs to the caller: Cleanup must run after
// the audio was consumed, on every exit path.
type Result struct {
	Original   string
	Translated string
	AudioPath  string
}

// Cleanup removes the audio file. Removal failures are logged, not
// surfaced - a leftover temp file does not affect correctness. Safe to call
// more than once.
func (r *Result) Cleanup() {
	if r.AudioPath == "" {
		return
	}
	if err := os.Remove(r.AudioPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] failed to remove audio file %s: %v", r.AudioPath, err)
	}
	r.AudioPath = ""
}

// Pipeline orchestrates the three stages
type Pipeline struct {
	generator   Generator
	translator  Translator
	synthesizer Synthesizer
	audioDir    string // directory for temp audio files, empty for system default
}

// New creates a pipeline over the three active backends
func New(generator Generator, translator Translator, synthesizer Synthesizer, audioDir string) *Pipeline {
	return &Pipeline{generator: generator, translator: translator, synthesizer: synthesizer, audioDir: audioDir}
}

// Run executes the three stages for one request. Any stage failure is
// returned as a *StageError identifying the phase; no state outlives a
// failed run except what Cleanup on a successful Result owns.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	original, err := p.generator.Generate(ctx, req.SourceLangName)
	if err != nil {
		return nil, &StageError{Stage: StageGeneration, Err: err}
	}
	original = ensureTerminalPunctuation(strings.TrimSpace(original))
	if original == "." {
		return nil, &StageError{Stage: StageGeneration, Err: fmt.Errorf("generator returned empty text")}
	}

	translated, err := p.translator.Translate(ctx, original, req.TargetTranslateCode)
	if err != nil {
		return nil, &StageError{Stage: StageTranslation, Err: err}
	}

	audioPath, err := p.synthesize(ctx, translated, req.TargetSpeechCode)
	if err != nil {
		return nil, &StageError{Stage: StageSynthesis, Err: err}
	}

	return &Result{Original: original, Translated: translated, AudioPath: audioPath}, nil
}

// synthesize writes the audio to a fresh temp file, removing the partial
// file when the backend fails
func (p *Pipeline) synthesize(ctx context.Context, text, speechCode string) (string, error) {
	tmp, err := os.CreateTemp(p.audioDir, "fraza-*"+p.synthesizer.FileSuffix())
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp audio file: %w", err)
	}

	if err := p.synthesizer.Synthesize(ctx, text, speechCode, tmpPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("[WARN] failed to remove partial audio file %s: %v", tmpPath, rmErr)
		}
		return "", err
	}
	return tmpPath, nil
}

// ensureTerminalPunctuation appends a period when the sentence does not end
// with terminal punctuation
func ensureTerminalPunctuation(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
