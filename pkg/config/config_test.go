package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Minimal(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: test-token
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Telegram.Token)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.Equal(t, 50*time.Second, cfg.Telegram.PollTimeout)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "ru", cfg.Defaults.SourceLang)
	assert.Equal(t, "en", cfg.Defaults.TargetLang)
	assert.Equal(t, 5, cfg.Defaults.DailyQuota)
	assert.Equal(t, "openai", cfg.Generator.Provider)
	assert.Equal(t, "google", cfg.Translator.Provider)
	assert.Equal(t, "openai", cfg.Speech.Provider)
	assert.Equal(t, "tts-1", cfg.Speech.OpenAI.Model)
	assert.InDelta(t, 1.0, cfg.Speech.OpenAI.Speed, 0.001)
	assert.Equal(t, 30*time.Minute, cfg.Janitor.Interval)
	assert.Equal(t, time.Hour, cfg.Janitor.MaxAge)
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: tok
  api_url: http://localhost:9999
  poll_timeout: 10s
server:
  listen: ":9090"
  timeout: 5s
database:
  dsn: "file:test.db"
  max_open_conns: 2
defaults:
  source_lang: de
  target_lang: fr
  daily_quota: 10
generator:
  provider: template
translator:
  provider: openai
  openai:
    api_key: key1
    model: gpt-4o
speech:
  provider: xtts
  xtts:
    url: http://localhost:5003
    speakers: [ana, boris]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Telegram.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Telegram.PollTimeout)
	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "de", cfg.Defaults.SourceLang)
	assert.Equal(t, "fr", cfg.Defaults.TargetLang)
	assert.Equal(t, 10, cfg.Defaults.DailyQuota)
	assert.Equal(t, "template", cfg.Generator.Provider)
	assert.Equal(t, "openai", cfg.Translator.Provider)
	assert.Equal(t, "gpt-4o", cfg.Translator.OpenAI.Model)
	assert.Equal(t, "xtts", cfg.Speech.Provider)
	assert.Equal(t, []string{"ana", "boris"}, cfg.Speech.XTTS.Speakers)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "secret-token")
	path := writeConfig(t, `
telegram:
  token: ${TEST_BOT_TOKEN}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.Telegram.Token)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing token", "server:\n  listen: ':8080'\n", "telegram.token is required"},
		{"bad source lang", "telegram:\n  token: t\ndefaults:\n  source_lang: xx\n", "not a supported language"},
		{"bad target lang", "telegram:\n  token: t\ndefaults:\n  target_lang: klingon\n", "not a supported language"},
		{"quota too big", "telegram:\n  token: t\ndefaults:\n  daily_quota: 200\n", "between 1 and 100"},
		{"unknown generator", "telegram:\n  token: t\ngenerator:\n  provider: markov\n", "unknown generator provider"},
		{"unknown translator", "telegram:\n  token: t\ntranslator:\n  provider: babelfish\n", "unknown translator provider"},
		{"unknown speech", "telegram:\n  token: t\nspeech:\n  provider: festival\n", "unknown speech provider"},
		{"bad speed", "telegram:\n  token: t\nspeech:\n  openai:\n    speed: 9.0\n", "between 0.25 and 4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "telegram: [broken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
