// Package config loads the YAML configuration file, expands environment
// variables in it and applies defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frazabot/fraza/pkg/lang"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Telegram struct {
		Token       string        `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot API token"`
		APIURL      string        `yaml:"api_url" json:"api_url" jsonschema:"default=https://api.telegram.org,description=Telegram API base URL"`
		PollTimeout time.Duration `yaml:"poll_timeout" json:"poll_timeout" jsonschema:"default=50s,description=Long poll timeout for getUpdates"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram transport configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=Status HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:fraza.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Defaults struct {
		SourceLang string `yaml:"source_lang" json:"source_lang" jsonschema:"default=ru,description=Source language for new users"`
		TargetLang string `yaml:"target_lang" json:"target_lang" jsonschema:"default=en,description=Target language for new users"`
		DailyQuota int    `yaml:"daily_quota" json:"daily_quota" jsonschema:"default=5,minimum=1,maximum=100,description=Daily sentence quota for new users"`
	} `yaml:"defaults" json:"defaults" jsonschema:"description=Defaults applied when a user record is created"`

	Generator  GeneratorConfig  `yaml:"generator" json:"generator" jsonschema:"description=Sentence generation backend"`
	Translator TranslatorConfig `yaml:"translator" json:"translator" jsonschema:"description=Translation backend"`
	Speech     SpeechConfig     `yaml:"speech" json:"speech" jsonschema:"description=Speech synthesis backend"`

	Janitor struct {
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=How often to sweep the audio directory"`
		MaxAge   time.Duration `yaml:"max_age" json:"max_age" jsonschema:"default=1h,description=Age after which an orphaned audio file is removed"`
	} `yaml:"janitor" json:"janitor" jsonschema:"description=Orphaned audio file cleanup"`
}

// OpenAIConfig holds settings shared by the OpenAI-backed providers
type OpenAIConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (optional)"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.8,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=100,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// GeneratorConfig selects and configures the sentence generation backend
type GeneratorConfig struct {
	Provider string       `yaml:"provider" json:"provider" jsonschema:"default=openai,enum=openai,enum=template,description=Active generation backend"`
	OpenAI   OpenAIConfig `yaml:"openai" json:"openai" jsonschema:"description=OpenAI generator settings"`
}

// TranslatorConfig selects and configures the translation backend
type TranslatorConfig struct {
	Provider string `yaml:"provider" json:"provider" jsonschema:"default=google,enum=google,enum=openai,description=Active translation backend"`
	Google   struct {
		Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://translate.googleapis.com,description=Translate endpoint base URL"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	} `yaml:"google" json:"google" jsonschema:"description=Google translate endpoint settings"`
	OpenAI OpenAIConfig `yaml:"openai" json:"openai" jsonschema:"description=OpenAI translator settings"`
}

// SpeechConfig selects and configures the speech synthesis backend
type SpeechConfig struct {
	Provider string `yaml:"provider" json:"provider" jsonschema:"default=openai,enum=openai,enum=xtts,description=Active synthesis backend"`
	AudioDir string `yaml:"audio_dir" json:"audio_dir" jsonschema:"description=Directory for temporary audio files (default system temp)"`
	OpenAI   struct {
		APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
		Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (optional)"`
		Model    string        `yaml:"model" json:"model" jsonschema:"default=tts-1,description=TTS model name"`
		Voice    string        `yaml:"voice" json:"voice" jsonschema:"description=Voice name; random pick when empty"`
		Speed    float64       `yaml:"speed" json:"speed" jsonschema:"default=1.0,description=Speech speed 0.25-4.0"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	} `yaml:"openai" json:"openai" jsonschema:"description=OpenAI TTS settings"`
	XTTS struct {
		URL            string        `yaml:"url" json:"url" jsonschema:"default=http://localhost:5002,description=XTTS server base URL"`
		ReferenceVoice string        `yaml:"reference_voice" json:"reference_voice" jsonschema:"description=Path to a reference voice wav sample (optional)"`
		Speakers       []string      `yaml:"speakers" json:"speakers" jsonschema:"description=Speaker ids offered by the server; random pick when no reference voice"`
		Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Request timeout"`
	} `yaml:"xtts" json:"xtts" jsonschema:"description=XTTS server settings"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with the documented defaults
func (c *Config) setDefaults() {
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = "https://api.telegram.org"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 50 * time.Second
	}

	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:fraza.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Defaults.SourceLang == "" {
		c.Defaults.SourceLang = "ru"
	}
	if c.Defaults.TargetLang == "" {
		c.Defaults.TargetLang = "en"
	}
	if c.Defaults.DailyQuota == 0 {
		c.Defaults.DailyQuota = 5
	}

	if c.Generator.Provider == "" {
		c.Generator.Provider = "openai"
	}
	if c.Generator.OpenAI.Model == "" {
		c.Generator.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Generator.OpenAI.Temperature == 0 {
		c.Generator.OpenAI.Temperature = 0.8
	}
	if c.Generator.OpenAI.MaxTokens == 0 {
		c.Generator.OpenAI.MaxTokens = 100
	}
	if c.Generator.OpenAI.Timeout == 0 {
		c.Generator.OpenAI.Timeout = 30 * time.Second
	}

	if c.Translator.Provider == "" {
		c.Translator.Provider = "google"
	}
	if c.Translator.Google.Endpoint == "" {
		c.Translator.Google.Endpoint = "https://translate.googleapis.com"
	}
	if c.Translator.Google.Timeout == 0 {
		c.Translator.Google.Timeout = 30 * time.Second
	}
	if c.Translator.OpenAI.Model == "" {
		c.Translator.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Translator.OpenAI.Temperature == 0 {
		c.Translator.OpenAI.Temperature = 0.3
	}
	if c.Translator.OpenAI.MaxTokens == 0 {
		c.Translator.OpenAI.MaxTokens = 200
	}
	if c.Translator.OpenAI.Timeout == 0 {
		c.Translator.OpenAI.Timeout = 30 * time.Second
	}

	if c.Speech.Provider == "" {
		c.Speech.Provider = "openai"
	}
	if c.Speech.OpenAI.Model == "" {
		c.Speech.OpenAI.Model = "tts-1"
	}
	if c.Speech.OpenAI.Speed == 0 {
		c.Speech.OpenAI.Speed = 1.0
	}
	if c.Speech.OpenAI.Timeout == 0 {
		c.Speech.OpenAI.Timeout = 60 * time.Second
	}
	if c.Speech.XTTS.URL == "" {
		c.Speech.XTTS.URL = "http://localhost:5002"
	}
	if c.Speech.XTTS.Timeout == 0 {
		c.Speech.XTTS.Timeout = 120 * time.Second
	}

	if c.Janitor.Interval == 0 {
		c.Janitor.Interval = 30 * time.Minute
	}
	if c.Janitor.MaxAge == 0 {
		c.Janitor.MaxAge = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	if _, ok := lang.Resolve(cfg.Defaults.SourceLang); !ok {
		return fmt.Errorf("defaults.source_lang %q is not a supported language", cfg.Defaults.SourceLang)
	}
	if _, ok := lang.Resolve(cfg.Defaults.TargetLang); !ok {
		return fmt.Errorf("defaults.target_lang %q is not a supported language", cfg.Defaults.TargetLang)
	}
	if cfg.Defaults.DailyQuota < 1 || cfg.Defaults.DailyQuota > 100 {
		return fmt.Errorf("defaults.daily_quota must be between 1 and 100")
	}

	switch cfg.Generator.Provider {
	case "openai", "template":
	default:
		return fmt.Errorf("unknown generator provider: %s", cfg.Generator.Provider)
	}
	switch cfg.Translator.Provider {
	case "google", "openai":
	default:
		return fmt.Errorf("unknown translator provider: %s", cfg.Translator.Provider)
	}
	switch cfg.Speech.Provider {
	case "openai", "xtts":
	default:
		return fmt.Errorf("unknown speech provider: %s", cfg.Speech.Provider)
	}

	if cfg.Speech.OpenAI.Speed < 0.25 || cfg.Speech.OpenAI.Speed > 4.0 {
		return fmt.Errorf("speech.openai.speed must be between 0.25 and 4.0")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
