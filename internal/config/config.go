// Package config resolves nutriz settings. Layers apply in order:
// built-in defaults, the TOML file, a .env file, then NUTRIZ_*
// environment variables. When no provider ends up with a key, the
// standard provider key variables are probed.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/llm"
)

// DefaultAddr is where the HTTP API listens by default.
const DefaultAddr = ":8080"

// Config is the resolved configuration.
type Config struct {
	LLM     llm.Config
	Grading grading.Config

	// Addr is the HTTP listen address for serve.
	Addr string

	// AllowedOrigins are the CORS origins the HTTP API accepts.
	AllowedOrigins []string

	// DBPath is the event store path. Empty means store.DefaultDBPath.
	DBPath string

	LogLevel slog.Level
}

// Options selects the files Load reads. Empty paths use the defaults.
type Options struct {
	ConfigPath string
	EnvFile    string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LLM:            llm.DefaultConfig(),
		Grading:        grading.DefaultConfig(),
		Addr:           DefaultAddr,
		AllowedOrigins: []string{"*"},
		LogLevel:       slog.LevelInfo,
	}
}

// Load resolves the configuration.
func Load(opts Options) (Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = DefaultConfigPath()
	}
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(fc); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if !cfg.LLM.HasKey() {
		cfg.adoptDiscovered()
	}
	cfg.Grading.Timeout = cfg.LLM.Timeout
	return cfg, nil
}

// loadEnvFile loads a .env file without overriding variables already set.
// The default ./.env may be absent; an explicit path must exist.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func (c *Config) applyFile(fc FileConfig) error {
	l := fc.LLM
	set(&c.LLM.Provider, l.Provider)
	if l.Timeout != nil {
		d, err := parseTimeout(*l.Timeout)
		if err != nil {
			return fmt.Errorf("llm.timeout: %w", err)
		}
		c.LLM.Timeout = d
	}
	set(&c.LLM.Anthropic.APIKey, l.Anthropic.APIKey)
	set(&c.LLM.Anthropic.Model, l.Anthropic.Model)
	set(&c.LLM.Anthropic.BaseURL, l.Anthropic.BaseURL)
	set(&c.LLM.OpenAI.APIKey, l.OpenAI.APIKey)
	set(&c.LLM.OpenAI.Model, l.OpenAI.Model)
	set(&c.LLM.OpenAI.BaseURL, l.OpenAI.BaseURL)
	set(&c.LLM.Gemini.APIKey, l.Gemini.APIKey)
	set(&c.LLM.Gemini.Model, l.Gemini.Model)
	set(&c.LLM.OpenRouter.APIKey, l.OpenRouter.APIKey)
	set(&c.LLM.OpenRouter.Model, l.OpenRouter.Model)
	set(&c.LLM.OpenRouter.BaseURL, l.OpenRouter.BaseURL)

	set(&c.Grading.MaxTokens, fc.Grading.MaxTokens)
	set(&c.Grading.Temperature, fc.Grading.Temperature)

	set(&c.Addr, fc.Server.Addr)
	if len(fc.Server.AllowedOrigins) > 0 {
		c.AllowedOrigins = fc.Server.AllowedOrigins
	}
	set(&c.DBPath, fc.Store.Path)

	if fc.Log.Level != nil {
		lvl, err := parseLevel(*fc.Log.Level)
		if err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
		c.LogLevel = lvl
	}
	return nil
}

func (c *Config) applyEnv() error {
	llm.ApplyEnv(&c.LLM)
	if v := os.Getenv(llm.EnvPrefix + "DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(llm.EnvPrefix + "ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(llm.EnvPrefix + "LOG_LEVEL"); v != "" {
		lvl, err := parseLevel(v)
		if err != nil {
			return fmt.Errorf("%sLOG_LEVEL: %w", llm.EnvPrefix, err)
		}
		c.LogLevel = lvl
	}
	return nil
}

// adoptDiscovered takes the provider and key of the first standard key
// variable found, keeping models and timeouts already configured.
func (c *Config) adoptDiscovered() {
	d, ok := llm.DiscoverConfig()
	if !ok {
		return
	}
	c.LLM.Provider = d.Provider
	switch d.Provider {
	case llm.ProviderGemini:
		c.LLM.Gemini.APIKey = d.Gemini.APIKey
	case llm.ProviderOpenAI:
		c.LLM.OpenAI.APIKey = d.OpenAI.APIKey
	case llm.ProviderAnthropic:
		c.LLM.Anthropic.APIKey = d.Anthropic.APIKey
	case llm.ProviderOpenRouter:
		c.LLM.OpenRouter.APIKey = d.OpenRouter.APIKey
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return lvl, nil
}

// NewLogger returns a text logger writing to w at the configured level.
// A nil writer discards everything.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
