package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the TOML config file. Pointer fields stay nil when a key
// is absent so defaults survive.
type FileConfig struct {
	LLM     LLMFile     `toml:"llm"`
	Grading GradingFile `toml:"grading"`
	Server  ServerFile  `toml:"server"`
	Store   StoreFile   `toml:"store"`
	Log     LogFile     `toml:"log"`
}

// LLMFile maps the [llm] table.
type LLMFile struct {
	Provider   *string      `toml:"provider"`
	Timeout    *string      `toml:"timeout"`
	Anthropic  ProviderFile `toml:"anthropic"`
	OpenAI     ProviderFile `toml:"openai"`
	Gemini     ProviderFile `toml:"gemini"`
	OpenRouter ProviderFile `toml:"openrouter"`
}

// ProviderFile maps one [llm.<provider>] table. BaseURL is ignored for
// Gemini.
type ProviderFile struct {
	APIKey  *string `toml:"api-key"`
	Model   *string `toml:"model"`
	BaseURL *string `toml:"base-url"`
}

// GradingFile maps the [grading] table.
type GradingFile struct {
	MaxTokens   *int     `toml:"max-tokens"`
	Temperature *float64 `toml:"temperature"`
}

// ServerFile maps the [server] table.
type ServerFile struct {
	Addr           *string  `toml:"addr"`
	AllowedOrigins []string `toml:"allowed-origins"`
}

// StoreFile maps the [store] table.
type StoreFile struct {
	Path *string `toml:"path"`
}

// LogFile maps the [log] table.
type LogFile struct {
	Level *string `toml:"level"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return fc, nil
}
