package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nutriz/internal/llm"
)

var envVars = []string{
	"NUTRIZ_LLM_PROVIDER", "NUTRIZ_LLM_TIMEOUT", "NUTRIZ_DB", "NUTRIZ_ADDR", "NUTRIZ_LOG_LEVEL",
	"NUTRIZ_ANTHROPIC_API_KEY", "NUTRIZ_OPENAI_API_KEY", "NUTRIZ_GEMINI_API_KEY", "NUTRIZ_OPENROUTER_API_KEY",
	"NUTRIZ_GEMINI_MODEL", "NUTRIZ_OPENAI_MODEL",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

// cleanEnv unsets every variable Load reads and restores them afterwards.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func missing(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load(Options{ConfigPath: missing(t)})
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Grading.Timeout)
	assert.False(t, cfg.LLM.HasKey())
}

func TestLoad_File(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, "config.toml", `
[llm]
provider = "openai"
timeout = "12s"

[llm.openai]
api-key = "sk-file"
model = "gpt-4o"
base-url = "http://localhost:11434/v1"

[grading]
max-tokens = 2048
temperature = 0.5

[server]
addr = "127.0.0.1:9000"
allowed-origins = ["https://learn.example"]

[store]
path = "/tmp/n.db"

[log]
level = "debug"
`)

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.OpenAI.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 12*time.Second, cfg.Grading.Timeout)
	assert.Equal(t, 2048, cfg.Grading.MaxTokens)
	assert.Equal(t, 0.5, cfg.Grading.Temperature)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, []string{"https://learn.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "/tmp/n.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	// Untouched keys keep defaults.
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, "config.toml", `
[llm]
provider = "openai"
[llm.openai]
api-key = "sk-file"
[server]
addr = ":1"
`)
	t.Setenv("NUTRIZ_OPENAI_API_KEY", "sk-env")
	t.Setenv("NUTRIZ_ADDR", ":2")
	t.Setenv("NUTRIZ_DB", "/tmp/env.db")

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, ":2", cfg.Addr)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_EnvFile(t *testing.T) {
	cleanEnv(t)
	envFile := writeFile(t, ".env", "NUTRIZ_LLM_PROVIDER=anthropic\nNUTRIZ_ANTHROPIC_API_KEY=ak-dotenv\nNUTRIZ_ADDR=:7000\n")
	t.Setenv("NUTRIZ_ADDR", ":6000")

	cfg, err := Load(Options{ConfigPath: missing(t), EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "ak-dotenv", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, ":6000", cfg.Addr, "existing variables win over the .env file")
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	cleanEnv(t)
	_, err := Load(Options{ConfigPath: missing(t), EnvFile: filepath.Join(t.TempDir(), "nope.env")})
	assert.Error(t, err)
}

func TestLoad_DiscoversProvider(t *testing.T) {
	cleanEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak-std")
	t.Setenv("NUTRIZ_GEMINI_MODEL", "gemini-pro")

	cfg, err := Load(Options{ConfigPath: missing(t)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "ak-std", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
	assert.True(t, cfg.LLM.HasKey())
}

func TestLoad_ConfiguredProviderNotReplaced(t *testing.T) {
	cleanEnv(t)
	t.Setenv("NUTRIZ_LLM_PROVIDER", "openai")
	t.Setenv("NUTRIZ_OPENAI_API_KEY", "sk")
	t.Setenv("GEMINI_API_KEY", "g")

	cfg, err := Load(Options{ConfigPath: missing(t)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Gemini.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[llm\nprovider="},
		{"unknown key", "[llm]\nprovder = \"openai\"\n"},
		{"bad timeout", "[llm]\ntimeout = \"soon\"\n"},
		{"negative timeout", "[llm]\ntimeout = \"-1s\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			_, err := Load(Options{ConfigPath: writeFile(t, "config.toml", tt.body)})
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadEnvLevel(t *testing.T) {
	cleanEnv(t)
	t.Setenv("NUTRIZ_LOG_LEVEL", "chatty")
	_, err := Load(Options{ConfigPath: missing(t)})
	assert.Error(t, err)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "nutriz", "config.toml"), DefaultConfigPath())
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = slog.LevelWarn
	l := cfg.NewLogger(nil)
	assert.False(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, l.Enabled(t.Context(), slog.LevelWarn))
}
