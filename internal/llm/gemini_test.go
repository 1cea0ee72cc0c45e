package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(assessmentSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	score := schema.Properties["score"]
	if score.Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER for score, got %s", score.Type)
	}
	if score.Minimum == nil || *score.Minimum != 0 || score.Maximum == nil || *score.Maximum != 100 {
		t.Fatalf("expected score bounds 0..100, got %v..%v", score.Minimum, score.Maximum)
	}
	if schema.Properties["isCorrect"].Type != genai.TypeBoolean {
		t.Fatalf("expected BOOLEAN for isCorrect, got %s", schema.Properties["isCorrect"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_Array(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "number"},
	})
	if schema.Type != genai.TypeArray || schema.Items == nil || schema.Items.Type != genai.TypeNumber {
		t.Fatalf("unexpected array schema: %+v", schema)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if err := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	var u *ErrProviderUnavailable
	if err := mapGeminiError(&genai.APIError{Code: http.StatusServiceUnavailable}); !errors.As(err, &u) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &u) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
