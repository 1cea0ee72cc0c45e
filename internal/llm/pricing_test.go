package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	got := c.Cost(1_000_000, 100_000)
	if math.Abs(got-0.55) > 1e-9 {
		t.Fatalf("Cost = %v, want 0.55", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestDefaultModelsArePriced(t *testing.T) {
	cfg := DefaultConfig()
	for _, id := range []string{
		resolveModel(cfg.Gemini.Model, geminiModels),
		resolveModel(cfg.OpenAI.Model, openaiModels),
		resolveModel(cfg.Anthropic.Model, anthropicModels),
		cfg.OpenRouter.Model,
	} {
		if LookupCost(id) == nil {
			t.Errorf("no pricing for default model %q", id)
		}
	}
}
