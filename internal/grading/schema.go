package grading

import (
	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/scenario"
)

// schemas holds the assessment schema for each LLM-graded module.
var schemas = func() map[scenario.Module]*llm.Schema {
	out := make(map[scenario.Module]*llm.Schema)
	for m, r := range rubrics {
		if m == scenario.CompositionChange {
			continue
		}
		out[m] = assessmentSchema(m, r.corrections)
	}
	return out
}()

// assessmentSchema builds the response schema for a module. Every
// property is required and no others are allowed, which strict
// structured-output modes need. Score bounds are left out so an
// out-of-range score is clamped rather than rejected.
func assessmentSchema(m scenario.Module, corrections []string) *llm.Schema {
	props := map[string]any{
		"isCorrect": map[string]any{
			"type":        "boolean",
			"description": "Whether the learner's final answers are correct within tolerance",
		},
		"score": map[string]any{
			"type":        "integer",
			"description": "Score from 0 to 100 covering accuracy and quality of working",
		},
		"feedback": map[string]any{
			"type":        "string",
			"description": "Constructive feedback for the learner in UK English",
		},
		"reasoningCritique": map[string]any{
			"type":        "string",
			"description": "Critique of the learner's written working or reasoning",
		},
	}
	required := []any{"isCorrect", "score", "feedback", "reasoningCritique"}

	if len(corrections) > 0 {
		cprops := make(map[string]any, len(corrections))
		creq := make([]any, 0, len(corrections))
		for _, k := range corrections {
			f := correctionFields[k]
			cprops[k] = map[string]any{
				"type":        "number",
				"description": "Correct " + f.label + " in " + f.unit,
			}
			creq = append(creq, k)
		}
		props["corrections"] = map[string]any{
			"type":                 "object",
			"description":          "The correct reference values",
			"properties":           cprops,
			"required":             creq,
			"additionalProperties": false,
		}
		required = append(required, "corrections")
	}

	return &llm.Schema{
		Name:        "assessment-" + string(m),
		Description: "Assessment of a learner's " + string(m) + " submission",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// Schema returns the assessment schema for an LLM-graded module.
func Schema(m scenario.Module) (*llm.Schema, bool) {
	s, ok := schemas[m]
	return s, ok
}
