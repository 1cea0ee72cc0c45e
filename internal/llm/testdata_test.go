package llm

// assessmentSchema mirrors the shape grading asks for.
func assessmentSchema() *Schema {
	return &Schema{
		Name:        "test-assessment",
		Description: "Grading result",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"isCorrect": map[string]any{"type": "boolean"},
				"feedback":  map[string]any{"type": "string"},
				"verdict":   map[string]any{"type": "string", "enum": []any{"pass", "fail"}},
			},
			"required": []any{"score", "isCorrect", "feedback"},
		},
	}
}

const gradedJSON = `{"score":85,"isCorrect":true,"feedback":"Fat mass and fat-free mass are both within tolerance."}`
