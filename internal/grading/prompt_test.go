package grading

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/scenario"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name string
		p    func(*testing.T) *scenario.Problem
		sub  func(p *scenario.Problem) Submission
		want []string
	}{
		{
			"body composition", bodyCompProblem,
			func(p *scenario.Problem) Submission { return bodyCompSubmission(p) },
			[]string{"Body fat mass (BFM): 16.5 kg", "±0.1 kg", `"75 x 0.22 = 16.5`},
		},
		{
			"muscle mass", muscleProblem,
			func(p *scenario.Problem) Submission {
				return &MuscleMassSubmission{Working: "w", FFM: f(64), SMM: f(32)}
			},
			[]string{"Gender: male", "Total body mass: 80 kg", "SMM as % of total mass: not given%"},
		},
		{
			"target composition", targetProblem,
			func(p *scenario.Problem) Submission { return &TargetCompositionSubmission{Working: "w"} },
			[]string{"Goal body fat: 20%", "±0.2 kg"},
		},
		{
			"energy", energyProblem,
			func(p *scenario.Problem) Submission { return &EnergySubmission{Working: "w", BMR: f(1389)} },
			[]string{"Gender: female", "(multiplier 1.55)", "Activity level: Moderately Active", "BMR: 1389 kcal"},
		},
		{
			"macronutrients", macroProblem,
			func(p *scenario.Problem) Submission { return &MacronutrientSubmission{Working: "w"} },
			[]string{"TDEE: 2400 kcal", "Female Client 42", "Goal: Muscle Gain"},
		},
		{
			"food labels", labelProblem,
			func(p *scenario.Problem) Submission { return &FoodLabelSubmission{Response: "Avoid it."} },
			[]string{"Learner's response: \"Avoid it.\"", "Traffic lights"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p(t)
			got, err := buildPrompt(p, tt.sub(p))
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			assert.NotContains(t, got, "<no value>")
		})
	}
}

func TestBuildPrompt_PersonalEnergy(t *testing.T) {
	p := energyProblem(t)
	p.Energy.Personal = true
	got, err := buildPrompt(p, &EnergySubmission{Working: "w"})
	require.NoError(t, err)
	assert.Contains(t, got, "(the learner's own details)")
}

func TestBuildPrompt_CompositionChangeHasNoPrompt(t *testing.T) {
	p := changeProblem(t)
	_, err := buildPrompt(p, &ChoiceSubmission{})
	assert.Error(t, err)
}

func TestSchemas(t *testing.T) {
	for _, info := range scenario.Modules() {
		s, ok := Schema(info.Module)
		if info.Module == scenario.CompositionChange {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, info.Module)
		assert.Equal(t, "assessment-"+string(info.Module), s.Name)
	}
}

func TestSchema_AcceptsReconciledShape(t *testing.T) {
	s, _ := Schema(scenario.TargetComposition)
	good := json.RawMessage(`{"isCorrect":true,"score":90,"feedback":"f","reasoningCritique":"r",
		"corrections":{"ffm":63,"targetBodyMass":78.75,"massLossRequired":11.25}}`)
	assert.NoError(t, llm.ValidateAgainst(s, good))

	missing := json.RawMessage(`{"isCorrect":true,"score":90,"feedback":"f","reasoningCritique":"r",
		"corrections":{"ffm":63}}`)
	assert.Error(t, llm.ValidateAgainst(s, missing))

	extra := json.RawMessage(`{"isCorrect":true,"score":90,"feedback":"f","reasoningCritique":"r","grade":"A",
		"corrections":{"ffm":63,"targetBodyMass":78.75,"massLossRequired":11.25}}`)
	assert.Error(t, llm.ValidateAgainst(s, extra))
}

func TestSchema_FoodLabelsHasNoCorrections(t *testing.T) {
	s, _ := Schema(scenario.FoodLabels)
	assert.NoError(t, llm.ValidateAgainst(s,
		json.RawMessage(`{"isCorrect":false,"score":40,"feedback":"f","reasoningCritique":"r"}`)))
}
