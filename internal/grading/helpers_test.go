package grading

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

func f(v float64) *float64 { return &v }

// Scripted problems with hand-checked answers.
func bodyCompProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateBodyComposition(sampler.NewScripted(75, 22))
	require.NoError(t, p.Validate())
	return p
}

func muscleProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateMuscleMass(sampler.NewScripted(0, 80, 20))
	require.NoError(t, p.Validate())
	return p
}

func targetProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateTargetComposition(sampler.NewScripted(90, 30, 10))
	require.NoError(t, p.Validate())
	return p
}

func goalProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateGoalSetting(sampler.NewScripted(0, 100, 30, 180))
	require.NoError(t, p.Validate())
	return p
}

func energyProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateEnergyExpenditure(sampler.NewScripted(1, 65, 168, 30, 2))
	require.NoError(t, p.Validate())
	return p
}

func macroProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateMacronutrients(sampler.NewScripted(1, 0, 4, 42))
	require.NoError(t, p.Validate())
	return p
}

func labelProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateFoodLabel(sampler.NewScripted(0, 0))
	require.NoError(t, p.Validate())
	return p
}

func changeProblem(t *testing.T) *scenario.Problem {
	t.Helper()
	p := scenario.GenerateCompositionChange(sampler.NewSeeded(3))
	require.NoError(t, p.Validate())
	return p
}
