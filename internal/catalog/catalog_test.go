package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nutriz/internal/calc"
)

func TestPersonas_Shape(t *testing.T) {
	ps := Personas()
	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Goal)
		assert.LessOrEqual(t, p.Weight.Min, p.Weight.Max, p.Name)
		assert.LessOrEqual(t, p.Height.Min, p.Height.Max, p.Name)
		assert.LessOrEqual(t, p.BodyFat.Min, p.BodyFat.Max, p.Name)
		assert.Contains(t, []Difficulty{Easy, Medium, Hard}, p.Difficulty)
	}
}

func TestPersonas_ReturnsCopy(t *testing.T) {
	ps := Personas()
	ps[0].Name = "changed"
	assert.Equal(t, "James", Personas()[0].Name)
}

func TestProducts_Shape(t *testing.T) {
	ps := Products()
	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.GreaterOrEqual(t, len(p.Questions), 2, p.Name)
		assert.LessOrEqual(t, len(p.Questions), 3, p.Name)
		assert.NotEmpty(t, p.Ingredients)
	}
}

func TestMacroGoals_SplitsSumTo100(t *testing.T) {
	gs := MacroGoals()
	require.Len(t, gs, 4)
	for _, g := range gs {
		assert.NoError(t, g.Split.Validate(), g.Label)
		for _, gender := range []calc.Gender{calc.Male, calc.Female} {
			band := g.TDEEBand(gender)
			assert.Zero(t, band.Min%50, g.Label)
			assert.Zero(t, band.Max%50, g.Label)
			assert.Less(t, band.Min, band.Max, g.Label)
		}
	}
}

func TestMacroGoals_Archetypes(t *testing.T) {
	want := map[string]calc.Split{
		"Muscle Gain":         {Carbs: 45, Protein: 30, Fat: 25},
		"Endurance Athlete":   {Carbs: 60, Protein: 15, Fat: 25},
		"Fat Loss (Standard)": {Carbs: 40, Protein: 30, Fat: 30},
		"General Health":      {Carbs: 50, Protein: 15, Fat: 35},
	}
	for _, g := range MacroGoals() {
		assert.Equal(t, want[g.Label], g.Split, g.Label)
	}
}

func TestTrafficLight(t *testing.T) {
	tests := []struct {
		n    Nutrient
		v    float64
		want Light
	}{
		{NutrientFat, 3, Green},
		{NutrientFat, 3.1, Amber},
		{NutrientFat, 18, Red},
		{NutrientSaturates, 9, Red},
		{NutrientSugars, 22, Amber},
		{NutrientSugars, 2, Green},
		{NutrientSalt, 0.05, Green},
		{NutrientSalt, 0.7, Amber},
		{NutrientSalt, 1.5, Amber},
		{NutrientSalt, 1.51, Red},
		{Nutrient("fibre"), 100, Green},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrafficLight(tt.n, tt.v), "%s=%v", tt.n, tt.v)
	}
}

func TestRatings_Granola(t *testing.T) {
	r := Products()[0].Nutrition.Ratings()
	require.Len(t, r, 4)
	assert.Equal(t, Red, r[0].Light)   // fat 18
	assert.Equal(t, Amber, r[1].Light) // saturates 4.5
	assert.Equal(t, Amber, r[2].Light) // sugars 22
	assert.Equal(t, Green, r[3].Light) // salt 0.05
}
