package scenario

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

const iterations = 500

func TestGenerate_AllModulesValidate(t *testing.T) {
	s := sampler.NewSeeded(7)
	for _, info := range Modules() {
		t.Run(string(info.Module), func(t *testing.T) {
			for range iterations {
				p, err := Generate(info.Module, s)
				require.NoError(t, err)
				require.NoError(t, p.Validate())
			}
		})
	}
}

func TestGenerate_UnknownModule(t *testing.T) {
	_, err := Generate("juggling", sampler.New())
	var unknown *ErrUnknownModule
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "juggling", unknown.Module)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	for _, info := range Modules() {
		a, err := Generate(info.Module, sampler.NewSeeded(99))
		require.NoError(t, err)
		b, err := Generate(info.Module, sampler.NewSeeded(99))
		require.NoError(t, err)
		assert.Equal(t, a, b, info.Module)
	}
}

func TestParseModule(t *testing.T) {
	m, err := ParseModule(" Food-Labels ")
	require.NoError(t, err)
	assert.Equal(t, FoodLabels, m)

	_, err = ParseModule("nope")
	assert.Error(t, err)
}

func TestBodyComposition_Scripted(t *testing.T) {
	s := sampler.NewScripted(75, 22)
	p := GenerateBodyComposition(s)

	assert.Equal(t, 75.0, p.Weight())
	assert.Equal(t, 22.0, p.BodyFat())
	assert.Empty(t, p.Subject.Gender)
	assert.Nil(t, p.Subject.HeightCm)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 2+16, s.Draws)
}

func TestBodyComposition_Conservation(t *testing.T) {
	s := sampler.NewSeeded(1)
	for range iterations {
		p := GenerateBodyComposition(s)
		c := calc.Compose(p.Weight(), p.BodyFat())
		assert.InDelta(t, p.Weight(), c.FatMass+c.FatFreeMass, 1e-6)
		assert.GreaterOrEqual(t, p.Weight(), 50.0)
		assert.LessOrEqual(t, p.Weight(), 120.0)
	}
}

func TestMuscleMass_ReferenceInsideGenderBand(t *testing.T) {
	s := sampler.NewSeeded(2)
	for range iterations {
		p := GenerateMuscleMass(s)
		c := calc.Compose(p.Weight(), p.BodyFat())
		est := calc.EstimateMuscle(c.FatFreeMass, c.Mass, p.Gender())
		band := calc.MuscleBand(p.Gender()).Scale(c.FatFreeMass)
		assert.True(t, band.Contains(est.Reference, 0), "reference %v outside %v", est.Reference, band)
		assert.True(t, est.Accepts(est.Reference, est.RefPercent, 0))
	}
}

func TestMuscleMass_GenderRanges(t *testing.T) {
	p := GenerateMuscleMass(sampler.NewScripted(1, 200, 0))
	assert.Equal(t, calc.Female, p.Gender())
	assert.Equal(t, 90.0, p.Weight())
	assert.Equal(t, 18.0, p.BodyFat())
}

func TestTargetComposition_Inverse(t *testing.T) {
	s := sampler.NewSeeded(3)
	for range iterations {
		p := GenerateTargetComposition(s)
		require.Less(t, p.TargetBodyFat(), p.BodyFat())

		tgt, err := calc.SolveTarget(p.Weight(), p.BodyFat(), p.TargetBodyFat())
		require.NoError(t, err)
		recomputed := (1 - tgt.FatFreeMass/tgt.TargetMass) * 100
		assert.InDelta(t, p.TargetBodyFat(), recomputed, 0.5)
	}
}

func TestTargetComposition_Scripted(t *testing.T) {
	p := GenerateTargetComposition(sampler.NewScripted(90, 30, 10))
	assert.Equal(t, 90.0, p.Weight())
	assert.Equal(t, 30.0, p.BodyFat())
	assert.Equal(t, 20.0, p.TargetBodyFat())
}

func TestGoalSetting_PersonaRanges(t *testing.T) {
	s := sampler.NewSeeded(4)
	byName := map[string]catalog.Persona{}
	for _, p := range catalog.Personas() {
		byName[p.Name] = p
	}
	for range iterations {
		p := GenerateGoalSetting(s)
		persona, ok := byName[p.Persona.Name]
		require.True(t, ok)
		assert.Equal(t, persona.Difficulty, p.Difficulty)
		assert.Equal(t, persona.Age, p.Age())
		assert.GreaterOrEqual(t, int(p.Weight()), persona.Weight.Min)
		assert.LessOrEqual(t, int(p.Weight()), persona.Weight.Max)
		assert.GreaterOrEqual(t, int(p.BodyFat()), persona.BodyFat.Min)
		assert.LessOrEqual(t, int(p.BodyFat()), persona.BodyFat.Max)
		assert.GreaterOrEqual(t, int(p.Height()), persona.Height.Min)
		assert.LessOrEqual(t, int(p.Height()), persona.Height.Max)
	}
}

func TestEnergyExpenditure_Scripted(t *testing.T) {
	p := GenerateEnergyExpenditure(sampler.NewScripted(1, 65, 168, 30, 2))

	assert.Equal(t, calc.Female, p.Gender())
	assert.Equal(t, 1.55, p.Energy.Multiplier)
	assert.Equal(t, "Moderately Active (exercise 3-5 days/week)", p.Energy.ActivityLevel)
	assert.False(t, p.Energy.Personal)

	e := calc.Expenditure(p.Gender(), p.Weight(), p.Height(), float64(p.Age()), p.Energy.Multiplier)
	assert.InDelta(t, 1389, e.BMR, 1e-9)
	assert.InDelta(t, 2152.95, e.TDEE, 1e-9)
}

func TestNewPersonalEnergy(t *testing.T) {
	p, err := NewPersonalEnergy(sampler.NewSeeded(1), PersonalAttributes{
		Gender:   calc.Male,
		WeightKg: 82.5,
		HeightCm: 180,
		AgeYears: 34,
		Activity: "Very Active",
	})
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.True(t, p.Energy.Personal)
	assert.Equal(t, 1.725, p.Energy.Multiplier)
	assert.Equal(t, 82.5, p.Weight())
}

func TestNewPersonalEnergy_Rejects(t *testing.T) {
	cases := []PersonalAttributes{
		{Gender: "x", WeightKg: 70, HeightCm: 170, AgeYears: 30, Activity: "Sedentary"},
		{Gender: calc.Female, WeightKg: 0, HeightCm: 170, AgeYears: 30, Activity: "Sedentary"},
		{Gender: calc.Female, WeightKg: 70, HeightCm: 170, AgeYears: 30, Activity: "Couch Potato"},
	}
	for _, a := range cases {
		_, err := NewPersonalEnergy(sampler.New(), a)
		assert.ErrorIs(t, err, ErrInvalidAttributes)
	}
}

func TestMacronutrients_Scripted(t *testing.T) {
	p := GenerateMacronutrients(sampler.NewScripted(0, 0, 4, 42))

	assert.Equal(t, "Male Client 42", p.Nutrition.ClientName)
	assert.Equal(t, "Muscle Gain", p.Nutrition.Goal)
	assert.Equal(t, 3000.0, p.Nutrition.TDEE)
	assert.Equal(t, calc.Split{Carbs: 45, Protein: 30, Fat: 25}, p.Nutrition.Split)
}

func TestMacronutrients_RoundTripAndGrid(t *testing.T) {
	s := sampler.NewSeeded(5)
	for range iterations {
		p := GenerateMacronutrients(s)
		n := p.Nutrition
		assert.Zero(t, math.Mod(n.TDEE, 50))
		m := calc.Allocate(n.TDEE, n.Split)
		assert.InEpsilon(t, n.TDEE, m.Kcal(), 0.01)
	}
}

func TestFoodLabel_Scripted(t *testing.T) {
	p := GenerateFoodLabel(sampler.NewScripted(1, 0))

	require.NotNil(t, p.Label)
	assert.Equal(t, "Creamy Tomato Soup", p.Label.ProductName)
	assert.Equal(t, "I'm watching my salt intake for my blood pressure. Is this soup high in salt?", p.Label.Question)
	assert.Len(t, p.Label.Ratings, 4)
	assert.Nil(t, p.Subject)
}

func TestValidate_RejectsUnrelatedFields(t *testing.T) {
	p := GenerateFoodLabel(sampler.NewSeeded(1))
	p.Subject = &Subject{BodyFatPercent: ptr(20.0)}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bodyFatPercentage")
}

func TestValidate_RejectsMissingFields(t *testing.T) {
	p := GenerateMuscleMass(sampler.NewSeeded(1))
	p.Subject.Gender = ""

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing gender")
}

func TestValidate_RejectsGoalAboveCurrent(t *testing.T) {
	p := GenerateTargetComposition(sampler.NewScripted(90, 30, 10))
	p.Subject.TargetBodyFatPercent = ptr(35.0)
	assert.Error(t, p.Validate())

	p.Subject.TargetBodyFatPercent = ptr(100.0)
	assert.ErrorIs(t, p.Validate(), calc.ErrUndefinedTarget)
}

func TestDecode(t *testing.T) {
	s := sampler.NewSeeded(3)
	for _, info := range Modules() {
		p, err := Generate(info.Module, s)
		require.NoError(t, err)
		raw, err := json.Marshal(p)
		require.NoError(t, err)

		got, err := Decode(raw)
		require.NoError(t, err, info.Module)
		assert.Equal(t, p, got, info.Module)
	}

	_, err := Decode([]byte(`{"id":"x","module":"body-composition"}`))
	assert.Error(t, err, "missing subject")

	_, err = Decode([]byte(`not json`))
	assert.ErrorContains(t, err, "decode problem")
}
