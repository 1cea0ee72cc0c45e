package scenario

import (
	"github.com/google/uuid"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

// GenerateFunc builds a problem from a sampler.
type GenerateFunc func(s sampler.Sampler) *Problem

var generators = map[Module]GenerateFunc{
	BodyComposition:   GenerateBodyComposition,
	MuscleMass:        GenerateMuscleMass,
	TargetComposition: GenerateTargetComposition,
	CompositionChange: GenerateCompositionChange,
	GoalSetting:       GenerateGoalSetting,
	EnergyExpenditure: GenerateEnergyExpenditure,
	Macronutrients:    GenerateMacronutrients,
	FoodLabels:        GenerateFoodLabel,
}

// Generate builds a fresh problem for m.
func Generate(m Module, s sampler.Sampler) (*Problem, error) {
	gen, ok := generators[m]
	if !ok {
		return nil, &ErrUnknownModule{Module: string(m)}
	}
	return gen(s), nil
}

// newID draws a v4 UUID from s. It is always the last draw of a
// generator so scripted samplers only need to cover the scenario values.
func newID(s sampler.Sampler) string {
	return uuid.Must(uuid.NewRandomFromReader(sampler.Reader(s))).String()
}

func between(s sampler.Sampler, r catalog.Range) int {
	return s.Int(r.Min, r.Max)
}

// drawGender is male on 0 and female on 1.
func drawGender(s sampler.Sampler) calc.Gender {
	if s.Int(0, 1) == 0 {
		return calc.Male
	}
	return calc.Female
}
