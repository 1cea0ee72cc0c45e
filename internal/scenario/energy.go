package scenario

import (
	"errors"
	"fmt"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

var (
	energyWeight = catalog.Range{Min: 55, Max: 110}
	energyHeight = catalog.Range{Min: 155, Max: 195}
	energyAge    = catalog.Range{Min: 20, Max: 60}
)

// GenerateEnergyExpenditure draws gender, weight, height, age and an
// activity level.
func GenerateEnergyExpenditure(s sampler.Sampler) *Problem {
	g := drawGender(s)
	w := between(s, energyWeight)
	h := between(s, energyHeight)
	age := between(s, energyAge)
	level := calc.ActivityLevels[sampler.Pick(s, len(calc.ActivityLevels))]
	return &Problem{
		Module:     EnergyExpenditure,
		Difficulty: catalog.Medium,
		Subject: &Subject{
			WeightKg: ptr(float64(w)),
			HeightCm: ptr(float64(h)),
			AgeYears: ptr(age),
			Gender:   g,
		},
		Energy: &EnergyContext{
			ActivityLevel: level.Label(),
			Multiplier:    level.Multiplier,
		},
		ID: newID(s),
	}
}

// ErrInvalidAttributes is wrapped by NewPersonalEnergy for out-of-domain
// learner input.
var ErrInvalidAttributes = errors.New("invalid personal attributes")

// PersonalAttributes are the learner's own details for the personal
// energy-expenditure variant.
type PersonalAttributes struct {
	Gender   calc.Gender `json:"gender"`
	WeightKg float64     `json:"weightKg"`
	HeightCm float64     `json:"heightCm"`
	AgeYears int         `json:"age"`

	// Activity is an activity level name or full label.
	Activity string `json:"activityLevel"`
}

// NewPersonalEnergy builds an energy-expenditure problem from learner
// input using the same activity table as the generator. Only the id is
// drawn from s.
func NewPersonalEnergy(s sampler.Sampler, a PersonalAttributes) (*Problem, error) {
	if !a.Gender.Valid() {
		return nil, fmt.Errorf("%w: gender %q", ErrInvalidAttributes, a.Gender)
	}
	if a.WeightKg <= 0 || a.HeightCm <= 0 || a.AgeYears <= 0 {
		return nil, fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidAttributes)
	}
	level, ok := calc.LookupActivity(a.Activity)
	if !ok {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidAttributes, a.Activity)
	}
	return &Problem{
		Module:     EnergyExpenditure,
		Difficulty: catalog.Medium,
		Subject: &Subject{
			WeightKg: ptr(a.WeightKg),
			HeightCm: ptr(a.HeightCm),
			AgeYears: ptr(a.AgeYears),
			Gender:   a.Gender,
		},
		Energy: &EnergyContext{
			ActivityLevel: level.Label(),
			Multiplier:    level.Multiplier,
			Personal:      true,
		},
		ID: newID(s),
	}, nil
}
