package scenario

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/abhisek/nutriz/internal/calc"
)

type field uint16

const (
	fieldWeight field = 1 << iota
	fieldBodyFat
	fieldTargetBodyFat
	fieldGender
	fieldAge
	fieldHeight
	fieldPersona
	fieldEnergy
	fieldNutrition
	fieldLabel
	fieldChange
)

var fieldNames = []string{
	"weightKg", "bodyFatPercentage", "targetBodyFatPercentage", "gender",
	"age", "heightCm", "persona", "energy", "nutrition", "label", "change",
}

func (f field) names() string {
	var out []string
	for f != 0 {
		i := bits.TrailingZeros16(uint16(f))
		out = append(out, fieldNames[i])
		f &^= 1 << i
	}
	return strings.Join(out, ", ")
}

// moduleFields is the exact field set each module populates.
var moduleFields = map[Module]field{
	BodyComposition:   fieldWeight | fieldBodyFat,
	MuscleMass:        fieldWeight | fieldBodyFat | fieldGender,
	TargetComposition: fieldWeight | fieldBodyFat | fieldTargetBodyFat,
	CompositionChange: fieldChange,
	GoalSetting:       fieldWeight | fieldBodyFat | fieldAge | fieldHeight | fieldPersona,
	EnergyExpenditure: fieldWeight | fieldHeight | fieldAge | fieldGender | fieldEnergy,
	Macronutrients:    fieldGender | fieldNutrition,
	FoodLabels:        fieldLabel,
}

func (p *Problem) present() field {
	var f field
	if s := p.Subject; s != nil {
		if s.WeightKg != nil {
			f |= fieldWeight
		}
		if s.BodyFatPercent != nil {
			f |= fieldBodyFat
		}
		if s.TargetBodyFatPercent != nil {
			f |= fieldTargetBodyFat
		}
		if s.Gender != "" {
			f |= fieldGender
		}
		if s.AgeYears != nil {
			f |= fieldAge
		}
		if s.HeightCm != nil {
			f |= fieldHeight
		}
	}
	if p.Persona != nil {
		f |= fieldPersona
	}
	if p.Energy != nil {
		f |= fieldEnergy
	}
	if p.Nutrition != nil {
		f |= fieldNutrition
	}
	if p.Label != nil {
		f |= fieldLabel
	}
	if p.Change != nil {
		f |= fieldChange
	}
	return f
}

// Validate checks that p carries exactly its module's fields and that
// each value is in its legal domain.
func (p *Problem) Validate() error {
	if p == nil {
		return errors.New("problem is nil")
	}
	want, ok := moduleFields[p.Module]
	if !ok {
		return &ErrUnknownModule{Module: string(p.Module)}
	}
	if p.ID == "" {
		return errors.New("problem has no id")
	}
	have := p.present()
	if missing := want &^ have; missing != 0 {
		return fmt.Errorf("%s problem is missing %s", p.Module, missing.names())
	}
	if extra := have &^ want; extra != 0 {
		return fmt.Errorf("%s problem carries unrelated %s", p.Module, extra.names())
	}
	return p.validateValues()
}

func (p *Problem) validateValues() error {
	if s := p.Subject; s != nil {
		if s.WeightKg != nil && *s.WeightKg <= 0 {
			return fmt.Errorf("weight must be positive, got %v", *s.WeightKg)
		}
		if s.BodyFatPercent != nil && (*s.BodyFatPercent < 0 || *s.BodyFatPercent > 100) {
			return fmt.Errorf("body fat must be within 0-100%%, got %v", *s.BodyFatPercent)
		}
		if s.TargetBodyFatPercent != nil {
			goal := *s.TargetBodyFatPercent
			if goal < 0 || goal >= 100 {
				return fmt.Errorf("target body fat: %w", calc.ErrUndefinedTarget)
			}
			if s.BodyFatPercent != nil && goal >= *s.BodyFatPercent {
				return fmt.Errorf("target body fat %v must be below current %v", goal, *s.BodyFatPercent)
			}
		}
		if s.Gender != "" && !s.Gender.Valid() {
			return fmt.Errorf("unsupported gender %q", s.Gender)
		}
		if s.AgeYears != nil && *s.AgeYears <= 0 {
			return fmt.Errorf("age must be positive, got %d", *s.AgeYears)
		}
		if s.HeightCm != nil && *s.HeightCm <= 0 {
			return fmt.Errorf("height must be positive, got %v", *s.HeightCm)
		}
	}
	if e := p.Energy; e != nil {
		if !knownMultiplier(e.Multiplier) {
			return fmt.Errorf("activity multiplier %v is not in the activity table", e.Multiplier)
		}
	}
	if n := p.Nutrition; n != nil {
		if n.TDEE <= 0 {
			return fmt.Errorf("tdee must be positive, got %v", n.TDEE)
		}
		if err := n.Split.Validate(); err != nil {
			return err
		}
	}
	if c := p.Change; c != nil {
		if len(c.Options) != 4 {
			return fmt.Errorf("composition change needs 4 options, got %d", len(c.Options))
		}
		correct := 0
		for _, o := range c.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("composition change needs exactly one correct option, got %d", correct)
		}
	}
	return nil
}

func knownMultiplier(m float64) bool {
	for _, a := range calc.ActivityLevels {
		if a.Multiplier == m {
			return true
		}
	}
	return false
}
