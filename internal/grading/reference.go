package grading

import (
	"errors"
	"fmt"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/scenario"
)

// ErrModuleMismatch is returned when a submission does not belong to the
// problem's module.
var ErrModuleMismatch = errors.New("submission does not match problem module")

// rubric is how a module's numbers are checked.
type rubric struct {
	// corrections are the correction keys the module reports, in order.
	corrections []string

	// tolerance is the accepted absolute difference for each correction.
	tolerance float64

	reference func(p *scenario.Problem, sub Submission) Corrections
}

// muscleTolerance is the rounding allowance on each edge of the SMM band.
const muscleTolerance = 0.1

var rubrics = map[scenario.Module]rubric{
	scenario.BodyComposition: {
		corrections: []string{"bfm", "ffm"},
		tolerance:   0.1,
		reference: func(p *scenario.Problem, _ Submission) Corrections {
			c := calc.Compose(p.Weight(), p.BodyFat())
			return Corrections{BFM: ptr(calc.Round2(c.FatMass)), FFM: ptr(calc.Round2(c.FatFreeMass))}
		},
	},
	scenario.MuscleMass: {
		corrections: []string{"ffm", "smm", "smmPercent"},
		tolerance:   muscleTolerance,
		reference: func(p *scenario.Problem, sub Submission) Corrections {
			est := muscleEstimate(p)
			out := Corrections{
				FFM:        ptr(calc.Round2(est.FatFreeMass)),
				SMM:        ptr(calc.Round2(est.Reference)),
				SMMPercent: ptr(calc.Round2(est.RefPercent)),
			}
			// An answer inside the band is itself a correct reference.
			if m, ok := sub.(*MuscleMassSubmission); ok && m.SMM != nil && m.SMMPercent != nil &&
				est.Accepts(*m.SMM, *m.SMMPercent, muscleTolerance) {
				out.SMM = ptr(*m.SMM)
				out.SMMPercent = ptr(*m.SMMPercent)
			}
			return out
		},
	},
	scenario.TargetComposition: {
		corrections: []string{"ffm", "targetBodyMass", "massLossRequired"},
		tolerance:   0.2,
		reference: func(p *scenario.Problem, _ Submission) Corrections {
			t, err := calc.SolveTarget(p.Weight(), p.BodyFat(), p.TargetBodyFat())
			if err != nil {
				return Corrections{}
			}
			return Corrections{
				FFM:              ptr(calc.Round2(t.FatFreeMass)),
				TargetBodyMass:   ptr(calc.Round2(t.TargetMass)),
				MassLossRequired: ptr(calc.Round2(t.MassLossRequired)),
			}
		},
	},
	scenario.GoalSetting: {
		corrections: []string{"currentFatMass", "fatLossWeeks", "muscleGainMonths"},
		tolerance:   0.1,
		reference: func(p *scenario.Problem, sub Submission) Corrections {
			c := calc.Compose(p.Weight(), p.BodyFat())
			out := Corrections{CurrentFatMass: ptr(calc.Round2(c.FatMass))}
			g, ok := sub.(*GoalSettingSubmission)
			if !ok {
				g = &GoalSettingSubmission{}
			}
			done := g.Completed()
			out.setTimeline("fatLossWeeks", timeline(done.FatLossTarget, done.FatLossRate, calc.FatLossWeeks))
			out.setTimeline("muscleGainMonths", timeline(done.MuscleGainTarget, done.MuscleGainRate, calc.MuscleGainMonths))
			return out
		},
	},
	scenario.EnergyExpenditure: {
		corrections: []string{"bmr", "tdee"},
		tolerance:   20,
		reference: func(p *scenario.Problem, _ Submission) Corrections {
			var mult float64
			if p.Energy != nil {
				mult = p.Energy.Multiplier
			}
			e := calc.Expenditure(p.Gender(), p.Weight(), p.Height(), float64(p.Age()), mult)
			return Corrections{BMR: ptr(calc.Round2(e.BMR)), TDEE: ptr(calc.Round2(e.TDEE))}
		},
	},
	scenario.Macronutrients: {
		corrections: []string{"carbsGrams", "proteinGrams", "fatGrams"},
		tolerance:   3,
		reference: func(p *scenario.Problem, _ Submission) Corrections {
			if p.Nutrition == nil {
				return Corrections{}
			}
			m := calc.Allocate(p.Nutrition.TDEE, p.Nutrition.Split)
			return Corrections{
				CarbsGrams:   ptr(calc.Round2(m.CarbsG)),
				ProteinGrams: ptr(calc.Round2(m.ProteinG)),
				FatGrams:     ptr(calc.Round2(m.FatG)),
			}
		},
	},
	scenario.FoodLabels: {
		reference: func(*scenario.Problem, Submission) Corrections { return Corrections{} },
	},
	scenario.CompositionChange: {
		reference: func(*scenario.Problem, Submission) Corrections { return Corrections{} },
	},
}

func muscleEstimate(p *scenario.Problem) calc.MuscleEstimate {
	c := calc.Compose(p.Weight(), p.BodyFat())
	return calc.EstimateMuscle(c.FatFreeMass, p.Weight(), p.Gender())
}

// timeline projects amount at rate, rounded to 0.1. A missing amount or
// rate gives an undefined projection.
func timeline(amount, rate *float64, project func(amount, rate float64) calc.Projection) calc.Projection {
	if amount == nil || rate == nil {
		return calc.Projection{}
	}
	proj := project(*amount, *rate)
	if proj.Defined() {
		proj.Value = calc.Round1(proj.Value)
	}
	return proj
}

// Reference computes the exact corrections for a problem. Goal-setting
// timelines are projected from the learner's own amounts and rates.
func Reference(p *scenario.Problem, sub Submission) (Corrections, error) {
	if err := p.Validate(); err != nil {
		return Corrections{}, err
	}
	if sub != nil && sub.Module() != p.Module {
		return Corrections{}, fmt.Errorf("%w: %s submission for %s problem", ErrModuleMismatch, sub.Module(), p.Module)
	}
	return rubrics[p.Module].reference(p, sub), nil
}

// Tolerance is the accepted absolute difference for a module's numeric
// answers.
func Tolerance(m scenario.Module) float64 {
	return rubrics[m].tolerance
}

// Entries lists the set corrections for m in display order.
func (c *Corrections) Entries(m scenario.Module) []Correction {
	return c.entries(rubrics[m].corrections)
}
