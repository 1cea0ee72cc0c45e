package scenario

import (
	"fmt"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

const tdeeStep = 50

// GenerateMacronutrients draws gender, a goal archetype, a TDEE on a
// 50 kcal grid inside the goal's band and a client number.
func GenerateMacronutrients(s sampler.Sampler) *Problem {
	g := drawGender(s)
	goals := catalog.MacroGoals()
	goal := goals[sampler.Pick(s, len(goals))]
	band := goal.TDEEBand(g)
	tdee := band.Min + s.Int(0, (band.Max-band.Min)/tdeeStep)*tdeeStep
	n := s.Int(0, 99)

	name := "Female Client"
	if g == calc.Male {
		name = "Male Client"
	}
	return &Problem{
		Module:     Macronutrients,
		Difficulty: catalog.Medium,
		Subject:    &Subject{Gender: g},
		Nutrition: &NutritionContext{
			ClientName:      fmt.Sprintf("%s %d", name, n),
			Goal:            goal.Label,
			GoalDescription: goal.Description,
			TDEE:            float64(tdee),
			Split:           goal.Split,
		},
		ID: newID(s),
	}
}
