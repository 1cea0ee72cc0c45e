package scenario

import (
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

// GenerateGoalSetting picks a persona, then draws weight, body fat and
// height inside the persona's ranges. Difficulty follows the persona.
func GenerateGoalSetting(s sampler.Sampler) *Problem {
	personas := catalog.Personas()
	p := personas[sampler.Pick(s, len(personas))]
	w := between(s, p.Weight)
	bf := between(s, p.BodyFat)
	h := between(s, p.Height)
	return &Problem{
		Module:     GoalSetting,
		Difficulty: p.Difficulty,
		Subject: &Subject{
			WeightKg:       ptr(float64(w)),
			BodyFatPercent: ptr(float64(bf)),
			HeightCm:       ptr(float64(h)),
			AgeYears:       ptr(p.Age),
		},
		Persona: &Persona{
			Name:         p.Name,
			Occupation:   p.Occupation,
			Experience:   p.Experience,
			Goal:         p.Goal,
			Lifestyle:    p.Lifestyle,
			Availability: p.Availability,
		},
		ID: newID(s),
	}
}
