package scenario

import (
	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

// Men skew heavier and leaner. The ranges are for realism only.
var muscleRanges = map[calc.Gender]struct{ Weight, BodyFat catalog.Range }{
	calc.Male:   {Weight: catalog.Range{Min: 65, Max: 110}, BodyFat: catalog.Range{Min: 10, Max: 25}},
	calc.Female: {Weight: catalog.Range{Min: 50, Max: 90}, BodyFat: catalog.Range{Min: 18, Max: 35}},
}

// GenerateMuscleMass draws gender, weight, then body fat.
func GenerateMuscleMass(s sampler.Sampler) *Problem {
	g := drawGender(s)
	r := muscleRanges[g]
	w := between(s, r.Weight)
	bf := between(s, r.BodyFat)
	return &Problem{
		Module:     MuscleMass,
		Difficulty: catalog.Medium,
		Subject: &Subject{
			WeightKg:       ptr(float64(w)),
			BodyFatPercent: ptr(float64(bf)),
			Gender:         g,
		},
		ID: newID(s),
	}
}
