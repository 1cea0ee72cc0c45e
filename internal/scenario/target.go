package scenario

import (
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

var (
	targetWeight  = catalog.Range{Min: 60, Max: 110}
	targetBodyFat = catalog.Range{Min: 25, Max: 40}
	targetDrop    = catalog.Range{Min: 5, Max: 12}
)

// GenerateTargetComposition draws weight, current body fat and the drop
// to the goal. The goal is always below the current body fat.
func GenerateTargetComposition(s sampler.Sampler) *Problem {
	w := between(s, targetWeight)
	bf := between(s, targetBodyFat)
	drop := between(s, targetDrop)
	return &Problem{
		Module:     TargetComposition,
		Difficulty: catalog.Medium,
		Subject: &Subject{
			WeightKg:             ptr(float64(w)),
			BodyFatPercent:       ptr(float64(bf)),
			TargetBodyFatPercent: ptr(float64(bf - drop)),
		},
		ID: newID(s),
	}
}
