package scenario

import (
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

var (
	bodyCompWeight  = catalog.Range{Min: 50, Max: 120}
	bodyCompBodyFat = catalog.Range{Min: 10, Max: 40}
)

// GenerateBodyComposition draws weight then body fat.
func GenerateBodyComposition(s sampler.Sampler) *Problem {
	w := between(s, bodyCompWeight)
	bf := between(s, bodyCompBodyFat)
	return &Problem{
		Module:     BodyComposition,
		Difficulty: catalog.Medium,
		Subject: &Subject{
			WeightKg:       ptr(float64(w)),
			BodyFatPercent: ptr(float64(bf)),
		},
		ID: newID(s),
	}
}
