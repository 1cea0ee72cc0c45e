package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocate_Grams(t *testing.T) {
	m := Allocate(2000, Split{Carbs: 50, Protein: 25, Fat: 25})

	assert.InDelta(t, 250, m.CarbsG, 1e-9)
	assert.InDelta(t, 125, m.ProteinG, 1e-9)
	assert.InDelta(t, 55.5556, m.FatG, 1e-4)
}

func TestAllocate_KcalRoundTrip(t *testing.T) {
	splits := []Split{
		{Carbs: 40, Protein: 30, Fat: 30},
		{Carbs: 60, Protein: 20, Fat: 20},
		{Carbs: 40, Protein: 35, Fat: 25},
		{Carbs: 50, Protein: 20, Fat: 30},
	}
	for _, s := range splits {
		for tdee := 1600.0; tdee <= 4000; tdee += 50 {
			assert.InDelta(t, tdee, Allocate(tdee, s).Kcal(), 1e-6)
		}
	}
}

func TestSplit_Validate(t *testing.T) {
	assert.NoError(t, Split{Carbs: 50, Protein: 20, Fat: 30}.Validate())
	assert.Error(t, Split{Carbs: 50, Protein: 20, Fat: 20}.Validate())
	assert.Error(t, Split{Carbs: 110, Protein: -10, Fat: 0}.Validate())
}
