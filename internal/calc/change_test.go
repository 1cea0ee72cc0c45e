package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeChange_Recomposition(t *testing.T) {
	c := AnalyzeChange(Measurement{Mass: 80, BodyFat: 25}, Measurement{Mass: 80, BodyFat: 20})

	assert.InDelta(t, -4, c.DeltaFM, 1e-9)
	assert.InDelta(t, 4, c.DeltaFFM, 1e-9)
	assert.InDelta(t, 0, c.DeltaMass(), 1e-9)
}

func TestAnalyzeChange_DeltasSumToMassChange(t *testing.T) {
	c := AnalyzeChange(Measurement{Mass: 90, BodyFat: 30}, Measurement{Mass: 84, BodyFat: 27})
	assert.InDelta(t, c.DeltaMass(), c.DeltaFM+c.DeltaFFM, 1e-9)
}

func TestChange_Rounded(t *testing.T) {
	c := AnalyzeChange(Measurement{Mass: 77, BodyFat: 23}, Measurement{Mass: 71, BodyFat: 19}).Rounded()

	assert.Equal(t, 17.7, c.Initial.FatMass)
	assert.Equal(t, 59.3, c.Initial.FatFreeMass)
	assert.Equal(t, 13.5, c.Final.FatMass)
	assert.Equal(t, 57.5, c.Final.FatFreeMass)
	assert.Equal(t, -4.2, c.DeltaFM)
	assert.Equal(t, -1.8, c.DeltaFFM)
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, Lost, DirectionOf(-2))
	assert.Equal(t, Gained, DirectionOf(1.5))
	assert.Equal(t, Maintained, DirectionOf(0.05))
	assert.Equal(t, Maintained, DirectionOf(-0.05))
	assert.Equal(t, Gained, Lost.Opposite())
	assert.Equal(t, Lost, Gained.Opposite())
}
