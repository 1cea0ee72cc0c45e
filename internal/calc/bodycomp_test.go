package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose_WorkedExample(t *testing.T) {
	c := Compose(75, 22)
	assert.InDelta(t, 16.5, c.FatMass, 1e-9)
	assert.InDelta(t, 58.5, c.FatFreeMass, 1e-9)
}

func TestCompose_PartsSumToMass(t *testing.T) {
	for mass := 50.0; mass <= 120; mass += 3.7 {
		for bf := 10.0; bf <= 40; bf += 1.3 {
			c := Compose(mass, bf)
			assert.InDelta(t, mass, c.FatMass+c.FatFreeMass, 1e-9)
		}
	}
}

func TestCompose_Extremes(t *testing.T) {
	zero := Compose(80, 0)
	assert.Zero(t, zero.FatMass)
	assert.Equal(t, 80.0, zero.FatFreeMass)

	all := Compose(80, 100)
	assert.Equal(t, 80.0, all.FatMass)
	assert.Zero(t, all.FatFreeMass)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 16.4, Round1(16.44))
	assert.Equal(t, 2152.95, Round2(2152.9500001))
	assert.True(t, Within(10.5, 10, 0.5))
	assert.False(t, Within(10.6, 10, 0.5))
}
