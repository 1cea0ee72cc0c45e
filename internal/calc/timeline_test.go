package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Defined(t *testing.T) {
	p := FatLossWeeks(10, 0.5)
	assert.True(t, p.Defined())
	assert.InDelta(t, 20, p.Value, 1e-9)
	assert.Equal(t, "20.0 weeks", p.String())

	m := MuscleGainMonths(3, 0.5)
	assert.Equal(t, "6.0 months", m.String())
}

func TestProject_Undefined(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		rate   float64
	}{
		{"zero rate", 10, 0},
		{"negative rate", 10, -0.5},
		{"negative amount", -3, 0.5},
		{"nan rate", 10, math.NaN()},
		{"inf amount", math.Inf(1), 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := FatLossWeeks(tc.amount, tc.rate)
			assert.False(t, p.Defined())
			assert.Equal(t, Undefined, p.String())
		})
	}
}

func TestProject_ZeroAmount(t *testing.T) {
	p := FatLossWeeks(0, 0.5)
	assert.True(t, p.Defined())
	assert.Zero(t, p.Value)
}
