package calc

import "math"

// Measurement is a body mass and body-fat percentage at one point in time.
type Measurement struct {
	Mass    float64 `json:"weightKg"`
	BodyFat float64 `json:"bodyFatPercentage"`
}

// Change describes how fat and fat-free mass moved between two
// measurements.
type Change struct {
	Initial  Composition
	Final    Composition
	DeltaFM  float64 // kg, final minus initial
	DeltaFFM float64 // kg, final minus initial
}

// DeltaMass is the total change in body mass.
func (c Change) DeltaMass() float64 {
	return c.Final.Mass - c.Initial.Mass
}

// AnalyzeChange computes the exact composition deltas.
func AnalyzeChange(initial, final Measurement) Change {
	i := Compose(initial.Mass, initial.BodyFat)
	f := Compose(final.Mass, final.BodyFat)
	return Change{
		Initial:  i,
		Final:    f,
		DeltaFM:  f.FatMass - i.FatMass,
		DeltaFFM: f.FatFreeMass - i.FatFreeMass,
	}
}

// Rounded returns the change as a learner would work it by hand: each
// fat and fat-free mass rounded to 0.1 kg, deltas taken from the rounded
// values and rounded again.
func (c Change) Rounded() Change {
	round := func(comp Composition) Composition {
		fm := Round1(comp.FatMass)
		comp.FatMass = fm
		comp.FatFreeMass = Round1(comp.Mass - fm)
		return comp
	}
	i, f := round(c.Initial), round(c.Final)
	return Change{
		Initial:  i,
		Final:    f,
		DeltaFM:  Round1(f.FatMass - i.FatMass),
		DeltaFFM: Round1(f.FatFreeMass - i.FatFreeMass),
	}
}

// Direction classifies a mass delta.
type Direction string

const (
	Lost       Direction = "lost"
	Gained     Direction = "gained"
	Maintained Direction = "maintained"
)

// MaintainedThreshold is the magnitude below which a change counts as
// no change at all.
const MaintainedThreshold = 0.1

// DirectionOf maps a delta to lost, gained or maintained.
func DirectionOf(delta float64) Direction {
	switch {
	case math.Abs(delta) < MaintainedThreshold:
		return Maintained
	case delta < 0:
		return Lost
	default:
		return Gained
	}
}

// Opposite flips lost and gained. Maintained has no opposite direction and
// is mapped to lost, matching how the raw sign of a near-zero gain reads.
func (d Direction) Opposite() Direction {
	if d == Lost {
		return Gained
	}
	return Lost
}
