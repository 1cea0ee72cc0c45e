package calc

// Gender selects the sex-specific constants in the muscle and BMR formulas.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Valid reports whether g is one of the supported values.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// Band is an inclusive fractional range.
type Band struct {
	Min float64
	Max float64
}

// Mid returns the centre of the band.
func (b Band) Mid() float64 {
	return (b.Min + b.Max) / 2
}

// Contains reports whether v lies in [Min-tol, Max+tol].
func (b Band) Contains(v, tol float64) bool {
	return v >= b.Min-tol-1e-9 && v <= b.Max+tol+1e-9
}

// Scale multiplies both ends of the band by k.
func (b Band) Scale(k float64) Band {
	return Band{Min: b.Min * k, Max: b.Max * k}
}

// Skeletal muscle as a fraction of fat-free mass for the average
// non-athlete population.
var (
	MaleMuscleBand   = Band{Min: 0.49, Max: 0.50}
	FemaleMuscleBand = Band{Min: 0.41, Max: 0.45}
)

// MuscleBand returns the SMM-of-FFM band for g. Unknown values fall back
// to the female band, which is the wider of the two.
func MuscleBand(g Gender) Band {
	if g == Male {
		return MaleMuscleBand
	}
	return FemaleMuscleBand
}

// MuscleEstimate is the acceptable answer interval for a skeletal muscle
// estimate. Correctness is interval based, not point valued.
type MuscleEstimate struct {
	FatFreeMass float64
	SMM         Band    // kg
	Percent     Band    // SMM as percent of total mass
	Reference   float64 // kg, band midpoint
	RefPercent  float64 // percent of total mass, band midpoint
}

// EstimateMuscle derives the SMM interval for a subject of total mass
// (kg) and fat-free mass ffm (kg).
func EstimateMuscle(ffm, mass float64, g Gender) MuscleEstimate {
	band := MuscleBand(g)
	smm := band.Scale(ffm)
	est := MuscleEstimate{
		FatFreeMass: ffm,
		SMM:         smm,
		Reference:   smm.Mid(),
	}
	if mass > 0 {
		est.Percent = smm.Scale(100 / mass)
		est.RefPercent = est.Reference / mass * 100
	}
	return est
}

// Accepts reports whether both the SMM (kg) and SMM% answers fall inside
// the acceptable interval, allowing tol on each.
func (e MuscleEstimate) Accepts(smmKg, smmPercent, tol float64) bool {
	return e.SMM.Contains(smmKg, tol) && e.Percent.Contains(smmPercent, tol)
}
