package calc

import "errors"

// ErrUndefinedTarget is returned when a goal body-fat percentage would
// make the target mass undefined (goal >= 100) or is negative.
var ErrUndefinedTarget = errors.New("target body fat must be in [0, 100)")

// Target is the mass required to reach a goal body-fat percentage while
// fat-free mass is held constant.
type Target struct {
	FatFreeMass      float64 // kg, held fixed
	TargetMass       float64 // kg
	MassLossRequired float64 // kg, positive when mass must drop
}

// SolveTarget computes the target total mass for reaching goalBodyFat
// from the current mass and body fat.
func SolveTarget(mass, bodyFat, goalBodyFat float64) (Target, error) {
	if goalBodyFat < 0 || goalBodyFat >= 100 {
		return Target{}, ErrUndefinedTarget
	}
	ffm := mass * (1 - bodyFat/100)
	target := ffm / (1 - goalBodyFat/100)
	return Target{
		FatFreeMass:      ffm,
		TargetMass:       target,
		MassLossRequired: mass - target,
	}, nil
}

// BodyFatAt returns the body-fat percentage of a body with the given total
// and fat-free mass. It inverts SolveTarget.
func BodyFatAt(totalMass, ffm float64) float64 {
	if totalMass <= 0 {
		return 0
	}
	return (1 - ffm/totalMass) * 100
}
