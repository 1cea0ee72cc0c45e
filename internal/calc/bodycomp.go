package calc

// Composition splits a total body mass into fat and fat-free mass.
type Composition struct {
	Mass        float64 // kg
	BodyFat     float64 // percent, 0-100
	FatMass     float64 // kg
	FatFreeMass float64 // kg
}

// Compose computes fat mass and fat-free mass for mass (kg) at the given
// body-fat percentage. FatMass + FatFreeMass == Mass.
func Compose(mass, bodyFat float64) Composition {
	fm := mass * (bodyFat / 100)
	return Composition{
		Mass:        mass,
		BodyFat:     bodyFat,
		FatMass:     fm,
		FatFreeMass: mass - fm,
	}
}
