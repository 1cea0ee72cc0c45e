package catalog

// Light is a front-of-pack traffic-light rating.
type Light string

const (
	Green Light = "green"
	Amber Light = "amber"
	Red   Light = "red"
)

// Nutrient names a rated nutrient.
type Nutrient string

const (
	NutrientFat       Nutrient = "fat"
	NutrientSaturates Nutrient = "saturates"
	NutrientSugars    Nutrient = "sugars"
	NutrientSalt      Nutrient = "salt"
)

// Per-100 g thresholds: above Low is amber, above High is red.
var thresholds = map[Nutrient]struct{ Low, High float64 }{
	NutrientFat:       {3, 17.5},
	NutrientSaturates: {1.5, 5},
	NutrientSugars:    {5, 22.5},
	NutrientSalt:      {0.3, 1.5},
}

// TrafficLight rates a per-100 g value for the nutrient. Unknown
// nutrients rate green.
func TrafficLight(n Nutrient, per100g float64) Light {
	t, ok := thresholds[n]
	switch {
	case !ok:
		return Green
	case per100g > t.High:
		return Red
	case per100g > t.Low:
		return Amber
	default:
		return Green
	}
}

// Rating is one nutrient's value and light.
type Rating struct {
	Nutrient Nutrient `json:"nutrient"`
	Value    float64  `json:"value"`
	Light    Light    `json:"light"`
}

// Ratings returns the four traffic-light ratings for a label in display
// order.
func (f NutritionFacts) Ratings() []Rating {
	rate := func(n Nutrient, v float64) Rating {
		return Rating{Nutrient: n, Value: v, Light: TrafficLight(n, v)}
	}
	return []Rating{
		rate(NutrientFat, f.Fat),
		rate(NutrientSaturates, f.Saturates),
		rate(NutrientSugars, f.Sugars),
		rate(NutrientSalt, f.Salt),
	}
}
