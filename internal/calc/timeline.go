package calc

import "fmt"

// TimeUnit is the unit a projection is expressed in.
type TimeUnit string

const (
	Weeks  TimeUnit = "weeks"
	Months TimeUnit = "months"
)

// Undefined is rendered in place of a projection that cannot be computed.
const Undefined = "—"

// Projection is the time needed to change a mass at a constant rate.
// The zero value is undefined.
type Projection struct {
	Value   float64
	Unit    TimeUnit
	defined bool
}

// Defined reports whether the projection has a usable value.
func (p Projection) Defined() bool {
	return p.defined
}

func (p Projection) String() string {
	if !p.defined {
		return Undefined
	}
	return fmt.Sprintf("%.1f %s", p.Value, p.Unit)
}

// Project returns amount/rate in the given unit. A rate that is zero,
// negative or not finite, or an amount that is negative or not finite,
// yields an undefined projection.
func Project(amount, rate float64, unit TimeUnit) Projection {
	if !finite(amount) || !finite(rate) || rate <= 0 || amount < 0 {
		return Projection{Unit: unit}
	}
	return Projection{Value: amount / rate, Unit: unit, defined: true}
}

// FatLossWeeks projects weeks to lose amountKg at rateKgPerWeek.
func FatLossWeeks(amountKg, rateKgPerWeek float64) Projection {
	return Project(amountKg, rateKgPerWeek, Weeks)
}

// MuscleGainMonths projects months to gain amountKg at rateKgPerMonth.
func MuscleGainMonths(amountKg, rateKgPerMonth float64) Projection {
	return Project(amountKg, rateKgPerMonth, Months)
}
