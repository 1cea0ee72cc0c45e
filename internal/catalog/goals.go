package catalog

import "github.com/abhisek/nutriz/internal/calc"

// MacroGoal is a goal-based macronutrient split archetype with the TDEE
// bands used to build plausible clients for it.
type MacroGoal struct {
	Label       string
	Description string
	Split       calc.Split
	MaleTDEE    Range // kcal
	FemaleTDEE  Range // kcal
}

// TDEEBand returns the gender-conditioned TDEE band for the goal.
func (g MacroGoal) TDEEBand(gender calc.Gender) Range {
	if gender == calc.Male {
		return g.MaleTDEE
	}
	return g.FemaleTDEE
}

var macroGoals = []MacroGoal{
	{
		Label:       "Muscle Gain",
		Description: "High protein for hypertrophy, moderate fat.",
		Split:       calc.Split{Carbs: 45, Protein: 30, Fat: 25},
		MaleTDEE:    Range{2800, 3400},
		FemaleTDEE:  Range{2200, 2600},
	},
	{
		Label:       "Endurance Athlete",
		Description: "High carbohydrate for glycogen replenishment.",
		Split:       calc.Split{Carbs: 60, Protein: 15, Fat: 25},
		MaleTDEE:    Range{3200, 4000},
		FemaleTDEE:  Range{2400, 3000},
	},
	{
		Label:       "Fat Loss (Standard)",
		Description: "Balanced deficit with protein support.",
		Split:       calc.Split{Carbs: 40, Protein: 30, Fat: 30},
		MaleTDEE:    Range{2100, 2500},
		FemaleTDEE:  Range{1600, 1900},
	},
	{
		Label:       "General Health",
		Description: "Standard UK Healthy Eating guidelines.",
		Split:       calc.Split{Carbs: 50, Protein: 15, Fat: 35},
		MaleTDEE:    Range{2400, 2700},
		FemaleTDEE:  Range{1900, 2200},
	},
}

// MacroGoals returns a copy of the macro goal catalog.
func MacroGoals() []MacroGoal {
	out := make([]MacroGoal, len(macroGoals))
	copy(out, macroGoals)
	return out
}
