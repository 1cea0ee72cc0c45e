package grading

import "github.com/abhisek/nutriz/internal/scenario"

// Field describes one input of a module's submission form.
type Field struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Unit     string `json:"unit,omitempty"`
	Text     bool   `json:"text,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

func num(key, label, unit string) Field { return Field{Key: key, Label: label, Unit: unit} }

func text(key, label string) Field { return Field{Key: key, Label: label, Text: true} }

func optional(f Field) Field {
	f.Optional = true
	return f
}

var working = text("working", "Working")

var moduleFields = map[scenario.Module][]Field{
	scenario.BodyComposition: {
		num("calculatedBFM", "Body fat mass", "kg"),
		num("calculatedFFM", "Fat-free mass", "kg"),
		working,
	},
	scenario.MuscleMass: {
		num("calculatedFFM", "Fat-free mass", "kg"),
		num("calculatedSMM", "Skeletal muscle mass", "kg"),
		num("calculatedSMMPercent", "SMM % of total mass", "%"),
		working,
	},
	scenario.TargetComposition: {
		num("currentFFM", "Current fat-free mass", "kg"),
		num("targetBodyMass", "Target body mass", "kg"),
		num("massLossRequired", "Mass loss required", "kg"),
		working,
	},
	scenario.CompositionChange: {
		text("optionId", "Answer"),
	},
	scenario.GoalSetting: {
		num("currentFatMass", "Current fat mass", "kg"),
		num("fatLossTarget", "Fat to lose", "kg"),
		num("fatLossRate", "Fat loss rate", "kg/week"),
		optional(num("fatLossWeeks", "Fat loss timeline", "weeks")),
		optional(num("muscleGainTarget", "Muscle to gain", "kg")),
		optional(num("muscleGainRate", "Muscle gain rate", "kg/month")),
		optional(num("muscleGainMonths", "Muscle gain timeline", "months")),
		text("smartGoal", "SMART objective"),
	},
	scenario.EnergyExpenditure: {
		num("calculatedBMR", "BMR", "kcal"),
		num("calculatedTDEE", "TDEE", "kcal"),
		working,
	},
	scenario.Macronutrients: {
		num("carbsGrams", "Carbohydrate", "g"),
		num("proteinGrams", "Protein", "g"),
		num("fatGrams", "Fat", "g"),
		working,
	},
	scenario.FoodLabels: {
		text("userResponse", "Response to client"),
	},
}

// Fields lists a module's submission inputs in display order.
func Fields(m scenario.Module) ([]Field, error) {
	fs, ok := moduleFields[m]
	if !ok {
		return nil, &scenario.ErrUnknownModule{Module: string(m)}
	}
	out := make([]Field, len(fs))
	copy(out, fs)
	return out, nil
}
