// Package scenario generates randomized practice problems for each
// module. Every draw, including the problem id, comes from a
// sampler.Sampler so a seeded or scripted sampler reproduces a problem
// exactly.
package scenario

import (
	"fmt"
	"strings"
)

// Module identifies a practice module.
type Module string

const (
	BodyComposition   Module = "body-composition"
	MuscleMass        Module = "muscle-mass"
	TargetComposition Module = "target-composition"
	CompositionChange Module = "composition-change"
	GoalSetting       Module = "goal-setting"
	EnergyExpenditure Module = "energy-expenditure"
	Macronutrients    Module = "macronutrients"
	FoodLabels        Module = "food-labels"
)

// Info describes a module for menus and the HTTP module listing.
type Info struct {
	Module  Module `json:"module"`
	Title   string `json:"title"`
	Summary string `json:"summary"`

	// LocalGrading is true when answers are checked without the grading
	// service (multiple choice).
	LocalGrading bool `json:"localGrading"`
}

var modules = []Info{
	{Module: BodyComposition, Title: "Body Composition", Summary: "Fat mass and fat-free mass from weight and body fat %."},
	{Module: MuscleMass, Title: "Skeletal Muscle Mass", Summary: "Estimate SMM from fat-free mass using gender bands."},
	{Module: TargetComposition, Title: "Target Composition", Summary: "Target body mass for a goal body fat %, holding FFM fixed."},
	{Module: CompositionChange, Title: "Composition Change", Summary: "Identify how fat and fat-free mass changed between two measurements.", LocalGrading: true},
	{Module: GoalSetting, Title: "Goal Setting", Summary: "Set realistic fat-loss and muscle-gain timelines and a SMART goal."},
	{Module: EnergyExpenditure, Title: "Energy Expenditure", Summary: "BMR with Mifflin-St Jeor and TDEE with an activity multiplier."},
	{Module: Macronutrients, Title: "Macronutrients", Summary: "Convert a TDEE and macro split into daily grams."},
	{Module: FoodLabels, Title: "Food Labels", Summary: "Interpret a UK food label to answer a client's question."},
}

// Modules lists every module in menu order.
func Modules() []Info {
	out := make([]Info, len(modules))
	copy(out, modules)
	return out
}

// Lookup returns the Info for m.
func Lookup(m Module) (Info, bool) {
	for _, info := range modules {
		if info.Module == m {
			return info, true
		}
	}
	return Info{}, false
}

// ErrUnknownModule is returned for a module name that is not registered.
type ErrUnknownModule struct {
	Module string
}

func (e *ErrUnknownModule) Error() string {
	return fmt.Sprintf("unknown module %q", e.Module)
}

// ParseModule resolves a module name, ignoring case and surrounding space.
func ParseModule(name string) (Module, error) {
	m := Module(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Lookup(m); !ok {
		return "", &ErrUnknownModule{Module: name}
	}
	return m, nil
}
