// Package grading is the gateway between practice problems and the LLM
// that marks them. Every module goes through one Service: the learner's
// submission is checked for completeness, sent with the problem to the
// provider under a timeout, and the answer is decoded, clamped and
// reconciled against exact reference values. Any provider failure
// resolves to a deterministic local fallback instead of an error.
package grading

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/abhisek/nutriz/internal/calc"
)

// Result is the assessment of one submission. A retry replaces it
// wholesale.
type Result struct {
	IsCorrect         bool        `json:"isCorrect"`
	Score             int         `json:"score"`
	Feedback          string      `json:"feedback"`
	ReasoningCritique string      `json:"reasoningCritique"`
	Corrections       Corrections `json:"corrections"`

	// Fallback is set when the result was computed locally because the
	// grading service failed. FallbackReason is an llm.Reason label.
	Fallback       bool   `json:"fallback,omitempty"`
	FallbackReason string `json:"fallbackReason,omitempty"`

	// Model is the model that produced the assessment, empty for local
	// results.
	Model string `json:"model,omitempty"`
}

// Corrections are the reference values for a module. Only the fields the
// module grades are set.
type Corrections struct {
	BFM              *float64 `json:"bfm,omitempty"`
	FFM              *float64 `json:"ffm,omitempty"`
	SMM              *float64 `json:"smm,omitempty"`
	SMMPercent       *float64 `json:"smmPercent,omitempty"`
	TargetBodyMass   *float64 `json:"targetBodyMass,omitempty"`
	MassLossRequired *float64 `json:"massLossRequired,omitempty"`
	CurrentFatMass   *float64 `json:"currentFatMass,omitempty"`
	FatLossWeeks     *float64 `json:"fatLossWeeks,omitempty"`
	MuscleGainMonths *float64 `json:"muscleGainMonths,omitempty"`
	BMR              *float64 `json:"bmr,omitempty"`
	TDEE             *float64 `json:"tdee,omitempty"`
	CarbsGrams       *float64 `json:"carbsGrams,omitempty"`
	ProteinGrams     *float64 `json:"proteinGrams,omitempty"`
	FatGrams         *float64 `json:"fatGrams,omitempty"`

	// Undefined lists keys whose value cannot be computed, such as a
	// timeline at a zero rate. They are shown as a placeholder.
	Undefined []string `json:"undefined,omitempty"`
}

// correctionField describes one correction key.
type correctionField struct {
	label string
	unit  string
	slot  func(*Corrections) **float64
}

var correctionFields = map[string]correctionField{
	"bfm":              {"Body fat mass", "kg", func(c *Corrections) **float64 { return &c.BFM }},
	"ffm":              {"Fat-free mass", "kg", func(c *Corrections) **float64 { return &c.FFM }},
	"smm":              {"Skeletal muscle mass", "kg", func(c *Corrections) **float64 { return &c.SMM }},
	"smmPercent":       {"SMM % of total mass", "%", func(c *Corrections) **float64 { return &c.SMMPercent }},
	"targetBodyMass":   {"Target body mass", "kg", func(c *Corrections) **float64 { return &c.TargetBodyMass }},
	"massLossRequired": {"Mass loss required", "kg", func(c *Corrections) **float64 { return &c.MassLossRequired }},
	"currentFatMass":   {"Current fat mass", "kg", func(c *Corrections) **float64 { return &c.CurrentFatMass }},
	"fatLossWeeks":     {"Fat loss timeline", "weeks", func(c *Corrections) **float64 { return &c.FatLossWeeks }},
	"muscleGainMonths": {"Muscle gain timeline", "months", func(c *Corrections) **float64 { return &c.MuscleGainMonths }},
	"bmr":              {"BMR", "kcal", func(c *Corrections) **float64 { return &c.BMR }},
	"tdee":             {"TDEE", "kcal", func(c *Corrections) **float64 { return &c.TDEE }},
	"carbsGrams":       {"Carbohydrate", "g", func(c *Corrections) **float64 { return &c.CarbsGrams }},
	"proteinGrams":     {"Protein", "g", func(c *Corrections) **float64 { return &c.ProteinGrams }},
	"fatGrams":         {"Fat", "g", func(c *Corrections) **float64 { return &c.FatGrams }},
}

// Get returns the value stored under a correction key.
func (c *Corrections) Get(key string) (float64, bool) {
	f, ok := correctionFields[key]
	if !ok {
		return 0, false
	}
	if v := *f.slot(c); v != nil {
		return *v, true
	}
	return 0, false
}

// Set stores v under a correction key. Unknown keys are ignored.
func (c *Corrections) Set(key string, v float64) {
	if f, ok := correctionFields[key]; ok {
		*f.slot(c) = &v
	}
}

// IsUndefined reports whether key was marked undefined.
func (c *Corrections) IsUndefined(key string) bool {
	return slices.Contains(c.Undefined, key)
}

// setUndefined clears key and marks it undefined.
func (c *Corrections) setUndefined(key string) {
	f, ok := correctionFields[key]
	if !ok {
		return
	}
	*f.slot(c) = nil
	if !c.IsUndefined(key) {
		c.Undefined = append(c.Undefined, key)
	}
}

// setTimeline stores a projection, or marks key undefined.
func (c *Corrections) setTimeline(key string, p calc.Projection) {
	if p.Defined() {
		c.Set(key, p.Value)
		return
	}
	c.setUndefined(key)
}

// Correction is one labelled reference value for display.
type Correction struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Unit      string  `json:"unit"`
	Value     float64 `json:"value"`
	Undefined bool    `json:"undefined,omitempty"`
}

func (c Correction) String() string {
	if c.Undefined {
		return c.Label + ": " + calc.Undefined
	}
	return fmt.Sprintf("%s: %s %s", c.Label, strconv.FormatFloat(c.Value, 'f', -1, 64), c.Unit)
}

// entries lists the set and undefined corrections among keys, in order.
func (c *Corrections) entries(keys []string) []Correction {
	var out []Correction
	for _, k := range keys {
		f := correctionFields[k]
		if v, ok := c.Get(k); ok {
			out = append(out, Correction{Key: k, Label: f.label, Unit: f.unit, Value: v})
		} else if c.IsUndefined(k) {
			out = append(out, Correction{Key: k, Label: f.label, Unit: f.unit, Undefined: true})
		}
	}
	return out
}
