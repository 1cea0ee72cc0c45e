package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
)

// Problem is one generated practice instance. Only the context blocks
// relevant to Module are set; the rest are nil. Problems are never
// modified after generation.
type Problem struct {
	// ID is a random identifier echoed back in submissions.
	ID string `json:"id"`

	Module     Module             `json:"module"`
	Difficulty catalog.Difficulty `json:"difficulty"`

	Subject   *Subject          `json:"subject,omitempty"`
	Persona   *Persona          `json:"persona,omitempty"`
	Energy    *EnergyContext    `json:"energy,omitempty"`
	Nutrition *NutritionContext `json:"nutrition,omitempty"`
	Label     *LabelContext     `json:"label,omitempty"`
	Change    *ChangeContext    `json:"change,omitempty"`
}

// Subject holds the measured attributes of the client. Unused attributes
// are nil.
type Subject struct {
	WeightKg             *float64    `json:"weightKg,omitempty"`
	BodyFatPercent       *float64    `json:"bodyFatPercentage,omitempty"`
	TargetBodyFatPercent *float64    `json:"targetBodyFatPercentage,omitempty"`
	Gender               calc.Gender `json:"gender,omitempty"`
	AgeYears             *int        `json:"age,omitempty"`
	HeightCm             *float64    `json:"heightCm,omitempty"`
}

// Persona is the goal-setting client's background. It is display and
// grading-prompt data only.
type Persona struct {
	Name         string             `json:"name"`
	Occupation   string             `json:"occupation"`
	Experience   catalog.Experience `json:"experienceLevel"`
	Goal         string             `json:"clientGoal"`
	Lifestyle    string             `json:"lifestyle"`
	Availability string             `json:"trainingAvailability"`
}

// EnergyContext is the activity level for an energy-expenditure problem.
type EnergyContext struct {
	ActivityLevel string  `json:"activityLevel"`
	Multiplier    float64 `json:"activityMultiplier"`

	// Personal marks a problem built from the learner's own attributes.
	Personal bool `json:"personal,omitempty"`
}

// NutritionContext is the client brief for a macronutrient problem.
type NutritionContext struct {
	ClientName      string     `json:"clientName"`
	Goal            string     `json:"clientGoal"`
	GoalDescription string     `json:"goalDescription"`
	TDEE            float64    `json:"tdee"`
	Split           calc.Split `json:"macroSplit"`
}

// LabelContext is the product and client question for a food-label
// problem.
type LabelContext struct {
	ProductName string                 `json:"productName"`
	Nutrition   catalog.NutritionFacts `json:"nutritionInfo"`
	Ingredients string                 `json:"ingredients"`
	Question    string                 `json:"clientQuestion"`
	Ratings     []catalog.Rating       `json:"trafficLights"`
}

// Archetype is the kind of body change a composition-change scenario
// depicts.
type Archetype string

const (
	Recomposition Archetype = "recomposition"
	Cut           Archetype = "cut"
	Bulk          Archetype = "bulk"
)

// ChangeContext holds the two measurements and the multiple-choice
// options for a composition-change problem.
type ChangeContext struct {
	Initial   calc.Measurement `json:"initial"`
	Final     calc.Measurement `json:"final"`
	Archetype Archetype        `json:"archetype"`
	Options   []Option         `json:"options"`
	Breakdown Breakdown        `json:"breakdown"`
}

// Correct returns the correct option.
func (c *ChangeContext) Correct() (Option, bool) {
	for _, o := range c.Options {
		if o.Correct {
			return o, true
		}
	}
	return Option{}, false
}

// Option finds an option by id.
func (c *ChangeContext) Option(id string) (Option, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionKind records which statement an option carries.
type OptionKind string

const (
	KindCorrect   OptionKind = "correct"
	KindSwapped   OptionKind = "swapped"
	KindFlipped   OptionKind = "ffm-direction"
	KindAllFat    OptionKind = "all-fat"
	KindAlternate OptionKind = "alternate"
)

// Option is one multiple-choice answer. Correctness and feedback travel
// with the content, so shuffling never changes which option is right.
type Option struct {
	ID       string     `json:"id"`
	Text     string     `json:"text"`
	Correct  bool       `json:"isCorrect"`
	Kind     OptionKind `json:"kind"`
	Feedback string     `json:"feedback"`
}

// Breakdown is the worked solution with every mass rounded to 0.1 kg.
type Breakdown struct {
	InitialFM  float64 `json:"initialFM"`
	InitialFFM float64 `json:"initialFFM"`
	FinalFM    float64 `json:"finalFM"`
	FinalFFM   float64 `json:"finalFFM"`
	DeltaFM    float64 `json:"deltaFM"`
	DeltaFFM   float64 `json:"deltaFFM"`
}

// Weight returns the subject weight or 0.
func (p *Problem) Weight() float64 {
	if p.Subject == nil || p.Subject.WeightKg == nil {
		return 0
	}
	return *p.Subject.WeightKg
}

// BodyFat returns the subject body fat percentage or 0.
func (p *Problem) BodyFat() float64 {
	if p.Subject == nil || p.Subject.BodyFatPercent == nil {
		return 0
	}
	return *p.Subject.BodyFatPercent
}

// TargetBodyFat returns the goal body fat percentage or 0.
func (p *Problem) TargetBodyFat() float64 {
	if p.Subject == nil || p.Subject.TargetBodyFatPercent == nil {
		return 0
	}
	return *p.Subject.TargetBodyFatPercent
}

// Height returns the subject height or 0.
func (p *Problem) Height() float64 {
	if p.Subject == nil || p.Subject.HeightCm == nil {
		return 0
	}
	return *p.Subject.HeightCm
}

// Age returns the subject age or 0.
func (p *Problem) Age() int {
	if p.Subject == nil || p.Subject.AgeYears == nil {
		return 0
	}
	return *p.Subject.AgeYears
}

// Gender returns the subject gender or "".
func (p *Problem) Gender() calc.Gender {
	if p.Subject == nil {
		return ""
	}
	return p.Subject.Gender
}

// Decode parses a problem from JSON and validates it.
func Decode(raw []byte) (*Problem, error) {
	var p Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func ptr[T any](v T) *T {
	return &v
}
