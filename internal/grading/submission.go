package grading

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/scenario"
)

// Submission is a learner's answer to one problem. Each module has its
// own shape; all of them echo the problem id.
type Submission interface {
	Module() scenario.Module
	ID() string

	// Missing lists the keys of required fields that are absent or blank.
	Missing() []string
}

// IncompleteError reports required fields left empty. It is returned
// before anything is sent for grading.
type IncompleteError struct {
	Module scenario.Module
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete %s submission: missing %s", e.Module, strings.Join(e.Fields, ", "))
}

// BodyCompositionSubmission answers a body-composition problem.
type BodyCompositionSubmission struct {
	ProblemID string   `json:"problemId"`
	Working   string   `json:"working"`
	BFM       *float64 `json:"calculatedBFM"`
	FFM       *float64 `json:"calculatedFFM"`
}

// MuscleMassSubmission answers a skeletal-muscle problem.
type MuscleMassSubmission struct {
	ProblemID  string   `json:"problemId"`
	Working    string   `json:"working"`
	FFM        *float64 `json:"calculatedFFM"`
	SMM        *float64 `json:"calculatedSMM"`
	SMMPercent *float64 `json:"calculatedSMMPercent"`
}

// TargetCompositionSubmission answers a target-composition problem.
type TargetCompositionSubmission struct {
	ProblemID        string   `json:"problemId"`
	Working          string   `json:"working"`
	CurrentFFM       *float64 `json:"currentFFM"`
	TargetBodyMass   *float64 `json:"targetBodyMass"`
	MassLossRequired *float64 `json:"massLossRequired"`
}

// GoalSettingSubmission answers a goal-setting problem. The SMART goal
// is the learner's working. Muscle-gain fields and both timelines are
// optional; see Completed.
type GoalSettingSubmission struct {
	ProblemID        string   `json:"problemId"`
	CurrentFatMass   *float64 `json:"currentFatMass"`
	FatLossTarget    *float64 `json:"fatLossTarget"`
	FatLossRate      *float64 `json:"fatLossRate"`
	FatLossWeeks     *float64 `json:"fatLossWeeks"`
	MuscleGainTarget *float64 `json:"muscleGainTarget"`
	MuscleGainRate   *float64 `json:"muscleGainRate"`
	MuscleGainMonths *float64 `json:"muscleGainMonths"`
	SmartGoal        string   `json:"smartGoal"`
}

// EnergySubmission answers an energy-expenditure problem, generated or
// personal.
type EnergySubmission struct {
	ProblemID string   `json:"problemId"`
	Working   string   `json:"working"`
	BMR       *float64 `json:"calculatedBMR"`
	TDEE      *float64 `json:"calculatedTDEE"`
}

// MacronutrientSubmission answers a macronutrient problem.
type MacronutrientSubmission struct {
	ProblemID    string   `json:"problemId"`
	Working      string   `json:"working"`
	CarbsGrams   *float64 `json:"carbsGrams"`
	ProteinGrams *float64 `json:"proteinGrams"`
	FatGrams     *float64 `json:"fatGrams"`
}

// FoodLabelSubmission answers a food-label problem in free text.
type FoodLabelSubmission struct {
	ProblemID string `json:"problemId"`
	Response  string `json:"userResponse"`
}

// ChoiceSubmission picks an option of a composition-change problem.
type ChoiceSubmission struct {
	ProblemID string `json:"problemId"`
	OptionID  string `json:"optionId"`
}

func (s *BodyCompositionSubmission) Module() scenario.Module   { return scenario.BodyComposition }
func (s *MuscleMassSubmission) Module() scenario.Module        { return scenario.MuscleMass }
func (s *TargetCompositionSubmission) Module() scenario.Module { return scenario.TargetComposition }
func (s *GoalSettingSubmission) Module() scenario.Module       { return scenario.GoalSetting }
func (s *EnergySubmission) Module() scenario.Module            { return scenario.EnergyExpenditure }
func (s *MacronutrientSubmission) Module() scenario.Module     { return scenario.Macronutrients }
func (s *FoodLabelSubmission) Module() scenario.Module         { return scenario.FoodLabels }
func (s *ChoiceSubmission) Module() scenario.Module            { return scenario.CompositionChange }

func (s *BodyCompositionSubmission) ID() string   { return s.ProblemID }
func (s *MuscleMassSubmission) ID() string        { return s.ProblemID }
func (s *TargetCompositionSubmission) ID() string { return s.ProblemID }
func (s *GoalSettingSubmission) ID() string       { return s.ProblemID }
func (s *EnergySubmission) ID() string            { return s.ProblemID }
func (s *MacronutrientSubmission) ID() string     { return s.ProblemID }
func (s *FoodLabelSubmission) ID() string         { return s.ProblemID }
func (s *ChoiceSubmission) ID() string            { return s.ProblemID }

// presence collects missing keys in field order.
type presence []string

func (p *presence) num(key string, v *float64) {
	if v == nil {
		*p = append(*p, key)
	}
}

func (p *presence) text(key, v string) {
	if strings.TrimSpace(v) == "" {
		*p = append(*p, key)
	}
}

func (s *BodyCompositionSubmission) Missing() []string {
	var p presence
	p.num("calculatedBFM", s.BFM)
	p.num("calculatedFFM", s.FFM)
	p.text("working", s.Working)
	return p
}

func (s *MuscleMassSubmission) Missing() []string {
	var p presence
	p.num("calculatedFFM", s.FFM)
	p.num("calculatedSMM", s.SMM)
	p.num("calculatedSMMPercent", s.SMMPercent)
	p.text("working", s.Working)
	return p
}

func (s *TargetCompositionSubmission) Missing() []string {
	var p presence
	p.num("currentFFM", s.CurrentFFM)
	p.num("targetBodyMass", s.TargetBodyMass)
	p.num("massLossRequired", s.MassLossRequired)
	p.text("working", s.Working)
	return p
}

func (s *GoalSettingSubmission) Missing() []string {
	var p presence
	p.num("currentFatMass", s.CurrentFatMass)
	p.num("fatLossTarget", s.FatLossTarget)
	p.num("fatLossRate", s.FatLossRate)
	p.text("smartGoal", s.SmartGoal)
	return p
}

func (s *EnergySubmission) Missing() []string {
	var p presence
	p.num("calculatedBMR", s.BMR)
	p.num("calculatedTDEE", s.TDEE)
	p.text("working", s.Working)
	return p
}

func (s *MacronutrientSubmission) Missing() []string {
	var p presence
	p.num("carbsGrams", s.CarbsGrams)
	p.num("proteinGrams", s.ProteinGrams)
	p.num("fatGrams", s.FatGrams)
	p.text("working", s.Working)
	return p
}

func (s *FoodLabelSubmission) Missing() []string {
	var p presence
	p.text("userResponse", s.Response)
	return p
}

func (s *ChoiceSubmission) Missing() []string {
	var p presence
	p.text("optionId", s.OptionID)
	return p
}

// Completed fills the optional goal-setting fields: muscle-gain amount
// and rate default to 0, and a blank timeline is projected from amount
// and rate, rounded to 0.1. A timeline whose projection is undefined
// stays nil.
func (s GoalSettingSubmission) Completed() GoalSettingSubmission {
	zero := func(v **float64) {
		if *v == nil {
			*v = ptr(0.0)
		}
	}
	zero(&s.MuscleGainTarget)
	zero(&s.MuscleGainRate)

	fill := func(dst **float64, proj calc.Projection) {
		if *dst == nil && proj.Defined() {
			*dst = ptr(proj.Value)
		}
	}
	fill(&s.FatLossWeeks, timeline(s.FatLossTarget, s.FatLossRate, calc.FatLossWeeks))
	fill(&s.MuscleGainMonths, timeline(s.MuscleGainTarget, s.MuscleGainRate, calc.MuscleGainMonths))
	return s
}

// newSubmission returns an empty submission for a module.
func newSubmission(m scenario.Module) (Submission, error) {
	switch m {
	case scenario.BodyComposition:
		return &BodyCompositionSubmission{}, nil
	case scenario.MuscleMass:
		return &MuscleMassSubmission{}, nil
	case scenario.TargetComposition:
		return &TargetCompositionSubmission{}, nil
	case scenario.CompositionChange:
		return &ChoiceSubmission{}, nil
	case scenario.GoalSetting:
		return &GoalSettingSubmission{}, nil
	case scenario.EnergyExpenditure:
		return &EnergySubmission{}, nil
	case scenario.Macronutrients:
		return &MacronutrientSubmission{}, nil
	case scenario.FoodLabels:
		return &FoodLabelSubmission{}, nil
	}
	return nil, &scenario.ErrUnknownModule{Module: string(m)}
}

// DecodeSubmission decodes a module's submission from JSON using the
// field names in Fields.
func DecodeSubmission(m scenario.Module, raw []byte) (Submission, error) {
	sub, err := newSubmission(m)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, sub); err != nil {
		return nil, fmt.Errorf("decode %s submission: %w", m, err)
	}
	return sub, nil
}

// FromValues builds a submission from form input keyed by field key.
// Blank values are left unset so Missing reports them; numeric fields
// must parse as numbers.
func FromValues(m scenario.Module, problemID string, values map[string]string) (Submission, error) {
	fields, err := Fields(m)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{"problemId": problemID}
	for _, f := range fields {
		v := strings.TrimSpace(values[f.Key])
		if v == "" {
			continue
		}
		if f.Text {
			doc[f.Key] = values[f.Key]
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", f.Label, v)
		}
		doc[f.Key] = n
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return DecodeSubmission(m, raw)
}

func ptr[T any](v T) *T {
	return &v
}
