package grading

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/nutriz/internal/scenario"
)

// ErrUnknownOption is returned when an option id is not one of the
// problem's options.
var ErrUnknownOption = errors.New("unknown option")

// CheckChoice grades a composition-change answer locally. The chosen
// option is matched by text against the answer key rebuilt from the
// problem's measurements, so correctness, feedback and the worked
// breakdown never come from the posted flags.
func CheckChoice(p *scenario.Problem, optionID string) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	if p.Module != scenario.CompositionChange {
		return nil, fmt.Errorf("%w: choice for %s problem", ErrModuleMismatch, p.Module)
	}
	chosen, ok := p.Change.Option(optionID)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOption, optionID)
	}
	key, breakdown := scenario.AnswerKey(p.Change.Initial, p.Change.Final)
	i := slices.IndexFunc(key, func(o scenario.Option) bool { return o.Text == chosen.Text })
	if i < 0 {
		return nil, fmt.Errorf("%w %q: text does not match the measurements", ErrUnknownOption, optionID)
	}
	opt := key[i]

	res := &Result{
		IsCorrect:         opt.Correct,
		Feedback:          opt.Feedback,
		ReasoningCritique: Breakdown(breakdown),
	}
	if opt.Correct {
		res.Score = 100
	}
	return res, nil
}

// Breakdown renders the worked composition-change solution.
func Breakdown(b scenario.Breakdown) string {
	return fmt.Sprintf(
		"Initial: fat mass %.1f kg, fat-free mass %.1f kg. Final: fat mass %.1f kg, fat-free mass %.1f kg. Change: fat mass %+.1f kg, fat-free mass %+.1f kg.",
		b.InitialFM, b.InitialFFM, b.FinalFM, b.FinalFFM, b.DeltaFM, b.DeltaFFM)
}
