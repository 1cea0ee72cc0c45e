// Package activity holds the state of one practice activity: the current
// problem, the learner's last submission and its assessment. Each module
// screen owns its own Activity; nothing is shared between them.
package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

// Phase is where an activity is in its lifecycle.
type Phase int

const (
	PhaseIdle       Phase = iota // No problem yet
	PhaseGenerated               // Problem shown, awaiting an answer
	PhaseSubmitting              // Grading in flight
	PhaseGraded                  // Assessment shown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerated:
		return "generated"
	case PhaseSubmitting:
		return "submitting"
	case PhaseGraded:
		return "graded"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

var (
	// ErrBusy is returned while a submission is being graded.
	ErrBusy = errors.New("a submission is already being graded")

	// ErrNoProblem is returned when there is nothing to answer.
	ErrNoProblem = errors.New("no scenario to answer")

	// ErrGraded is returned when submitting again without a retry.
	ErrGraded = errors.New("already graded; retry or start a new scenario")
)

// Grader assesses a submission. *grading.Service implements it.
type Grader interface {
	Grade(ctx context.Context, p *scenario.Problem, sub grading.Submission) (*grading.Result, error)
}

// Activity is the state machine for one module:
//
//	idle -> generated -> submitting -> graded
//	graded -> generated (retry or new scenario)
//
// It is safe for use from a UI goroutine and a grading goroutine.
type Activity struct {
	mu      sync.Mutex
	module  scenario.Module
	sampler sampler.Sampler

	phase      Phase
	problem    *scenario.Problem
	submission grading.Submission
	result     *grading.Result
}

// New creates an idle activity for module m drawing from s.
func New(m scenario.Module, s sampler.Sampler) (*Activity, error) {
	if _, ok := scenario.Lookup(m); !ok {
		return nil, &scenario.ErrUnknownModule{Module: string(m)}
	}
	return &Activity{module: m, sampler: s}, nil
}

// Module returns the activity's module.
func (a *Activity) Module() scenario.Module {
	return a.module
}

// NewScenario discards the current problem and any result and generates
// a fresh problem.
func (a *Activity) NewScenario() (*scenario.Problem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == PhaseSubmitting {
		return nil, ErrBusy
	}
	p, err := scenario.Generate(a.module, a.sampler)
	if err != nil {
		return nil, err
	}
	a.reset(p)
	return p, nil
}

// Load replaces the current problem with p, which must be a valid
// problem of the activity's module. The personal energy variant enters
// this way.
func (a *Activity) Load(p *scenario.Problem) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("load problem: %w", err)
	}
	if p.Module != a.module {
		return fmt.Errorf("%w: %s problem in %s activity", grading.ErrModuleMismatch, p.Module, a.module)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase == PhaseSubmitting {
		return ErrBusy
	}
	a.reset(p)
	return nil
}

func (a *Activity) reset(p *scenario.Problem) {
	a.problem = p
	a.submission = nil
	a.result = nil
	a.phase = PhaseGenerated
}

// Submit grades sub against the current problem. Only one submission
// can be in flight; the busy state is cleared however grading ends. On
// error the activity returns to the generated phase so the learner can
// fix the answer.
func (a *Activity) Submit(ctx context.Context, g Grader, sub grading.Submission) (*grading.Result, error) {
	p, err := a.begin()
	if err != nil {
		return nil, err
	}

	res, err := g.Grade(ctx, p, sub)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.phase = PhaseGenerated
		return nil, err
	}
	a.submission = sub
	a.result = res
	a.phase = PhaseGraded
	return res, nil
}

// Answer picks an option of a composition-change problem. It is graded
// locally and never blocks.
func (a *Activity) Answer(optionID string) (*grading.Result, error) {
	p, err := a.begin()
	if err != nil {
		return nil, err
	}

	res, err := grading.CheckChoice(p, optionID)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.phase = PhaseGenerated
		return nil, err
	}
	a.submission = &grading.ChoiceSubmission{ProblemID: p.ID, OptionID: optionID}
	a.result = res
	a.phase = PhaseGraded
	return res, nil
}

// begin moves a generated activity to submitting and returns its problem.
func (a *Activity) begin() (*scenario.Problem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.phase {
	case PhaseIdle:
		return nil, ErrNoProblem
	case PhaseSubmitting:
		return nil, ErrBusy
	case PhaseGraded:
		return nil, ErrGraded
	}
	a.phase = PhaseSubmitting
	return a.problem, nil
}

// Retry clears the result and the submission and keeps the problem.
func (a *Activity) Retry() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.phase {
	case PhaseIdle:
		return ErrNoProblem
	case PhaseSubmitting:
		return ErrBusy
	}
	a.reset(a.problem)
	return nil
}

// Phase returns the current phase.
func (a *Activity) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Busy reports whether a submission is being graded.
func (a *Activity) Busy() bool {
	return a.Phase() == PhaseSubmitting
}

// Problem returns the current problem, or nil when idle.
func (a *Activity) Problem() *scenario.Problem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.problem
}

// Submission returns the graded submission, or nil before grading.
func (a *Activity) Submission() grading.Submission {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submission
}

// Result returns the assessment, or nil before grading.
func (a *Activity) Result() *grading.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}
