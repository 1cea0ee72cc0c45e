// Package practice is the screen where a learner works one module's
// scenarios: read the problem, fill in the answer form, submit for
// grading, then retry or draw a new scenario.
package practice

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nutriz/internal/activity"
	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/screen"
	"github.com/abhisek/nutriz/internal/ui/components"
	"github.com/abhisek/nutriz/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// PracticeScreen drives one activity.
type PracticeScreen struct {
	act    *activity.Activity
	grader activity.Grader
	info   scenario.Info

	fields []grading.Field
	inputs []components.TextInput
	focus  int

	choice components.MultiChoice

	// pending is set synchronously when a submission is dispatched so a
	// second submit is refused before the activity itself turns busy.
	pending bool
	spin    int

	errMsg string
	scroll int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen. A fresh scenario is drawn on Init unless
// the activity already holds one.
func New(act *activity.Activity, grader activity.Grader) *PracticeScreen {
	info, _ := scenario.Lookup(act.Module())
	fields, _ := grading.Fields(act.Module())
	return &PracticeScreen{
		act:    act,
		grader: grader,
		info:   info,
		fields: fields,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	if s.act.Problem() == nil {
		if _, err := s.act.NewScenario(); err != nil {
			s.errMsg = err.Error()
			return nil
		}
	}
	return s.resetForm(nil)
}

func (s *PracticeScreen) Title() string {
	return s.info.Title
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.pending:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.act.Phase() == activity.PhaseGraded:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "n", Description: "New scenario"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	case s.choiceModule():
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+N", Description: "New scenario"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+N", Description: "New scenario"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) choiceModule() bool {
	return s.act.Module() == scenario.CompositionChange
}

// resetForm rebuilds the inputs for the current problem. Values from a
// previous attempt are carried over when given.
func (s *PracticeScreen) resetForm(values map[string]string) tea.Cmd {
	s.errMsg = ""
	s.scroll = 0
	s.focus = 0

	if s.choiceModule() {
		var opts []string
		if p := s.act.Problem(); p != nil && p.Change != nil {
			for _, o := range p.Change.Options {
				opts = append(opts, o.Text)
			}
		}
		s.choice = components.NewMultiChoice(opts)
		return nil
	}

	s.inputs = make([]components.TextInput, len(s.fields))
	for i, f := range s.fields {
		placeholder := f.Unit
		limit := 12
		if f.Text {
			placeholder = "type here"
			limit = 2000
		}
		if f.Optional {
			placeholder += " (optional)"
		}
		in := components.NewTextInput(placeholder, !f.Text, limit)
		in.SetWidth(48)
		if v, ok := values[f.Key]; ok {
			in.Model.SetValue(v)
		}
		s.inputs[i] = in
	}
	return s.focusInput(0)
}

func (s *PracticeScreen) focusInput(i int) tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	s.focus = (i + len(s.inputs)) % len(s.inputs)
	return s.inputs[s.focus].Focus()
}

func (s *PracticeScreen) values() map[string]string {
	out := make(map[string]string, len(s.inputs))
	for i, f := range s.fields {
		if i < len(s.inputs) {
			out[f.Key] = s.inputs[i].Value()
		}
	}
	return out
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		return s, s.handleGraded(msg)

	case spinnerTickMsg:
		if !s.pending {
			return s, nil
		}
		s.spin++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if !s.choiceModule() && len(s.inputs) > 0 && s.act.Phase() == activity.PhaseGenerated && !s.pending {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.pending {
		return nil
	}

	switch key {
	case "pgup":
		s.scroll = max(s.scroll-5, 0)
		return nil
	case "pgdown":
		s.scroll += 5
		return nil
	case "ctrl+n":
		return s.newScenario()
	}

	if s.act.Phase() == activity.PhaseGraded {
		switch key {
		case "r":
			return s.retry()
		case "n":
			return s.newScenario()
		}
		return nil
	}

	if s.choiceModule() {
		if key == "enter" {
			s.answer()
			return nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return cmd
	}

	switch key {
	case "tab", "down":
		return s.focusInput(s.focus + 1)
	case "shift+tab", "up":
		return s.focusInput(s.focus - 1)
	case "ctrl+s":
		return s.submit()
	case "enter":
		if s.focus == len(s.inputs)-1 {
			return s.submit()
		}
		return s.focusInput(s.focus + 1)
	}

	if len(s.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

// submit validates the form locally and dispatches grading in the
// background. Nothing is sent while a required field is blank.
func (s *PracticeScreen) submit() tea.Cmd {
	p := s.act.Problem()
	if p == nil {
		return nil
	}
	sub, err := grading.FromValues(p.Module, p.ID, s.values())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if missing := sub.Missing(); len(missing) > 0 {
		s.errMsg = "Please complete: " + strings.Join(s.labels(missing), ", ")
		return nil
	}

	s.errMsg = ""
	s.pending = true
	s.spin = 0
	for i := range s.inputs {
		s.inputs[i].Blur()
	}

	act, grader, id := s.act, s.grader, p.ID
	return tea.Batch(
		func() tea.Msg {
			res, err := act.Submit(context.Background(), grader, sub)
			return gradedMsg{ProblemID: id, Result: res, Err: err}
		},
		spinnerTick(),
	)
}

func (s *PracticeScreen) labels(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		label := k
		for _, f := range s.fields {
			if f.Key == k {
				label = f.Label
				break
			}
		}
		out = append(out, label)
	}
	return out
}

func (s *PracticeScreen) handleGraded(msg gradedMsg) tea.Cmd {
	s.pending = false
	if p := s.act.Problem(); p == nil || p.ID != msg.ProblemID {
		return nil
	}
	if msg.Err != nil {
		var inc *grading.IncompleteError
		if errors.As(msg.Err, &inc) {
			s.errMsg = "Please complete: " + strings.Join(s.labels(inc.Fields), ", ")
		} else {
			s.errMsg = msg.Err.Error()
		}
		return s.focusInput(s.focus)
	}
	s.scroll = 0
	return nil
}

func (s *PracticeScreen) answer() {
	p := s.act.Problem()
	if p == nil || p.Change == nil || len(p.Change.Options) == 0 {
		return
	}
	chosen := s.choice.Selected
	if _, err := s.act.Answer(p.Change.Options[chosen].ID); err != nil {
		s.errMsg = err.Error()
		return
	}
	correct := -1
	for i, o := range p.Change.Options {
		if o.Correct {
			correct = i
		}
	}
	s.choice.Reveal(chosen, correct)
}

func (s *PracticeScreen) retry() tea.Cmd {
	values := s.values()
	if err := s.act.Retry(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return s.resetForm(values)
}

func (s *PracticeScreen) newScenario() tea.Cmd {
	if _, err := s.act.NewScenario(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return s.resetForm(nil)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
