// Package personal collects the learner's own measurements and opens an
// energy-expenditure practice built from them.
package personal

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/activity"
	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/screen"
	"github.com/abhisek/nutriz/internal/screens/practice"
	"github.com/abhisek/nutriz/internal/ui/components"
	"github.com/abhisek/nutriz/internal/ui/layout"
	"github.com/abhisek/nutriz/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowGender = iota
	rowAge
	rowHeight
	rowWeight
	rowActivity
	rowCount
)

var genders = []calc.Gender{calc.Male, calc.Female}

// PersonalScreen is the measurement form.
type PersonalScreen struct {
	grader  activity.Grader
	sampler sampler.Sampler

	gender int
	level  int
	inputs map[int]*components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*PersonalScreen)(nil)
var _ screen.KeyHintProvider = (*PersonalScreen)(nil)

// New creates the form. s is used for the problem id and any scenario
// drawn afterwards.
func New(grader activity.Grader, s sampler.Sampler) *PersonalScreen {
	input := func(placeholder string) *components.TextInput {
		in := components.NewTextInput(placeholder, true, 6)
		in.SetWidth(12)
		return &in
	}
	return &PersonalScreen{
		grader:  grader,
		sampler: s,
		level:   1,
		inputs: map[int]*components.TextInput{
			rowAge:    input("years"),
			rowHeight: input("cm"),
			rowWeight: input("kg"),
		},
	}
}

func (s *PersonalScreen) Init() tea.Cmd {
	return s.setFocus(rowGender)
}

func (s *PersonalScreen) Title() string {
	return "My Energy Needs"
}

func (s *PersonalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PersonalScreen) setFocus(row int) tea.Cmd {
	s.focus = (row + rowCount) % rowCount
	var cmd tea.Cmd
	for r, in := range s.inputs {
		if r == s.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (s *PersonalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if in, ok := s.inputs[s.focus]; ok {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "ctrl+s":
		return s, s.start()
	case "enter":
		if s.focus == rowActivity {
			return s, s.start()
		}
		return s, s.setFocus(s.focus + 1)
	case "left", "right":
		step := 1
		if kmsg.String() == "left" {
			step = -1
		}
		switch s.focus {
		case rowGender:
			s.gender = (s.gender + step + len(genders)) % len(genders)
			return s, nil
		case rowActivity:
			s.level = min(max(s.level+step, 0), len(calc.ActivityLevels)-1)
			return s, nil
		}
	}

	if in, ok := s.inputs[s.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Attributes parses the form.
func (s *PersonalScreen) Attributes() (scenario.PersonalAttributes, error) {
	a := scenario.PersonalAttributes{
		Gender:   genders[s.gender],
		Activity: calc.ActivityLevels[s.level].Name,
	}

	age, err := strconv.Atoi(strings.TrimSpace(s.inputs[rowAge].Value()))
	if err != nil {
		return a, fmt.Errorf("age must be a whole number of years")
	}
	a.AgeYears = age

	if a.HeightCm, err = s.number(rowHeight, "height"); err != nil {
		return a, err
	}
	if a.WeightKg, err = s.number(rowWeight, "weight"); err != nil {
		return a, err
	}
	return a, nil
}

func (s *PersonalScreen) number(row int, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.inputs[row].Value()), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

// start builds the personal problem and swaps this form for practice.
func (s *PersonalScreen) start() tea.Cmd {
	attrs, err := s.Attributes()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	p, err := scenario.NewPersonalEnergy(s.sampler, attrs)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	act, err := activity.New(scenario.EnergyExpenditure, s.sampler)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if err := act.Load(p); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	next := practice.New(act, s.grader)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *PersonalScreen) View(width, height int) string {
	row := func(r int, label, value string) string {
		marker := "  "
		style := theme.Subtitle
		if r == s.focus {
			marker = "▸ "
			style = theme.Selected
		}
		return style.Render(fmt.Sprintf("%s%-12s", marker, label)) + value
	}
	cycle := func(r int, v string) string {
		if r == s.focus {
			return theme.Selected.Render("◂ " + v + " ▸")
		}
		return theme.Body.Render("  " + v)
	}

	lines := []string{
		theme.Title.Render("Your measurements"),
		theme.Subtitle.Render("Used only to build this practice problem."),
		"",
		row(rowGender, "Gender", cycle(rowGender, string(genders[s.gender]))),
		row(rowAge, "Age", s.inputs[rowAge].View()),
		row(rowHeight, "Height", s.inputs[rowHeight].View()),
		row(rowWeight, "Weight", s.inputs[rowWeight].View()),
		row(rowActivity, "Activity", cycle(rowActivity, calc.ActivityLevels[s.level].Label())),
	}
	if s.errMsg != "" {
		lines = append(lines, "", theme.Incorrect.Render("  "+s.errMsg))
	}

	cw := layout.ContentWidth(width)
	return lipgloss.NewStyle().
		PaddingLeft(max((width-cw)/2, 0)).
		PaddingTop(1).
		Render(theme.Card.Width(cw).Render(strings.Join(lines, "\n")))
}
