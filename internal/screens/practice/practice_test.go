package practice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nutriz/internal/activity"
	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	tabKey   = tea.KeyPressMsg{Code: tea.KeyTab}
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	submit   = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

func typeText(s *PracticeScreen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

// bodyCompScreen loads a 75 kg, 22 % body-fat problem and grades offline.
func bodyCompScreen(t *testing.T) *PracticeScreen {
	t.Helper()
	act, err := activity.New(scenario.BodyComposition, sampler.NewSeeded(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := act.Load(scenario.GenerateBodyComposition(sampler.NewScripted(75, 22))); err != nil {
		t.Fatal(err)
	}
	s := New(act, grading.NewService(nil, grading.DefaultConfig()))
	s.Init()
	return s
}

// deliverGrade runs the submission command and feeds the graded message
// back to the screen. The spinner tick is never run.
func deliverGrade(t *testing.T, s *PracticeScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a submission command")
	}
	var cmds []tea.Cmd
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		cmds = msg
	case gradedMsg:
		s.Update(msg)
		return
	}
	for _, c := range cmds {
		if c == nil {
			continue
		}
		if msg, ok := c().(gradedMsg); ok {
			s.Update(msg)
			return
		}
	}
	t.Fatal("no graded message produced")
}

func fillBodyComp(s *PracticeScreen) {
	typeText(s, "16.5")
	s.Update(tabKey)
	typeText(s, "58.5")
	s.Update(tabKey)
	typeText(s, "75 x 0.22")
}

func TestSubmitGradesInBackground(t *testing.T) {
	s := bodyCompScreen(t)
	fillBodyComp(s)

	_, cmd := s.Update(submit)
	if !s.pending {
		t.Fatal("expected pending after submit")
	}
	if _, again := s.Update(submit); again != nil {
		t.Fatal("expected a second submit to be ignored while pending")
	}
	if !strings.Contains(s.View(120, 200), "Grading your answer") {
		t.Error("expected grading indicator while pending")
	}

	deliverGrade(t, s, cmd)

	if s.pending {
		t.Fatal("expected pending cleared after grading")
	}
	if s.act.Phase() != activity.PhaseGraded {
		t.Fatalf("expected graded phase, got %s", s.act.Phase())
	}
	res := s.act.Result()
	if !res.Fallback || res.FallbackReason != string(llm.ReasonNoProvider) {
		t.Fatalf("expected offline fallback, got %+v", res)
	}

	view := s.View(120, 200)
	for _, want := range []string{"Reference values", "Body fat mass: 16.5 kg", "Fat-free mass: 58.5 kg", "No grading service"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterOnLastFieldSubmits(t *testing.T) {
	s := bodyCompScreen(t)
	fillBodyComp(s)

	_, cmd := s.Update(enterKey)
	if !s.pending {
		t.Fatal("expected enter on the last field to submit")
	}
	deliverGrade(t, s, cmd)
}

func TestEnterAdvancesFocus(t *testing.T) {
	s := bodyCompScreen(t)
	s.Update(enterKey)
	if s.focus != 1 {
		t.Fatalf("expected focus on field 1, got %d", s.focus)
	}
	if s.pending {
		t.Fatal("enter on an earlier field must not submit")
	}
}

func TestIncompleteSubmissionSendsNothing(t *testing.T) {
	s := bodyCompScreen(t)
	typeText(s, "16.5")

	_, cmd := s.Update(submit)
	if cmd != nil || s.pending {
		t.Fatal("expected nothing dispatched for an incomplete form")
	}
	if s.errMsg != "Please complete: Fat-free mass, Working" {
		t.Fatalf("unexpected error message %q", s.errMsg)
	}
	if s.act.Phase() != activity.PhaseGenerated {
		t.Fatalf("expected generated phase, got %s", s.act.Phase())
	}
}

func TestNotANumber(t *testing.T) {
	s := bodyCompScreen(t)
	typeText(s, "-")
	s.Update(tabKey)
	typeText(s, "58.5")
	s.Update(tabKey)
	typeText(s, "w")

	if _, cmd := s.Update(submit); cmd != nil {
		t.Fatal("expected no command for an unparseable number")
	}
	if s.errMsg != `Body fat mass: "-" is not a number` {
		t.Fatalf("unexpected error message %q", s.errMsg)
	}
}

func TestNumericFieldsRejectLetters(t *testing.T) {
	s := bodyCompScreen(t)
	typeText(s, "1x2.5")
	if got := s.inputs[0].Value(); got != "12.5" {
		t.Fatalf("expected letters dropped, got %q", got)
	}
}

func TestRetryKeepsAnswers(t *testing.T) {
	s := bodyCompScreen(t)
	fillBodyComp(s)
	_, cmd := s.Update(submit)
	deliverGrade(t, s, cmd)
	id := s.act.Problem().ID

	s.Update(key('r'))

	if s.act.Phase() != activity.PhaseGenerated {
		t.Fatalf("expected generated phase after retry, got %s", s.act.Phase())
	}
	if s.act.Problem().ID != id {
		t.Fatal("retry must keep the problem")
	}
	if s.act.Result() != nil {
		t.Fatal("retry must clear the result")
	}
	if got := s.inputs[0].Value(); got != "16.5" {
		t.Fatalf("expected previous answer kept, got %q", got)
	}
}

func TestNewScenarioAfterGrading(t *testing.T) {
	s := bodyCompScreen(t)
	fillBodyComp(s)
	_, cmd := s.Update(submit)
	deliverGrade(t, s, cmd)
	id := s.act.Problem().ID

	s.Update(key('n'))

	if s.act.Problem().ID == id {
		t.Fatal("expected a new problem")
	}
	if s.act.Phase() != activity.PhaseGenerated {
		t.Fatalf("expected generated phase, got %s", s.act.Phase())
	}
	if got := s.inputs[0].Value(); got != "" {
		t.Fatalf("expected a blank form, got %q", got)
	}
}

func TestStaleGradeIgnored(t *testing.T) {
	s := bodyCompScreen(t)
	s.pending = true

	s.Update(gradedMsg{ProblemID: "someone-else", Result: &grading.Result{Score: 100}})

	if s.pending {
		t.Fatal("expected pending cleared")
	}
	if s.act.Phase() != activity.PhaseGenerated || s.errMsg != "" {
		t.Fatal("a stale grade must not change the screen")
	}
}

func TestCompositionChangeAnswer(t *testing.T) {
	act, err := activity.New(scenario.CompositionChange, sampler.NewSeeded(9))
	if err != nil {
		t.Fatal(err)
	}
	s := New(act, grading.NewService(nil, grading.DefaultConfig()))
	s.Init()

	p := act.Problem()
	if p == nil || len(s.choice.Options) != len(p.Change.Options) {
		t.Fatal("expected the options of a drawn scenario")
	}

	s.Update(key('b'))
	s.Update(enterKey)

	res := act.Result()
	if res == nil {
		t.Fatal("expected a local result")
	}
	if res.IsCorrect != p.Change.Options[1].Correct {
		t.Fatalf("result does not match option B")
	}
	if !s.choice.Revealed() {
		t.Fatal("expected the answer revealed")
	}
	if !strings.Contains(s.View(120, 200), "Initial: fat mass") {
		t.Error("expected the worked breakdown in the view")
	}
}

func TestEscPops(t *testing.T) {
	s := bodyCompScreen(t)
	_, cmd := s.Update(escKey)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestInitDrawsScenario(t *testing.T) {
	act, err := activity.New(scenario.Macronutrients, sampler.NewSeeded(4))
	if err != nil {
		t.Fatal(err)
	}
	s := New(act, grading.NewService(nil, grading.DefaultConfig()))
	s.Init()

	if act.Problem() == nil {
		t.Fatal("expected a scenario drawn on Init")
	}
	if len(s.inputs) != 4 {
		t.Fatalf("expected 4 inputs, got %d", len(s.inputs))
	}
	if s.Title() != "Macronutrients" {
		t.Fatalf("unexpected title %q", s.Title())
	}
	if !strings.Contains(s.View(120, 200), "TDEE") {
		t.Error("expected the client brief in the view")
	}
}
