package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/screens/home"
)

func newModel(model string) AppModel {
	m := newAppModel(Options{
		Deps:  home.Deps{Grader: grading.NewService(nil, grading.DefaultConfig())},
		Model: model,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func content(m AppModel) string {
	return m.render()
}

func TestHeaderShowsModel(t *testing.T) {
	if !strings.Contains(content(newModel("claude-haiku-4-5-20251001")), "claude-haiku-4-5-20251001") {
		t.Error("expected model in header")
	}
	if !strings.Contains(content(newModel("")), "offline") {
		t.Error("expected offline marker without a model")
	}
}

func TestTooSmall(t *testing.T) {
	m := newModel("")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(content(updated.(AppModel)), "Terminal too small") {
		t.Error("expected minimum size message")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newModel("")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("expected no command at the root screen")
	}
}

func TestOpenModuleAndBack(t *testing.T) {
	m := newModel("")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	m.Update(push)
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}
	if !strings.Contains(content(m), "Body Composition") {
		t.Error("expected the module title in the header")
	}
	if !strings.Contains(content(m), "Ctrl+S") {
		t.Error("expected practice key hints in the footer")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Fatalf("expected depth 1 after esc, got %d", m.router.Depth())
	}
}
