package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	stats []store.ModuleStats
	calls int
}

func (f *fakeEvents) GradeStatsByModule(context.Context) ([]store.ModuleStats, error) {
	f.calls++
	return f.stats, nil
}

func deps(events store.EventRepo) Deps {
	return Deps{
		Grader:     grading.NewService(nil, grading.DefaultConfig()),
		Events:     events,
		NewSampler: func() sampler.Sampler { return sampler.NewSeeded(11) },
	}
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	return msg
}

func TestStatsShownInDetail(t *testing.T) {
	events := &fakeEvents{stats: []store.ModuleStats{{Module: "body-composition", Attempts: 3, AvgScore: 81.4}}}
	h := New(deps(events))
	h.Update(h.Init()())

	if !strings.Contains(h.View(120, 40), "3 attempts, avg 81") {
		t.Fatal("expected stats for the selected module")
	}
}

func TestResumeReloadsStats(t *testing.T) {
	events := &fakeEvents{}
	h := New(deps(events))
	h.Update(h.Init()())
	h.Update(h.Resume()())

	if events.calls != 2 {
		t.Fatalf("expected stats loaded twice, got %d", events.calls)
	}
}

func TestEnterOpensPractice(t *testing.T) {
	h := New(deps(nil))
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := pushed(t, cmd).Screen.Title(); got != "Skeletal Muscle Mass" {
		t.Fatalf("unexpected screen %q", got)
	}
}

func TestDigitOpensPersonal(t *testing.T) {
	h := New(deps(nil))
	_, cmd := h.Update(tea.KeyPressMsg{Code: '9', Text: "9"})

	if got := pushed(t, cmd).Screen.Title(); got != "My Energy Needs" {
		t.Fatalf("unexpected screen %q", got)
	}
}

func TestHistoryNeedsEvents(t *testing.T) {
	if strings.Contains(New(deps(nil)).View(120, 40), "Grade History") {
		t.Fatal("history must be hidden without an event store")
	}
	if !strings.Contains(New(deps(&fakeEvents{})).View(120, 40), "Grade History") {
		t.Fatal("expected history with an event store")
	}
	if New(deps(nil)).Init() != nil {
		t.Fatal("expected no stats load without an event store")
	}
}
