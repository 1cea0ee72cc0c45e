// Package home is the module menu the TUI opens on.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/activity"
	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/screen"
	"github.com/abhisek/nutriz/internal/screens/history"
	"github.com/abhisek/nutriz/internal/screens/personal"
	"github.com/abhisek/nutriz/internal/screens/practice"
	"github.com/abhisek/nutriz/internal/store"
	"github.com/abhisek/nutriz/internal/ui/components"
	"github.com/abhisek/nutriz/internal/ui/layout"
	"github.com/abhisek/nutriz/internal/ui/theme"
)

// Deps are the services screens reached from home need.
type Deps struct {
	Grader activity.Grader

	// Events is optional; without it history and stats are hidden.
	Events store.EventRepo

	// NewSampler returns the sampler for a new activity. Nil means a
	// randomly seeded one.
	NewSampler func() sampler.Sampler
}

func (d Deps) sampler() sampler.Sampler {
	if d.NewSampler != nil {
		return d.NewSampler()
	}
	return sampler.New()
}

type statsLoadedMsg struct {
	Stats map[string]store.ModuleStats
	Err   error
}

// HomeScreen lists the practice modules.
type HomeScreen struct {
	deps    Deps
	modules []scenario.Info
	menu    components.Menu
	stats   map[string]store.ModuleStats
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, modules: scenario.Modules()}
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) items() []components.MenuItem {
	var items []components.MenuItem
	for _, info := range h.modules {
		items = append(items, components.MenuItem{
			Label:  info.Title,
			Detail: h.detail(info),
			Action: func() tea.Cmd { return h.open(info.Module) },
		})
	}

	items = append(items, components.MenuItem{
		Label:  "My Energy Needs",
		Detail: "Work out BMR and TDEE from your own measurements.",
		Action: func() tea.Cmd {
			return push(personal.New(h.deps.Grader, h.deps.sampler()))
		},
	})
	if h.deps.Events != nil {
		items = append(items, components.MenuItem{
			Label:  "Grade History",
			Detail: "Past submissions and per-module averages.",
			Action: func() tea.Cmd {
				return push(history.New(h.deps.Events))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return items
}

func (h *HomeScreen) detail(info scenario.Info) string {
	st, ok := h.stats[string(info.Module)]
	if !ok || st.Attempts == 0 {
		return info.Summary
	}
	return fmt.Sprintf("%s  ·  %d attempts, avg %.0f", info.Summary, st.Attempts, st.AvgScore)
}

func (h *HomeScreen) open(m scenario.Module) tea.Cmd {
	act, err := activity.New(m, h.deps.sampler())
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	return push(practice.New(act, h.deps.Grader))
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume refreshes the per-module stats after a practice screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	events := h.deps.Events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		rows, err := events.GradeStatsByModule(context.Background())
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		stats := make(map[string]store.ModuleStats, len(rows))
		for _, r := range rows {
			stats[r.Module] = r
		}
		return statsLoadedMsg{Stats: stats}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.stats = msg.Stats
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.items())
		h.menu.Selected = selected
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	title := theme.Title.Render("Nutrition & Body Composition Practice")
	subtitle := theme.Subtitle.Render("Pick a module. Every scenario is freshly generated.")

	sections := []string{"", title, subtitle, "", h.menu.View()}
	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(h.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(max((width-cw)/2, 0)).
		Render(strings.Join(sections, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
