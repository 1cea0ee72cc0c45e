// Package history shows past grading outcomes and per-module averages.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/router"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/screen"
	"github.com/abhisek/nutriz/internal/store"
	"github.com/abhisek/nutriz/internal/ui/layout"
	"github.com/abhisek/nutriz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Filter string
	Grades []store.GradeEvent
	Stats  []store.ModuleStats
	Err    error
}

// HistoryScreen lists recent grade events, optionally for one module.
type HistoryScreen struct {
	events   store.EventRepo
	filters  []string
	filter   int
	grades   []store.GradeEvent
	stats    []store.ModuleStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen over events.
func New(events store.EventRepo) *HistoryScreen {
	filters := []string{""}
	for _, info := range scenario.Modules() {
		filters = append(filters, string(info.Module))
	}
	return &HistoryScreen{
		events:   events,
		filters:  filters,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	events, filter := s.events, s.filters[s.filter]
	return func() tea.Msg {
		ctx := context.Background()
		grades, err := events.QueryGrades(ctx, store.QueryOpts{Limit: pageSize, Filter: filter})
		if err != nil {
			return historyLoadedMsg{Filter: filter, Err: err}
		}
		stats, err := events.GradeStatsByModule(ctx)
		if err != nil {
			return historyLoadedMsg{Filter: filter, Err: err}
		}
		return historyLoadedMsg{Filter: filter, Grades: grades, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "Grade History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "f", Description: "Filter module"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Filter != s.filters[s.filter] {
			return s, nil
		}
		s.loaded = true
		s.errMsg = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.grades = msg.Grades
		s.stats = msg.Stats
		s.selected = 0
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.grades)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "f":
			s.filter = (s.filter + 1) % len(s.filters)
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *HistoryScreen) filterLabel() string {
	if f := s.filters[s.filter]; f != "" {
		if info, ok := scenario.Lookup(scenario.Module(f)); ok {
			return info.Title
		}
		return f
	}
	return "All modules"
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderStats())
	b.WriteString("\n")
	b.WriteString(theme.Label.Render("  Recent: " + s.filterLabel()))
	b.WriteString("\n\n")

	if len(s.grades) == 0 {
		b.WriteString(theme.Hint.Render("  No graded submissions yet. Start practicing!"))
		return b.String()
	}

	for i, g := range s.grades {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		title := g.Module
		if info, ok := scenario.Lookup(scenario.Module(g.Module)); ok {
			title = info.Title
		}
		mark := theme.Incorrect.Render("✗")
		if g.IsCorrect {
			mark = theme.Correct.Render("✓")
		}
		line := fmt.Sprintf("%s%s  %-22s %3d", prefix, g.Timestamp.Local().Format("Jan 02 15:04"), title, g.Score)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "  " + mark)
		if g.Fallback {
			b.WriteString(theme.Warning.Render("  offline"))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(g))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderStats() string {
	if len(s.stats) == 0 {
		return ""
	}
	var b strings.Builder
	header := fmt.Sprintf("  %-22s %8s %8s %9s %9s", "Module", "Attempts", "Correct", "Avg score", "Offline")
	b.WriteString(theme.Label.Render(header))
	b.WriteString("\n")
	for _, st := range s.stats {
		title := st.Module
		if info, ok := scenario.Lookup(scenario.Module(st.Module)); ok {
			title = info.Title
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-22s %8d %8d %9.1f %9d",
			title, st.Attempts, st.Correct, st.AvgScore, st.Fallbacks)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderDetail(g store.GradeEvent) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{"      Problem " + g.ProblemID}
	if g.Model != "" {
		lines = append(lines, "      Graded by "+g.Model)
	}
	if g.Fallback {
		lines = append(lines, "      Offline result ("+g.FallbackReason+")")
	}
	lines = append(lines, fmt.Sprintf("      Took %d ms", g.LatencyMs))
	return dim.Render(strings.Join(lines, "\n")) + "\n"
}
