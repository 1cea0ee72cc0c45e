package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/activity"
	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/ui/components"
	"github.com/abhisek/nutriz/internal/ui/layout"
	"github.com/abhisek/nutriz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *PracticeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	p := s.act.Problem()
	if p == nil {
		msg := "Preparing scenario..."
		if s.errMsg != "" {
			msg = s.errMsg
		}
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n" + msg)
	}

	var sections []string
	sections = append(sections, theme.Card.Width(cw).Render(describe(p)))

	if s.choiceModule() {
		sections = append(sections, s.choice.View())
	} else {
		sections = append(sections, s.renderForm())
	}

	switch {
	case s.pending:
		frame := spinnerFrames[s.spin%len(spinnerFrames)]
		sections = append(sections, theme.Label.Render("  "+frame+" Grading your answer..."))
	case s.errMsg != "":
		sections = append(sections, theme.Incorrect.Render("  "+s.errMsg))
	}

	if res := s.act.Result(); res != nil && s.act.Phase() == activity.PhaseGraded {
		sections = append(sections, s.renderResult(res, cw))
	}

	content := strings.Join(sections, "\n\n")
	return clip(content, s.scroll, height)
}

func (s *PracticeScreen) renderForm() string {
	var b strings.Builder
	graded := s.act.Phase() == activity.PhaseGraded
	for i, f := range s.fields {
		if i >= len(s.inputs) {
			break
		}
		label := f.Label
		if f.Unit != "" {
			label += " (" + f.Unit + ")"
		}
		marker := "  "
		style := theme.Subtitle
		if i == s.focus && !s.pending && !graded {
			marker = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-28s", marker, label)))
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PracticeScreen) renderResult(res *grading.Result, cw int) string {
	var lines []string

	verdict := theme.Incorrect.Render("✗ Not quite")
	if res.IsCorrect {
		verdict = theme.Correct.Render("✓ Correct")
	}
	lines = append(lines, verdict, components.ScoreBar{Score: res.Score, Width: min(cw-4, 50)}.View(), "")

	if res.Fallback {
		lines = append(lines, theme.Warning.Render(fallbackNote(res.FallbackReason)), "")
	}
	if res.Feedback != "" {
		lines = append(lines, theme.Label.Render("Feedback"), theme.Body.Width(cw-4).Render(res.Feedback), "")
	}
	if res.ReasoningCritique != "" {
		lines = append(lines, theme.Label.Render("Reasoning"), theme.Body.Width(cw-4).Render(res.ReasoningCritique), "")
	}
	if entries := res.Corrections.Entries(s.act.Module()); len(entries) > 0 {
		lines = append(lines, theme.Label.Render("Reference values"))
		for _, c := range entries {
			lines = append(lines, theme.Body.Render("  "+c.String()))
		}
	}

	border := theme.Error
	if res.IsCorrect {
		border = theme.Success
	}
	return theme.Card.BorderForeground(border).Width(cw).Render(strings.TrimRight(strings.Join(lines, "\n"), "\n"))
}

func fallbackNote(reason string) string {
	switch llm.Reason(reason) {
	case llm.ReasonNoProvider:
		return "No grading service is configured. Showing reference values only."
	case llm.ReasonTimeout:
		return "The grading service timed out. Showing reference values only."
	case llm.ReasonRateLimit:
		return "The grading service is busy. Showing reference values only."
	}
	return "The grading service could not assess this answer. Showing reference values only."
}

// clip returns the visible window of content starting at line offset.
func clip(content string, offset, height int) string {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		return content
	}
	offset = min(offset, len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n")
}
