package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/ui/theme"
)

// ScoreBar renders a 0-100 score as a horizontal bar.
type ScoreBar struct {
	Score int
	Width int
}

// View renders the bar followed by the score.
func (s ScoreBar) View() string {
	barWidth := s.Width - 8
	if barWidth < 4 {
		barWidth = 4
	}
	score := min(max(s.Score, 0), 100)
	filled := barWidth * score / 100

	fill := theme.Error
	switch {
	case score >= 80:
		fill = theme.Success
	case score >= 50:
		fill = theme.Accent
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("  %3d", score))
}
