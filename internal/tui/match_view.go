package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nmehta6/wastelink/internal/matching"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// View styles.
//
//nolint:gochecknoglobals // Lipgloss styles are constructed once per package.
var (
	matchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36"))

	matchFocusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	matchScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	matchErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	matchHelpStyle = lipgloss.NewStyle().
			Faint(true)
)

// View renders the match what-if screen.
func (m *MatchModel) View() string {
	if m.state == MatchStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(matchTitleStyle.Render("Match Score What-If"))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		cursor := "  "
		line := fmt.Sprintf("%-12s %7s  × %s", r.key, formatFactor(r.currentValue), mathx.Num(r.weight))

		if i == m.focusedRow {
			cursor = "> "
			if m.editMode {
				line = fmt.Sprintf("%-12s %s  × %s", r.key, m.input.View(), mathx.Num(r.weight))
			}
			line = matchFocusStyle.Render(line)
		}

		b.WriteString(cursor)
		b.WriteString(line)
		if r.currentValue != r.originalValue {
			b.WriteString(matchHelpStyle.Render(fmt.Sprintf("  (was %s)", formatFactor(r.originalValue))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.editErr != "":
		b.WriteString(matchErrStyle.Render(m.editErr))
	case m.resultErr != nil:
		b.WriteString(matchErrStyle.Render(m.resultErr.Error()))
	default:
		b.WriteString(matchScoreStyle.Render(fmt.Sprintf("Score: %s", mathx.Num(m.result.Score))))
		b.WriteString("\n")
		b.WriteString(m.result.Formula)
	}

	b.WriteString("\n\n")
	b.WriteString(matchHelpStyle.Render("↑/↓ select · enter edit · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Result returns the last computed score, for callers that want the final
// state after the program exits.
func (m *MatchModel) Result() matching.ScoreResult {
	return m.result
}
