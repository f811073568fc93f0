package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/emanuele-r/newspaper/internal/session"
)

// renderStatusBar shows the sentiment tally for the visible set plus the
// quiz score and context hints.
func renderStatusBar(rs *session.ResultSet, filterLabel string, score int, width int, searching bool) string {
	left := " 0 articles"
	if rs != nil {
		left = fmt.Sprintf(" %d articles · %s %d  %s %d  %s %d",
			rs.Len(),
			sentimentPositiveStyle.Render("pos"), rs.Positive,
			sentimentNegativeStyle.Render("neg"), rs.Negative,
			sentimentNeutralStyle.Render("neu"), rs.Neutral,
		)
	}
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if score > 0 {
		scoreStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		left += fmt.Sprintf(" · %s %d", scoreStyle.Render("score"), score)
	}

	right := " ? help  / search  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderBottomBar(score int, hints string, width int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	left := ""
	if score > 0 {
		left = fmt.Sprintf(" %s %d", scoreStyle.Render("score"), score)
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
