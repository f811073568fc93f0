package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`███╗   ██╗███████╗██╗    ██╗███████╗`,
	`████╗  ██║██╔════╝██║    ██║██╔════╝`,
	`██╔██╗ ██║█████╗  ██║ █╗ ██║███████╗`,
	`██║╚██╗██║██╔══╝  ██║███╗██║╚════██║`,
	`██║ ╚████║███████╗╚███╔███╔╝███████║`,
	`╚═╝  ╚═══╝╚══════╝ ╚══╝╚══╝ ╚══════╝`,
}

func renderHomeScreen(width, height int, hasHistory bool, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	subStyle := lipgloss.NewStyle().Foreground(colorDim)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, subStyle.Render("        p a p e r  ·  sentiment-aware news"))
	lines = append(lines, "")
	lines = append(lines, "")

	lines = append(lines, "          "+keyStyle.Render("[s]")+"  "+labelStyle.Render("Search news"))
	if hasHistory {
		lines = append(lines, "          "+keyStyle.Render("[h]")+"  "+labelStyle.Render("Recent searches"))
	}
	lines = append(lines, "          "+keyStyle.Render("[b]")+"  "+labelStyle.Render("Bookmarks"))
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, "          "+logoStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
