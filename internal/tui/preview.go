package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emanuele-r/newspaper/internal/session"
)

// renderDetail draws the right-hand pane for the selected article,
// including any AI summary or translation fetched for it.
func renderDetail(la *session.LabeledArticle, summary, translation string, width, height, scroll int) string {
	if la == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := detailTitleStyle.Width(contentWidth).Render(la.DisplayTitle())

	meta := la.SourceName() + " · " + la.DisplayAuthor()
	if published, ok := la.Published(); ok {
		meta = fmt.Sprintf("%s · %s", meta, published.Format("Jan 2, 2006"))
	}
	source := detailSourceStyle.Render(meta)

	label := sentimentStyle(la.Sentiment).Render(string(la.Sentiment))

	desc := la.Content
	if desc == "" {
		desc = la.Description
	}
	if desc == "" {
		desc = "(No content available)"
	}
	body := detailBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	sections := []string{title, source, label, "", body}

	if summary != "" {
		head := helpDimStyle.Render("Summary")
		sections = append(sections, "", head, detailBodyStyle.Width(contentWidth).Render(wrapText(summary, contentWidth)))
	}
	if translation != "" {
		head := helpDimStyle.Render("Translation")
		sections = append(sections, "", head, detailBodyStyle.Width(contentWidth).Render(wrapText(translation, contentWidth)))
	}

	link := detailLinkStyle.Width(contentWidth).Render("Read more: " + la.DisplayLink())
	sections = append(sections, "", link)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
