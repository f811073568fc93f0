package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/session"
	"github.com/emanuele-r/newspaper/internal/topics"
)

// barWidth is the widest a distribution bar can grow.
const barWidth = 30

func renderCharts(rs *session.ResultSet, width, height int) string {
	if rs == nil || rs.Len() == 0 {
		return centerText("No articles to chart.", width, height)
	}

	var lines []string
	lines = append(lines, helpDimStyle.Render("Sentiment distribution"), "")

	total := rs.Len()
	lines = append(lines,
		chartBar("Positive", rs.Positive, total, sentimentPositiveStyle),
		chartBar("Negative", rs.Negative, total, sentimentNegativeStyle),
		chartBar("Neutral", rs.Neutral, total, sentimentNeutralStyle),
	)

	lines = append(lines, "", helpDimStyle.Render("Articles per source"), "")

	bySource := aggregate.GroupBySource(rs)
	names := make([]string, 0, len(bySource))
	for name := range bySource {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, chartBar(name, bySource[name], total, itemSourceStyle))
	}

	card := panelCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func chartBar(label string, count, total int, style lipgloss.Style) string {
	if total <= 0 {
		total = 1
	}
	filled := count * barWidth / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := style.Render(strings.Repeat("█", filled)) + helpDimStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%-14s %s %d", truncateStr(label, 14), bar, count)
}

func renderTopics(model *topics.Model, err error, width, height int) string {
	if err != nil {
		return centerText(err.Error(), width, height)
	}
	if model == nil {
		return centerText("Extracting topics...", width, height)
	}

	var lines []string
	lines = append(lines, helpDimStyle.Render("Detected topics"), "")
	for i, topic := range model.Topics {
		seed := itemTitleStyle.Render(topic.Label)
		rest := helpDimStyle.Render(strings.Join(topic.Terms, " · "))
		lines = append(lines, fmt.Sprintf("  %d. %s  %s", i+1, seed, rest))
	}

	card := panelCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderWordCloud sizes terms by frequency using three weight tiers.
func renderWordCloud(terms []topics.TermCount, width, height int) string {
	if len(terms) == 0 {
		return centerText("Not enough article content for a word cloud.", width, height)
	}

	maxCount := terms[0].Count
	var parts []string
	for _, tc := range terms {
		var styled string
		switch {
		case tc.Count*3 >= maxCount*2:
			styled = itemSelectedStyle.Render(strings.ToUpper(tc.Term))
		case tc.Count*3 >= maxCount:
			styled = itemTitleStyle.Render(tc.Term)
		default:
			styled = helpDimStyle.Render(tc.Term)
		}
		parts = append(parts, styled)
	}

	cloudWidth := width * 2 / 3
	if cloudWidth < 20 {
		cloudWidth = 20
	}

	var lines []string
	var line string
	for _, p := range parts {
		candidate := line
		if candidate != "" {
			candidate += "   "
		}
		candidate += p
		if lipgloss.Width(candidate) > cloudWidth && line != "" {
			lines = append(lines, line)
			line = p
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}

	card := panelCardStyle.Render(strings.Join(lines, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderHistory(queries []string, cursor int, width, height int) string {
	if len(queries) == 0 {
		return centerText("No searches yet.", width, height)
	}

	var lines []string
	lines = append(lines, helpDimStyle.Render("Recent searches"), "")
	for i, q := range queries {
		if i == cursor {
			lines = append(lines, itemSelectedStyle.Render("> "+q))
		} else {
			lines = append(lines, "  "+q)
		}
	}
	lines = append(lines, "", helpDimStyle.Render("enter re-run  x clear all  esc back"))

	card := panelCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderBookmarks(names []string, cursor int, width, height int) string {
	if len(names) == 0 {
		return centerText("No bookmarks saved.", width, height)
	}

	var lines []string
	lines = append(lines, helpDimStyle.Render("Bookmarked result sets"), "")
	for i, name := range names {
		if i == cursor {
			lines = append(lines, itemSelectedStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	lines = append(lines, "", helpDimStyle.Render("enter open  esc back"))

	card := panelCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuiz shows the sentiment guessing prompt for one article. After
// an answer, answered/correct drive the feedback line.
func renderQuiz(la *session.LabeledArticle, answered, correct bool, score, width, height int) string {
	if la == nil {
		return centerText("No article selected.", width, height)
	}

	var lines []string
	lines = append(lines, helpDimStyle.Render("Sentiment quiz"), "")
	lines = append(lines, itemTitleStyle.Render(truncateStr(la.DisplayTitle(), 60)))
	lines = append(lines, "")
	lines = append(lines, "What is the sentiment of this article?")
	lines = append(lines, "")
	lines = append(lines, "  "+sentimentPositiveStyle.Render("[p]")+" Positive   "+
		sentimentNegativeStyle.Render("[n]")+" Negative   "+
		sentimentNeutralStyle.Render("[u]")+" Neutral")

	if answered {
		lines = append(lines, "")
		if correct {
			lines = append(lines, sentimentPositiveStyle.Render(fmt.Sprintf("Correct! Score: %d", score)))
		} else {
			lines = append(lines, sentimentNegativeStyle.Render("Not quite. It was "+string(la.Sentiment)+"."))
		}
	}
	lines = append(lines, "", helpDimStyle.Render("esc back"))

	card := panelCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
