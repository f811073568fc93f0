package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/session"
)

// filterBar selects at most one source from the current result set.
type filterBar struct {
	sources      []string
	selected     string
	filterMode   bool
	filterCursor int
}

// rebuild derives the source tabs from rs, sorted for a stable order.
func (f *filterBar) rebuild(rs *session.ResultSet) {
	f.sources = f.sources[:0]
	f.selected = ""
	f.filterCursor = 0
	if rs == nil {
		return
	}
	for name := range aggregate.GroupBySource(rs) {
		f.sources = append(f.sources, name)
	}
	sort.Strings(f.sources)
}

func (f *filterBar) toggleCurrent() {
	if f.filterCursor >= len(f.sources) {
		return
	}
	name := f.sources[f.filterCursor]
	if f.selected == name {
		f.selected = ""
	} else {
		f.selected = name
	}
}

func (f *filterBar) activeLabel() string {
	if f.selected == "" {
		return "All"
	}
	return f.selected
}

func (f *filterBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	if f.selected == "" {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, s := range f.sources {
		style := tabInactiveStyle
		if f.selected == s {
			style = tabActiveStyle
		}
		label := s
		if f.filterMode && i == f.filterCursor {
			label = "[" + s + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
