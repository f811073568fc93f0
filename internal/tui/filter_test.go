package tui

import (
	"testing"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/session"
)

func filterResultSet() *session.ResultSet {
	return &session.ResultSet{
		Query: "markets",
		Articles: []session.LabeledArticle{
			{Article: newsapi.Article{Title: "a", Source: newsapi.Source{Name: "BBC"}}},
			{Article: newsapi.Article{Title: "b", Source: newsapi.Source{Name: "NPR"}}},
			{Article: newsapi.Article{Title: "c", Source: newsapi.Source{Name: "BBC"}}},
		},
		Neutral: 3,
	}
}

func TestFilterBarRebuild(t *testing.T) {
	var f filterBar
	f.rebuild(filterResultSet())

	want := []string{"BBC", "NPR"}
	if len(f.sources) != len(want) {
		t.Fatalf("sources = %v, want %v", f.sources, want)
	}
	for i, s := range want {
		if f.sources[i] != s {
			t.Errorf("sources[%d] = %q, want %q", i, f.sources[i], s)
		}
	}
	if f.selected != "" {
		t.Errorf("fresh bar should have no selection, got %q", f.selected)
	}
}

func TestFilterBarToggle(t *testing.T) {
	var f filterBar
	f.rebuild(filterResultSet())

	f.toggleCurrent()
	if f.selected != "BBC" {
		t.Errorf("selected = %q, want BBC", f.selected)
	}
	if f.activeLabel() != "BBC" {
		t.Errorf("label = %q, want BBC", f.activeLabel())
	}

	// Toggling the same source again clears the selection.
	f.toggleCurrent()
	if f.selected != "" {
		t.Errorf("selected = %q, want empty", f.selected)
	}
	if f.activeLabel() != "All" {
		t.Errorf("label = %q, want All", f.activeLabel())
	}
}

func TestFilterBarRebuildClearsSelection(t *testing.T) {
	var f filterBar
	f.rebuild(filterResultSet())
	f.toggleCurrent()

	f.rebuild(&session.ResultSet{})
	if f.selected != "" || len(f.sources) != 0 {
		t.Errorf("rebuild on empty set should reset, got %q %v", f.selected, f.sources)
	}
}

func TestChartBar(t *testing.T) {
	got := chartBar("Positive", 0, 10, sentimentPositiveStyle)
	if got == "" {
		t.Fatal("expected rendered bar")
	}
	// A zero count must not render a filled segment.
	gotNonzero := chartBar("Positive", 1, 1000, sentimentPositiveStyle)
	if gotNonzero == got {
		t.Error("nonzero count should render at least one filled cell")
	}
}
