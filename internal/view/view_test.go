package view

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
)

func testCoordinator(t *testing.T) (*Coordinator, *session.Session) {
	t.Helper()
	s := session.New(filepath.Join(t.TempDir(), "history.txt"))
	return New(s), s
}

func sampleResultSet() *session.ResultSet {
	return &session.ResultSet{
		Query: "energy",
		Articles: []session.LabeledArticle{
			{Article: newsapi.Article{Title: "One", Source: newsapi.Source{Name: "BBC"}, PublishedAt: "2024-05-01T10:00:00Z"}, Sentiment: sentiment.Positive},
			{Article: newsapi.Article{Title: "Two"}, Sentiment: sentiment.Negative},
			{Article: newsapi.Article{Title: "Three", Source: newsapi.Source{Name: "BBC"}, PublishedAt: "2024-05-03T10:00:00Z"}, Sentiment: sentiment.Neutral},
			{Article: newsapi.Article{Title: "Four", PublishedAt: "not a date"}, Sentiment: sentiment.Neutral},
			{Article: newsapi.Article{Title: "Five", Source: newsapi.Source{Name: "NPR"}, PublishedAt: "2024-05-05T10:00:00Z"}, Sentiment: sentiment.Positive},
		},
		Positive: 2, Negative: 1, Neutral: 2,
	}
}

func TestAddBookmarkEmptyName(t *testing.T) {
	c, s := testCoordinator(t)
	for _, name := range []string{"", "   "} {
		if err := c.AddBookmark(name, sampleResultSet()); !errors.Is(err, ErrEmptyName) {
			t.Errorf("AddBookmark(%q) = %v, want ErrEmptyName", name, err)
		}
	}
	if len(s.BookmarkNames()) != 0 {
		t.Error("validation failure must not mutate the collection")
	}
}

func TestSelectBookmarkNotFound(t *testing.T) {
	c, _ := testCoordinator(t)
	if _, err := c.SelectBookmark("ghost"); !errors.Is(err, ErrBookmarkNotFound) {
		t.Errorf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkSurvivesNewSearch(t *testing.T) {
	c, s := testCoordinator(t)
	r1 := sampleResultSet()
	if err := c.AddBookmark("x", r1); err != nil {
		t.Fatalf("AddBookmark: %v", err)
	}

	// A later search replaces the session's current result set.
	r2 := &session.ResultSet{Query: "other"}
	s.SetCurrent(r2)

	got, err := c.SelectBookmark("x")
	if err != nil {
		t.Fatalf("SelectBookmark: %v", err)
	}
	if got.Query != "energy" || got.Len() != 5 {
		t.Errorf("bookmark changed after new search: query=%q len=%d", got.Query, got.Len())
	}
}

func TestAddBookmarkOverwrites(t *testing.T) {
	c, _ := testCoordinator(t)
	c.AddBookmark("x", &session.ResultSet{Query: "first"})
	c.AddBookmark("x", &session.ResultSet{Query: "second"})
	got, err := c.SelectBookmark("x")
	if err != nil {
		t.Fatalf("SelectBookmark: %v", err)
	}
	if got.Query != "second" {
		t.Errorf("expected overwrite, got query %q", got.Query)
	}
}

func TestFilterBySourceUnknown(t *testing.T) {
	rs := sampleResultSet()
	got := FilterBySource(rs, "Unknown")
	if got.Len() != 2 {
		t.Fatalf("expected 2 unknown-source articles, got %d", got.Len())
	}
	if got.Articles[0].Title != "Two" || got.Articles[1].Title != "Four" {
		t.Errorf("order not preserved: %q, %q", got.Articles[0].Title, got.Articles[1].Title)
	}
	p, n, neu := got.Positive, got.Negative, got.Neutral
	if p+n+neu != got.Len() {
		t.Errorf("recount not exact: %d+%d+%d != %d", p, n, neu, got.Len())
	}
}

func TestFilterBySourceNoMatches(t *testing.T) {
	got := FilterBySource(sampleResultSet(), "Reuters")
	if got.Len() != 0 {
		t.Fatalf("expected empty subsequence, got %d", got.Len())
	}
	if got.Positive != 0 || got.Negative != 0 || got.Neutral != 0 {
		t.Error("empty subsequence must aggregate to (0,0,0)")
	}
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	rs := sampleResultSet()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	got := FilterByDateRange(rs, start, end)
	if got.Len() != 2 {
		t.Fatalf("expected 2 articles in range, got %d", got.Len())
	}
	// Bounds are inclusive: "One" at start, "Three" at end.
	if got.Articles[0].Title != "One" || got.Articles[1].Title != "Three" {
		t.Errorf("unexpected articles: %q, %q", got.Articles[0].Title, got.Articles[1].Title)
	}
}

func TestFilterByDateRangeExcludesUnparsable(t *testing.T) {
	rs := sampleResultSet()
	// A range wide enough for everything with a valid timestamp.
	got := FilterByDateRange(rs, time.Time{}, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, la := range got.Articles {
		if la.Title == "Two" || la.Title == "Four" {
			t.Errorf("article %q without valid timestamp must be excluded", la.Title)
		}
	}
	if got.Len() != 3 {
		t.Errorf("expected 3 dated articles, got %d", got.Len())
	}
}

func TestRecordQuizAnswerCaseInsensitive(t *testing.T) {
	c, s := testCoordinator(t)
	s.SetCurrent(sampleResultSet())

	if !c.RecordQuizAnswer(0, "Yes", "yes") {
		t.Fatal("case-insensitive match should be correct")
	}
	if s.Score() != session.QuizReward {
		t.Errorf("score = %d, want %d", s.Score(), session.QuizReward)
	}

	if c.RecordQuizAnswer(0, "no", "yes") {
		t.Error("wrong answer reported correct")
	}
	if s.Score() != session.QuizReward {
		t.Errorf("wrong answer changed score: %d", s.Score())
	}
}

func TestRecordQuizAnswerIdempotentPerArticle(t *testing.T) {
	c, s := testCoordinator(t)
	s.SetCurrent(sampleResultSet())

	c.RecordQuizAnswer(1, "yes", "yes")
	if !c.RecordQuizAnswer(1, "YES", "yes") {
		t.Error("repeat correct answer should still report correct")
	}
	if s.Score() != session.QuizReward {
		t.Errorf("repeat answer re-incremented score: %d", s.Score())
	}

	c.RecordQuizAnswer(2, "yes", "yes")
	if s.Score() != 2*session.QuizReward {
		t.Errorf("different article should reward again: %d", s.Score())
	}
}

func TestAvailablePanelsEmptySet(t *testing.T) {
	p := AvailablePanels(&session.ResultSet{})
	if p.Charts || p.WordCloud || p.Topics || p.Translation {
		t.Errorf("no panels should be available for an empty set: %+v", p)
	}
}

func TestAvailablePanelsContentGating(t *testing.T) {
	rs := &session.ResultSet{Articles: []session.LabeledArticle{
		{Article: newsapi.Article{Title: "headline only"}},
	}}
	p := AvailablePanels(rs)
	if !p.Charts || !p.Translation {
		t.Errorf("charts/translation should be available: %+v", p)
	}
	if p.WordCloud || p.Topics {
		t.Errorf("content panels need content: %+v", p)
	}

	rs.Articles[0].Content = "some body text"
	p = AvailablePanels(rs)
	if !p.WordCloud || !p.Topics {
		t.Errorf("content panels should unlock with content: %+v", p)
	}
}
