package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
)

type stubProvider struct {
	articles []newsapi.Article
	err      error
}

func (p *stubProvider) Search(ctx context.Context, keyword string) ([]newsapi.Article, error) {
	return p.articles, p.err
}

// stubScorer returns a fixed compound per content string.
type stubScorer struct {
	compounds map[string]float64
	errOn     string
	panicOn   string
}

func (s *stubScorer) Polarity(text string) (sentiment.Scores, error) {
	if s.errOn != "" && text == s.errOn {
		return sentiment.Scores{}, errors.New("malformed content")
	}
	if s.panicOn != "" && text == s.panicOn {
		panic("scorer exploded")
	}
	return sentiment.Scores{Compound: s.compounds[text]}, nil
}

func TestFetchAndLabelScenario(t *testing.T) {
	// query "climate": compounds [0.5, -0.2, 0.0] -> labels P/N/Neu -> (1,1,1)
	provider := &stubProvider{articles: []newsapi.Article{
		{Title: "a", Content: "up"},
		{Title: "b", Content: "down"},
		{Title: "c", Content: "flat"},
	}}
	scorer := &stubScorer{compounds: map[string]float64{"up": 0.5, "down": -0.2, "flat": 0}}

	rs, notice := New(provider, scorer).FetchAndLabel(context.Background(), "climate")
	if notice != "" {
		t.Fatalf("unexpected notice: %q", notice)
	}
	wantLabels := []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral}
	for i, want := range wantLabels {
		if rs.Articles[i].Sentiment != want {
			t.Errorf("article %d label = %s, want %s", i, rs.Articles[i].Sentiment, want)
		}
	}
	if rs.Positive != 1 || rs.Negative != 1 || rs.Neutral != 1 {
		t.Errorf("counts = (%d,%d,%d), want (1,1,1)", rs.Positive, rs.Negative, rs.Neutral)
	}
}

func TestFetchAndLabelProviderFailure(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("search API returned status 500: boom")}
	rs, notice := New(provider, &stubScorer{}).FetchAndLabel(context.Background(), "anything")

	if rs.Len() != 0 {
		t.Errorf("expected empty result set, got %d articles", rs.Len())
	}
	if notice == "" {
		t.Fatal("expected a non-empty notice")
	}
	if !strings.Contains(notice, "500") {
		t.Errorf("notice should carry the status code: %q", notice)
	}
}

func TestMissingContentIsNeutral(t *testing.T) {
	provider := &stubProvider{articles: []newsapi.Article{{Title: "no body"}}}
	scorer := &stubScorer{compounds: map[string]float64{"": 0}}

	rs, _ := New(provider, scorer).FetchAndLabel(context.Background(), "q")
	if rs.Articles[0].Sentiment != sentiment.Neutral {
		t.Errorf("empty content label = %s, want Neutral", rs.Articles[0].Sentiment)
	}
}

func TestScorerErrorIsolatedToArticle(t *testing.T) {
	provider := &stubProvider{articles: []newsapi.Article{
		{Title: "bad", Content: "garbage"},
		{Title: "fine", Content: "up"},
	}}
	scorer := &stubScorer{compounds: map[string]float64{"up": 0.9}, errOn: "garbage"}

	rs, _ := New(provider, scorer).FetchAndLabel(context.Background(), "q")
	if rs.Len() != 2 {
		t.Fatalf("one bad article must not abort the batch: got %d", rs.Len())
	}
	if rs.Articles[0].Sentiment != sentiment.Neutral {
		t.Errorf("failed article label = %s, want Neutral", rs.Articles[0].Sentiment)
	}
	if rs.Articles[1].Sentiment != sentiment.Positive {
		t.Errorf("healthy article label = %s, want Positive", rs.Articles[1].Sentiment)
	}
}

func TestScorerPanicIsolatedToArticle(t *testing.T) {
	provider := &stubProvider{articles: []newsapi.Article{
		{Title: "boom", Content: "explosive"},
		{Title: "ok", Content: "up"},
	}}
	scorer := &stubScorer{compounds: map[string]float64{"up": 0.4}, panicOn: "explosive"}

	rs, _ := New(provider, scorer).FetchAndLabel(context.Background(), "q")
	if rs.Len() != 2 {
		t.Fatalf("panic must not abort the batch: got %d", rs.Len())
	}
	if rs.Articles[0].Sentiment != sentiment.Neutral {
		t.Errorf("panicked article label = %s, want Neutral", rs.Articles[0].Sentiment)
	}
}

func TestCountsPartitionExact(t *testing.T) {
	rs := &session.ResultSet{Articles: []session.LabeledArticle{
		{Sentiment: sentiment.Positive},
		{Sentiment: sentiment.Positive},
		{Sentiment: sentiment.Negative},
		{Sentiment: sentiment.Neutral},
	}}
	p, n, neu := Counts(rs)
	if p+n+neu != rs.Len() {
		t.Errorf("partition not exact: %d+%d+%d != %d", p, n, neu, rs.Len())
	}
	if p != 2 || n != 1 || neu != 1 {
		t.Errorf("counts = (%d,%d,%d), want (2,1,1)", p, n, neu)
	}
}

func TestCountsEmpty(t *testing.T) {
	p, n, neu := Counts(&session.ResultSet{})
	if p != 0 || n != 0 || neu != 0 {
		t.Errorf("empty counts = (%d,%d,%d), want zeros", p, n, neu)
	}
	p, n, neu = Counts(nil)
	if p != 0 || n != 0 || neu != 0 {
		t.Errorf("nil counts = (%d,%d,%d), want zeros", p, n, neu)
	}
}

func TestGroupBySourceSumsToLen(t *testing.T) {
	rs := &session.ResultSet{Articles: []session.LabeledArticle{
		{Article: newsapi.Article{Source: newsapi.Source{Name: "BBC"}}},
		{Article: newsapi.Article{Source: newsapi.Source{Name: "BBC"}}},
		{Article: newsapi.Article{}},
		{Article: newsapi.Article{Source: newsapi.Source{Name: "NPR"}}},
		{Article: newsapi.Article{}},
	}}
	counts := GroupBySource(rs)
	if counts["BBC"] != 2 || counts["NPR"] != 1 || counts["Unknown"] != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != rs.Len() {
		t.Errorf("counts sum to %d, want %d", total, rs.Len())
	}
}

func TestGroupBySourceEmpty(t *testing.T) {
	if got := GroupBySource(&session.ResultSet{}); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestTableDefaultsAndOrder(t *testing.T) {
	rs := &session.ResultSet{Articles: []session.LabeledArticle{
		{Article: newsapi.Article{Title: "First", Author: "Ann", URL: "https://x"}, Sentiment: sentiment.Positive},
		{Article: newsapi.Article{}, Sentiment: sentiment.Neutral},
	}}
	rows := Table(rs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Title != "First" || rows[0].Author != "Ann" || rows[0].Link != "https://x" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Title != newsapi.DefaultTitle || rows[1].Author != newsapi.DefaultAuthor || rows[1].Link != newsapi.DefaultLink {
		t.Errorf("row 1 missing defaults: %+v", rows[1])
	}
}

func TestWithSummaries(t *testing.T) {
	rows := []Row{{Title: "a"}, {Title: "b"}}
	out := WithSummaries(rows, map[int]string{1: "short version"})
	if out[0].Summary != "" || out[1].Summary != "short version" {
		t.Errorf("unexpected summaries: %+v", out)
	}
	if rows[1].Summary != "" {
		t.Error("input rows must not be mutated")
	}
}
