// Package aggregate turns raw search results into a labeled, counted
// result set and its tabular form.
package aggregate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
)

// Aggregator fetches, labels and summarizes one search at a time.
type Aggregator struct {
	provider newsapi.Provider
	scorer   sentiment.Scorer
}

// New wires a search provider and a sentiment scorer together.
func New(provider newsapi.Provider, scorer sentiment.Scorer) *Aggregator {
	return &Aggregator{provider: provider, scorer: scorer}
}

// FetchAndLabel runs the query against the provider and labels every
// article. Provider failure is not fatal: it yields an empty ResultSet
// and a user-visible notice. A scorer failure on a single article labels
// that article Neutral and continues.
func (a *Aggregator) FetchAndLabel(ctx context.Context, query string) (*session.ResultSet, string) {
	rs := &session.ResultSet{Query: query, FetchedAt: time.Now()}

	articles, err := a.provider.Search(ctx, query)
	if err != nil {
		return rs, fmt.Sprintf("Search for %q failed: %v", query, err)
	}

	rs.Articles = make([]session.LabeledArticle, 0, len(articles))
	for _, art := range articles {
		label := a.labelArticle(art)
		switch label {
		case sentiment.Positive:
			rs.Positive++
		case sentiment.Negative:
			rs.Negative++
		default:
			rs.Neutral++
		}
		rs.Articles = append(rs.Articles, session.LabeledArticle{Article: art, Sentiment: label})
	}
	return rs, ""
}

// labelArticle scores one article's content. Missing content scores as
// the empty string, which carries no signal and classifies Neutral.
func (a *Aggregator) labelArticle(art newsapi.Article) (label sentiment.Label) {
	// A panicking scorer must not take the rest of the batch down.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("warn: scorer panicked on %q: %v", art.DisplayTitle(), r)
			label = sentiment.Neutral
		}
	}()

	scores, err := a.scorer.Polarity(art.Content)
	if err != nil {
		log.Printf("warn: scoring %q: %v", art.DisplayTitle(), err)
		return sentiment.Neutral
	}
	return sentiment.LabelFor(scores.Compound)
}

// Counts partitions the result set by label. The three counts always
// sum to rs.Len().
func Counts(rs *session.ResultSet) (positive, negative, neutral int) {
	if rs == nil {
		return 0, 0, 0
	}
	for _, la := range rs.Articles {
		switch la.Sentiment {
		case sentiment.Positive:
			positive++
		case sentiment.Negative:
			negative++
		default:
			neutral++
		}
	}
	return positive, negative, neutral
}

// GroupBySource counts articles per publisher. Articles without a
// source fall under "Unknown"; counts sum to rs.Len().
func GroupBySource(rs *session.ResultSet) map[string]int {
	counts := make(map[string]int)
	if rs == nil {
		return counts
	}
	for _, la := range rs.Articles {
		counts[la.SourceName()]++
	}
	return counts
}

// Row is one line of the flat analytics table.
type Row struct {
	Title     string
	Author    string
	Link      string
	Sentiment sentiment.Label
	Summary   string
}

// Table flattens the result set for display or export. Row order matches
// article order; absent fields carry their documented defaults.
func Table(rs *session.ResultSet) []Row {
	if rs == nil {
		return nil
	}
	rows := make([]Row, 0, len(rs.Articles))
	for _, la := range rs.Articles {
		rows = append(rows, Row{
			Title:     la.DisplayTitle(),
			Author:    la.DisplayAuthor(),
			Link:      la.DisplayLink(),
			Sentiment: la.Sentiment,
		})
	}
	return rows
}

// WithSummaries returns the table with the Summary column filled from
// summaries, which is keyed by article index. Missing entries leave the
// column empty.
func WithSummaries(rows []Row, summaries map[int]string) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	for i := range out {
		if s, ok := summaries[i]; ok {
			out[i].Summary = s
		}
	}
	return out
}
