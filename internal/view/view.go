// Package view decides which derived views are valid for the current
// session state and mediates bookmarks, filters and the quiz.
package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
)

// Validation and lookup failures are distinct from transport failures:
// they target the user's input and mutate nothing.
var (
	ErrEmptyName        = errors.New("bookmark name must not be empty")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// NoticeNoArticles is shown when a filter or search leaves nothing to
// display. Aggregation over the empty set stays well-defined (0,0,0).
const NoticeNoArticles = "No articles to display."

// Coordinator operates on one session's state.
type Coordinator struct {
	session *session.Session
}

func New(s *session.Session) *Coordinator {
	return &Coordinator{session: s}
}

// AddBookmark snapshots rs under name. An empty (or blank) name is a
// validation error and leaves the collection untouched. An existing
// bookmark of the same name is overwritten.
func (c *Coordinator) AddBookmark(name string, rs *session.ResultSet) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	c.session.PutBookmark(name, rs)
	return nil
}

// SelectBookmark returns the snapshot stored under name.
func (c *Coordinator) SelectBookmark(name string) (*session.ResultSet, error) {
	rs, ok := c.session.GetBookmark(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBookmarkNotFound, name)
	}
	return rs, nil
}

// FilterBySource returns the order-preserving subsequence of rs whose
// articles belong to sourceName ("Unknown" matches articles without a
// source). Counts are recomputed for the subsequence.
func FilterBySource(rs *session.ResultSet, sourceName string) *session.ResultSet {
	out := &session.ResultSet{Query: rs.Query, FetchedAt: rs.FetchedAt}
	for _, la := range rs.Articles {
		if la.SourceName() != sourceName {
			continue
		}
		appendArticle(out, la)
	}
	return out
}

// FilterByDateRange returns articles published within [start, end],
// bounds inclusive. Articles with missing or unparsable timestamps are
// excluded, never defaulted into range.
func FilterByDateRange(rs *session.ResultSet, start, end time.Time) *session.ResultSet {
	out := &session.ResultSet{Query: rs.Query, FetchedAt: rs.FetchedAt}
	for _, la := range rs.Articles {
		published, ok := la.Published()
		if !ok {
			continue
		}
		if published.Before(start) || published.After(end) {
			continue
		}
		appendArticle(out, la)
	}
	return out
}

func appendArticle(rs *session.ResultSet, la session.LabeledArticle) {
	rs.Articles = append(rs.Articles, la)
	switch la.Sentiment {
	case sentiment.Positive:
		rs.Positive++
	case sentiment.Negative:
		rs.Negative++
	default:
		rs.Neutral++
	}
}

// RecordQuizAnswer compares the given answer against the expected one,
// case-insensitively. A correct answer rewards the fixed score exactly
// once per article per session; repeats stay correct but score nothing.
func (c *Coordinator) RecordQuizAnswer(articleIndex int, given, expected string) bool {
	if !strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected)) {
		return false
	}
	key := quizKey(c.session.Current(), articleIndex)
	c.session.Reward(key, session.QuizReward)
	return true
}

func quizKey(rs *session.ResultSet, idx int) string {
	query := ""
	if rs != nil {
		query = rs.Query
	}
	return fmt.Sprintf("%s#%d", query, idx)
}

// Panels reports which derived views are valid to (re)compute for rs.
type Panels struct {
	Charts      bool
	WordCloud   bool
	Topics      bool
	Translation bool
}

// AvailablePanels gates derived views on a non-empty result set. Topic
// and word-cloud panels additionally need article content to work with.
func AvailablePanels(rs *session.ResultSet) Panels {
	if rs.Len() == 0 {
		return Panels{}
	}
	hasContent := false
	for _, la := range rs.Articles {
		if la.Content != "" {
			hasContent = true
			break
		}
	}
	return Panels{
		Charts:      true,
		WordCloud:   hasContent,
		Topics:      hasContent,
		Translation: true,
	}
}
