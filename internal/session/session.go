// Package session holds all mutable per-session state: search history,
// the current result set, the user's quiz score, and bookmarks. One
// Session is constructed at startup and passed down explicitly; nothing
// here is a process-wide global, so serving several sessions means
// constructing several Sessions.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
)

const (
	// HistoryWindow is how many recent queries are ever surfaced.
	HistoryWindow = 5

	// historyCap bounds the persisted file so it cannot grow without
	// limit across a long-lived install.
	historyCap = 100

	// QuizReward is the fixed score increment for a correct answer.
	QuizReward = 10
)

// LabeledArticle pairs an article with its derived sentiment.
type LabeledArticle struct {
	newsapi.Article
	Sentiment sentiment.Label
}

// ResultSet is the labeled article collection of one search. It replaces
// any prior ResultSet wholesale; result sets are never merged.
type ResultSet struct {
	Query     string
	Articles  []LabeledArticle
	Positive  int
	Negative  int
	Neutral   int
	FetchedAt time.Time
}

// Len returns the number of articles.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Articles)
}

// Clone returns a snapshot copy. Bookmarks store clones so later
// searches cannot retroactively alter them.
func (rs *ResultSet) Clone() *ResultSet {
	if rs == nil {
		return nil
	}
	cp := *rs
	cp.Articles = make([]LabeledArticle, len(rs.Articles))
	copy(cp.Articles, rs.Articles)
	return &cp
}

// Session is the per-session state store.
type Session struct {
	historyPath string
	history     []string
	current     *ResultSet
	score       int
	bookmarks   map[string]*ResultSet
	rewarded    map[string]bool
}

// New creates an empty session persisting history at historyPath.
// Call LoadHistory to pick up history from a previous run.
func New(historyPath string) *Session {
	return &Session{
		historyPath: historyPath,
		bookmarks:   make(map[string]*ResultSet),
		rewarded:    make(map[string]bool),
	}
}

// LoadHistory reads the persisted history file into memory and returns
// the display window. A missing file is an empty history, not an error.
func (s *Session) LoadHistory() ([]string, error) {
	data, err := os.ReadFile(s.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.history = nil
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var queries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			queries = append(queries, line)
		}
	}
	s.history = queries
	return s.History(), nil
}

// History returns at most the last HistoryWindow queries, oldest first.
func (s *Session) History() []string {
	if len(s.history) <= HistoryWindow {
		return append([]string(nil), s.history...)
	}
	return append([]string(nil), s.history[len(s.history)-HistoryWindow:]...)
}

// RecordQuery appends q to the history and rewrites the whole file.
// Repeated identical queries each add an entry; only the display window
// is bounded. A write failure is returned for the caller to surface as
// a warning; the in-memory history keeps the new entry regardless.
func (s *Session) RecordQuery(q string) error {
	s.history = append(s.history, q)

	persisted := s.history
	if len(persisted) > historyCap {
		persisted = persisted[len(persisted)-historyCap:]
	}

	if err := os.MkdirAll(filepath.Dir(s.historyPath), 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}
	if err := os.WriteFile(s.historyPath, []byte(strings.Join(persisted, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// ClearHistory truncates the persisted file and clears memory.
func (s *Session) ClearHistory() error {
	s.history = nil
	if err := os.MkdirAll(filepath.Dir(s.historyPath), 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}
	if err := os.WriteFile(s.historyPath, nil, 0o644); err != nil {
		return fmt.Errorf("truncating history: %w", err)
	}
	return nil
}

// SetCurrent replaces the session's result set.
func (s *Session) SetCurrent(rs *ResultSet) {
	s.current = rs
}

// Current returns the session's result set (nil before the first search).
func (s *Session) Current() *ResultSet {
	return s.current
}

// Score returns the user's quiz score.
func (s *Session) Score() int {
	return s.score
}

// Reward adds points for key unless key was already rewarded this
// session. Returns whether the score changed.
func (s *Session) Reward(key string, points int) bool {
	if s.rewarded[key] {
		return false
	}
	s.rewarded[key] = true
	s.score += points
	return true
}

// PutBookmark stores a snapshot under name, overwriting any prior entry.
func (s *Session) PutBookmark(name string, rs *ResultSet) {
	s.bookmarks[name] = rs.Clone()
}

// GetBookmark returns the stored snapshot for name.
func (s *Session) GetBookmark(name string) (*ResultSet, bool) {
	rs, ok := s.bookmarks[name]
	return rs, ok
}

// BookmarkNames returns all bookmark names, sorted.
func (s *Session) BookmarkNames() []string {
	names := make([]string, 0, len(s.bookmarks))
	for name := range s.bookmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
