// Package cache persists the labeled results of recent searches so the
// dashboard can re-display the last search without hitting the network.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
)

type Cache struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &Cache{readDB: readDB, writeDB: writeDB}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			keyword     TEXT PRIMARY KEY,
			searched_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS results (
			keyword      TEXT NOT NULL,
			position     INTEGER NOT NULL,
			title        TEXT NOT NULL DEFAULT '',
			author       TEXT NOT NULL DEFAULT '',
			url          TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			content      TEXT NOT NULL DEFAULT '',
			source       TEXT NOT NULL DEFAULT '',
			published_at TEXT NOT NULL DEFAULT '',
			sentiment    TEXT NOT NULL,
			PRIMARY KEY (keyword, position)
		);
		CREATE INDEX IF NOT EXISTS idx_results_keyword ON results(keyword);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// SaveResults replaces the cached results for rs.Query with rs and
// records it as the most recent search.
func (c *Cache) SaveResults(rs *session.ResultSet) error {
	tx, err := c.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM results WHERE keyword = ?`, rs.Query); err != nil {
		return fmt.Errorf("clearing prior results: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO searches (keyword, searched_at) VALUES (?, ?)
		ON CONFLICT(keyword) DO UPDATE SET searched_at = excluded.searched_at
	`, rs.Query, rs.FetchedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording search: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO results (keyword, position, title, author, url, description, content, source, published_at, sentiment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, la := range rs.Articles {
		_, err := stmt.Exec(rs.Query, i, la.Title, la.Author, la.URL, la.Description,
			la.Content, la.Source.Name, la.PublishedAt, string(la.Sentiment))
		if err != nil {
			return fmt.Errorf("caching result %d for %q: %w", i, rs.Query, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_keyword', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, rs.Query); err != nil {
		return fmt.Errorf("recording last keyword: %w", err)
	}

	return tx.Commit()
}

// LoadResults rebuilds a cached result set for keyword. ok is false when
// the keyword was never cached.
func (c *Cache) LoadResults(keyword string) (*session.ResultSet, bool, error) {
	var searchedAt string
	err := c.readDB.QueryRow(`SELECT searched_at FROM searches WHERE keyword = ?`, keyword).Scan(&searchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("looking up search: %w", err)
	}

	rs := &session.ResultSet{Query: keyword}
	if t, err := time.Parse(time.RFC3339, searchedAt); err == nil {
		rs.FetchedAt = t
	}

	rows, err := c.readDB.Query(`
		SELECT title, author, url, description, content, source, published_at, sentiment
		FROM results WHERE keyword = ? ORDER BY position
	`, keyword)
	if err != nil {
		return nil, false, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var la session.LabeledArticle
		var sourceName, label string
		if err := rows.Scan(&la.Title, &la.Author, &la.URL, &la.Description,
			&la.Content, &sourceName, &la.PublishedAt, &label); err != nil {
			return nil, false, fmt.Errorf("scanning result: %w", err)
		}
		la.Source = newsapi.Source{Name: sourceName}
		la.Sentiment = sentiment.Label(label)
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
	return rs, true, rows.Err()
}

// LastKeyword returns the most recently cached search keyword, if any.
func (c *Cache) LastKeyword() (string, bool) {
	var keyword string
	if err := c.readDB.QueryRow(`SELECT value FROM meta WHERE key = 'last_keyword'`).Scan(&keyword); err != nil {
		return "", false
	}
	return keyword, true
}

// Prune removes cached searches older than retention. Returns how many
// searches were dropped.
func (c *Cache) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).UTC().Format(time.RFC3339)

	if _, err := c.writeDB.Exec(`
		DELETE FROM results WHERE keyword IN (
			SELECT keyword FROM searches WHERE searched_at < ?
		)
	`, cutoff); err != nil {
		return 0, fmt.Errorf("pruning results: %w", err)
	}
	res, err := c.writeDB.Exec(`DELETE FROM searches WHERE searched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning searches: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports cached search count, cached article count, and the
// database file size.
func (c *Cache) Stats(dbPath string) (searches, articles int, size int64, err error) {
	if err = c.readDB.QueryRow(`SELECT COUNT(*) FROM searches`).Scan(&searches); err != nil {
		return 0, 0, 0, fmt.Errorf("counting searches: %w", err)
	}
	if err = c.readDB.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&articles); err != nil {
		return 0, 0, 0, fmt.Errorf("counting results: %w", err)
	}
	if info, statErr := os.Stat(dbPath); statErr == nil {
		size = info.Size()
	}
	return searches, articles, size, nil
}
