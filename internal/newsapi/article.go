package newsapi

import "time"

// Defaults substituted for absent article fields. Absence is never an
// error; every accessor below falls back to one of these.
const (
	DefaultTitle  = "No title available"
	DefaultAuthor = "No author available"
	DefaultLink   = "#"
	DefaultSource = "Unknown"
)

// Article is one record from the search API. Every field may be empty.
type Article struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Source      Source `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DisplayTitle returns the title or its documented default.
func (a Article) DisplayTitle() string {
	if a.Title == "" {
		return DefaultTitle
	}
	return a.Title
}

// DisplayAuthor returns the author or its documented default.
func (a Article) DisplayAuthor() string {
	if a.Author == "" {
		return DefaultAuthor
	}
	return a.Author
}

// DisplayLink returns the URL or its documented default.
func (a Article) DisplayLink() string {
	if a.URL == "" {
		return DefaultLink
	}
	return a.URL
}

// SourceName returns the publisher name, "Unknown" when absent.
func (a Article) SourceName() string {
	if a.Source.Name == "" {
		return DefaultSource
	}
	return a.Source.Name
}

// Published parses the publish timestamp. ok is false when the field is
// missing or unparsable; callers must not default such articles into a
// date range.
func (a Article) Published() (time.Time, bool) {
	if a.PublishedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, a.PublishedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
