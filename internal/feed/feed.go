// Package feed is the RSS fallback search provider: configured feeds
// are fetched concurrently and filtered locally by keyword. It exists
// so the dashboard still works without a search API key.
package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/newsapi"
)

// Provider implements newsapi.Provider over a set of RSS sources.
type Provider struct {
	parser  *gofeed.Parser
	sources []config.Source
}

func NewProvider(sources []config.Source) *Provider {
	return &Provider{parser: gofeed.NewParser(), sources: sources}
}

// Search fetches every enabled source and keeps items whose title or
// description contains the keyword (case-insensitive). Per-feed failures
// are collected; the search only fails when every feed failed.
func (p *Provider) Search(ctx context.Context, keyword string) ([]newsapi.Article, error) {
	var (
		mu       sync.Mutex
		articles []newsapi.Article
		errs     []error
		wg       sync.WaitGroup
	)

	for _, src := range p.sources {
		wg.Add(1)
		go func(s config.Source) {
			defer wg.Done()
			items, err := p.fetchOne(ctx, s, keyword)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			articles = append(articles, items...)
		}(src)
	}
	wg.Wait()

	if len(articles) == 0 && len(errs) == len(p.sources) && len(errs) > 0 {
		return nil, fmt.Errorf("all %d feeds failed, first error: %w", len(errs), errs[0])
	}
	return articles, nil
}

func (p *Provider) fetchOne(ctx context.Context, source config.Source, keyword string) ([]newsapi.Article, error) {
	feed, err := p.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	needle := strings.ToLower(keyword)
	var out []newsapi.Article
	for _, item := range feed.Items {
		if !matches(item, needle) {
			continue
		}
		out = append(out, toArticle(item, source.Name))
	}
	return out, nil
}

func matches(item *gofeed.Item, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}

func toArticle(item *gofeed.Item, sourceName string) newsapi.Article {
	content := item.Content
	if content == "" {
		content = item.Description
	}
	content = stripHTML(content)

	published := ""
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	return newsapi.Article{
		Title:       item.Title,
		Author:      author,
		URL:         item.Link,
		Description: stripHTML(item.Description),
		Content:     content,
		Source:      newsapi.Source{Name: sourceName},
		PublishedAt: published,
	}
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
