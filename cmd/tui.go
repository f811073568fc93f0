package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/ai"
	"github.com/emanuele-r/newspaper/internal/cache"
	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/feed"
	"github.com/emanuele-r/newspaper/internal/newsapi"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
	"github.com/emanuele-r/newspaper/internal/tui"
	"github.com/emanuele-r/newspaper/internal/view"
)

// newProvider picks the article source: the HTTP search API when a key
// is configured, otherwise the configured RSS feeds.
func newProvider(cfg *config.Config) (newsapi.Provider, error) {
	if key := cfg.APIKey(); key != "" {
		return newsapi.NewClient(cfg.API.BaseURL, key, cfg.PageSize(), cfg.Timeout()), nil
	}
	sources := cfg.EnabledSources()
	if len(sources) == 0 {
		return nil, fmt.Errorf("no API key configured and no feed sources enabled")
	}
	return feed.NewProvider(sources), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	db, err := cache.Open(config.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	// Auto-prune expired searches on startup
	db.Prune(cfg.RetentionDuration())

	sess := session.New(config.HistoryPath())
	if _, err := sess.LoadHistory(); err != nil {
		fmt.Printf("  [warn] reading history: %v\n", err)
	}

	var assistant ai.Assistant
	if cfg.AIEnabled() {
		assistant, err = ai.New(cfg.AI, cfg.AIKey())
		if err != nil {
			fmt.Printf("  [warn] AI disabled: %v\n", err)
		}
	}

	var initial string
	if len(args) > 0 {
		initial = args[0]
	}

	return tui.Run(tui.RunOpts{
		Cfg:          cfg,
		Session:      sess,
		Coordinator:  view.New(sess),
		Aggregator:   aggregate.New(provider, sentiment.NewLexiconScorer()),
		DB:           db,
		Assistant:    assistant,
		Version:      version,
		InitialQuery: initial,
	})
}

func parseSince(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}
