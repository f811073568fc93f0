package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/ai"
	"github.com/emanuele-r/newspaper/internal/cache"
	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/session"
	"github.com/emanuele-r/newspaper/internal/view"
)

var (
	flagSearchSource    string
	flagSearchFrom      string
	flagSearchTo        string
	flagSearchSummarize bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news and print labeled results",
	Long: `Fetch articles for a query, label each with a sentiment, and print the
result table without entering the TUI. The search is recorded in history
and cached locally for offline re-display.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchSource, "source", "", "only show articles from this source")
	searchCmd.Flags().StringVar(&flagSearchFrom, "from", "", "only show articles published on/after this date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&flagSearchTo, "to", "", "only show articles published on/before this date (YYYY-MM-DD)")
	searchCmd.Flags().BoolVar(&flagSearchSummarize, "summarize", false, "add AI summaries to the table (needs AI config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	sess := session.New(config.HistoryPath())
	sess.LoadHistory()

	agg := aggregate.New(provider, sentiment.NewLexiconScorer())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	rs, notice := agg.FetchAndLabel(ctx, query)
	if notice != "" {
		fmt.Printf("  [warn] %s\n", notice)
		if db, err := cache.Open(config.CachePath()); err == nil {
			if cached, ok, _ := db.LoadResults(query); ok {
				fmt.Println("  Showing cached results.")
				rs = cached
			}
			db.Close()
		}
	}

	sess.SetCurrent(rs)
	if err := sess.RecordQuery(query); err != nil {
		fmt.Printf("  [warn] history not saved: %v\n", err)
	}

	if notice == "" && rs.Len() > 0 {
		if db, err := cache.Open(config.CachePath()); err == nil {
			db.SaveResults(rs)
			db.Close()
		}
	}

	rs, err = applySearchFilters(rs)
	if err != nil {
		return err
	}

	if rs.Len() == 0 {
		fmt.Println(view.NoticeNoArticles)
		return nil
	}

	rows := aggregate.Table(rs)
	if flagSearchSummarize {
		rows = summarizeRows(cfg, rs, rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	if flagSearchSummarize {
		fmt.Fprintln(w, "#\tSENTIMENT\tTITLE\tAUTHOR\tSUMMARY")
		for i, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, row.Sentiment, clip(row.Title, 60), clip(row.Author, 24), clip(row.Summary, 80))
		}
	} else {
		fmt.Fprintln(w, "#\tSENTIMENT\tTITLE\tAUTHOR\tLINK")
		for i, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, row.Sentiment, clip(row.Title, 60), clip(row.Author, 24), row.Link)
		}
	}
	w.Flush()

	fmt.Printf("\n%d articles · %d positive · %d negative · %d neutral\n",
		rs.Len(), rs.Positive, rs.Negative, rs.Neutral)
	return nil
}

func applySearchFilters(rs *session.ResultSet) (*session.ResultSet, error) {
	if flagSearchSource != "" {
		rs = view.FilterBySource(rs, flagSearchSource)
	}
	if flagSearchFrom == "" && flagSearchTo == "" {
		return rs, nil
	}

	start := time.Time{}
	end := time.Now().Add(24 * time.Hour)
	var err error
	if flagSearchFrom != "" {
		start, err = time.Parse("2006-01-02", flagSearchFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid --from value: %w", err)
		}
	}
	if flagSearchTo != "" {
		end, err = time.Parse("2006-01-02", flagSearchTo)
		if err != nil {
			return nil, fmt.Errorf("invalid --to value: %w", err)
		}
		// Inclusive of the whole end day
		end = end.Add(24*time.Hour - time.Second)
	}
	return view.FilterByDateRange(rs, start, end), nil
}

func summarizeRows(cfg *config.Config, rs *session.ResultSet, rows []aggregate.Row) []aggregate.Row {
	if !cfg.AIEnabled() {
		fmt.Println("  [warn] --summarize needs AI configured")
		return rows
	}
	assistant, err := ai.New(cfg.AI, cfg.AIKey())
	if err != nil {
		fmt.Printf("  [warn] AI disabled: %v\n", err)
		return rows
	}

	summaries := make(map[int]string, rs.Len())
	for i, la := range rs.Articles {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		text, err := assistant.Summarize(ctx, la.DisplayTitle(), la.Content)
		cancel()
		if err != nil {
			fmt.Printf("  [warn] summarizing %q: %v\n", clip(la.DisplayTitle(), 40), err)
			continue
		}
		summaries[i] = text
	}
	return aggregate.WithSummaries(rows, summaries)
}

func clip(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
