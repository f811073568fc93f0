package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emanuele-r/newspaper/internal/aggregate"
	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/sentiment"
	"github.com/emanuele-r/newspaper/internal/speech"
)

var (
	flagReadOut   string
	flagReadCount int
)

var readCmd = &cobra.Command{
	Use:   "read <query>",
	Short: "Read top headlines aloud",
	Long: `Fetch articles for a query and synthesize the top headlines to an MP3
file using the configured text-to-speech voice.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Search using a spoken query",
	Long: `Transcribe a recorded audio file into text and run it as a search
query, printing the labeled result table.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	readCmd.Flags().StringVar(&flagReadOut, "out", "headlines.mp3", "output audio file")
	readCmd.Flags().IntVar(&flagReadCount, "count", 5, "number of headlines to read")
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.SpeechEnabled() {
		return fmt.Errorf("speech is not configured (set speech.api_key or NEWSPAPER_SPEECH_KEY)")
	}

	engine, err := speech.New(cfg.Speech, cfg.SpeechKey())
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	agg := aggregate.New(provider, sentiment.NewLexiconScorer())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	rs, notice := agg.FetchAndLabel(ctx, args[0])
	cancel()
	if notice != "" {
		fmt.Printf("  [warn] %s\n", notice)
	}
	if rs.Len() == 0 {
		return fmt.Errorf("no articles to read for %q", args[0])
	}

	count := flagReadCount
	if count > rs.Len() {
		count = rs.Len()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Top headlines for %s. ", args[0])
	for i := 0; i < count; i++ {
		la := rs.Articles[i]
		fmt.Fprintf(&sb, "Headline %d, from %s: %s. ", i+1, la.SourceName(), la.DisplayTitle())
	}

	ctx, cancel = context.WithTimeout(context.Background(), 2*cfg.Timeout())
	defer cancel()
	audio, err := engine.Synthesize(ctx, sb.String())
	if err != nil {
		return fmt.Errorf("synthesizing headlines: %w", err)
	}

	if err := os.WriteFile(flagReadOut, audio, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagReadOut, err)
	}
	fmt.Printf("Wrote %d headlines to %s.\n", count, flagReadOut)
	return nil
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.SpeechEnabled() {
		return fmt.Errorf("speech is not configured (set speech.api_key or NEWSPAPER_SPEECH_KEY)")
	}

	engine, err := speech.New(cfg.Speech, cfg.SpeechKey())
	if err != nil {
		return err
	}

	audio, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading audio: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout())
	query, err := engine.Transcribe(ctx, audio, filepath.Base(args[0]))
	cancel()
	if err != nil {
		return fmt.Errorf("transcribing: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("nothing recognized in %s", args[0])
	}

	fmt.Printf("Recognized query: %q\n\n", query)
	return runSearch(cmd, []string{query})
}
