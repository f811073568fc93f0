package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emanuele-r/newspaper/internal/config"
	"github.com/emanuele-r/newspaper/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New(config.HistoryPath())
		if _, err := sess.LoadHistory(); err != nil {
			return fmt.Errorf("reading history: %w", err)
		}

		queries := sess.History()
		if len(queries) == 0 {
			fmt.Println("No searches yet.")
			return nil
		}
		for i, q := range queries {
			fmt.Printf("%d. %s\n", i+1, q)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New(config.HistoryPath())
		sess.LoadHistory()
		if err := sess.ClearHistory(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}
