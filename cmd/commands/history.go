package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gidipin/gidisearch/internal/cli"
	"github.com/gidipin/gidisearch/pkg/files"
	"github.com/gidipin/gidisearch/pkg/search/history"
)

// HistoryResult represents the output structure for the history command
type HistoryResult struct {
	Entries []string `json:"entries" yaml:"entries"`
	Count   int      `json:"count" yaml:"count"`
}

var (
	historyClear  bool
	historyRemove string
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent search queries",
		Long: `Show the recent search queries recorded for this project,
newest first. The list keeps at most ` + fmt.Sprint(history.MaxEntries) + ` entries.

Examples:
  # Show recent searches
  gidisearch history

  # Remove a single entry
  gidisearch history --remove "acme"

  # Clear all history
  gidisearch history --clear`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runHistory,
	}

	cmd.Flags().BoolVar(&historyClear, "clear", false, "Clear all search history")
	cmd.Flags().StringVar(&historyRemove, "remove", "", "Remove a single query from history")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	store := history.NewStore(history.NewFileStorage(files.GidiDir))

	if historyClear {
		confirmed, err := cli.Confirm("Clear all search history?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Aborted")
			return nil
		}
		store.Clear()
		cli.PrintSuccess("Search history cleared")
		return nil
	}

	if historyRemove != "" {
		store.Remove(historyRemove)
		cli.PrintSuccess("Removed %q from search history", historyRemove)
		return nil
	}

	entries := store.Get()
	result := HistoryResult{
		Entries: entries,
		Count:   len(entries),
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		if result.Count == 0 {
			cli.PrintInfo("No search history recorded")
			return nil
		}
		for i, entry := range result.Entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, entry)
		}
		return nil
	}
}
