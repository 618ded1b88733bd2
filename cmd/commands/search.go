package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gidipin/gidisearch/internal/cli"
	"github.com/gidipin/gidisearch/pkg/files"
	"github.com/gidipin/gidisearch/pkg/search"
	"github.com/gidipin/gidisearch/pkg/search/history"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Type        string   `json:"type" yaml:"type"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

var (
	searchLimit     int
	searchThreshold float64
	searchNoHistory bool
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog",
		Long: `Search your catalog of projects, endorsements and activities.

Matching is case-insensitive: literal hits in the title rank highest,
hits in descriptions or tags rank next, and fuzzy subsequence matches
break ties.

Examples:
  # Find items mentioning acme
  gidisearch search acme

  # Return more results
  gidisearch search acme --limit 25

  # Machine-readable output
  gidisearch search acme -o json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runSearch,
	}

	cmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of results (default from settings)")
	cmd.Flags().Float64VarP(&searchThreshold, "threshold", "t", 0, "Minimum score cutoff, 0-1 (default from settings)")
	cmd.Flags().BoolVar(&searchNoHistory, "no-history", false, "Do not record this query in search history")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	items, err := files.LoadAllItems()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	opts := search.Options{
		Threshold: settings.Search.Threshold,
		Limit:     settings.Search.Limit,
	}
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if searchThreshold > 0 {
		opts.Threshold = searchThreshold
	}

	results := search.Rank(items, query, opts)

	if settings.Search.SaveHistory && !searchNoHistory {
		store := history.NewStore(history.NewFileStorage(files.GidiDir))
		store.Add(query)
	}

	// Get output format
	outputFormat, _ := cmd.Flags().GetString("output")

	searchResult := SearchResultOutput{
		Query:   query,
		Count:   len(results),
		Results: []SearchItemOutput{},
	}

	for _, item := range results {
		searchResult.Results = append(searchResult.Results, SearchItemOutput{
			ID:          item.ID,
			Title:       item.Title,
			Type:        item.Type,
			Tags:        item.Tags,
			Description: item.Description,
		})
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, searchResult)
	default:
		return outputSearchText(cmd, searchResult)
	}
}

func outputSearchText(cmd *cobra.Command, result SearchResultOutput) error {
	if result.Count == 0 {
		cli.PrintInfo("No results found for query: %s", result.Query)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nSearch Results for: %s\n", result.Query)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 80))

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Title", "Type", "Tags", "Description")

	for _, item := range result.Results {
		tags := strings.Join(item.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		table.Row(item.Title, item.Type, tags, cli.TruncateString(item.Description, 40))
	}

	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d results\n", result.Count)

	return nil
}
