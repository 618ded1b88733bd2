package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gidipin/gidisearch/internal/cli"
	"github.com/gidipin/gidisearch/pkg/files"
	"github.com/gidipin/gidisearch/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Type  string     `json:"type" yaml:"type"`
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single item in the list
type ListItem struct {
	ID    string   `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Type  string   `json:"type" yaml:"type"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [type]",
		Short: "List catalog items",
		Long: `List the items in the current catalog.

Types:
  projects      - List only projects
  endorsements  - List only endorsements
  activities    - List only activities
  other         - List uncategorized items
  all           - List everything (default)

Examples:
  # List all items
  gidisearch list

  # List only projects
  gidisearch list projects

  # List with JSON output
  gidisearch list -o json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"projects", "endorsements", "activities", "other", "all"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.RequireProject(); err != nil {
				return err
			}
			if len(args) > 0 {
				return cli.ValidateItemType(args[0])
			}
			return nil
		},
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	typeFilter := "all"
	if len(args) > 0 {
		typeFilter = cli.NormalizeItemTypeFilter(args[0])
	}

	items, err := files.LoadAllItems()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	result := ListResult{
		Type:  typeFilter,
		Items: []ListItem{},
	}

	for _, item := range items {
		if typeFilter != "all" && models.NormalizeItemType(item.Type) != typeFilter {
			continue
		}
		result.Items = append(result.Items, ListItem{
			ID:    item.ID,
			Title: item.Title,
			Type:  item.Type,
			Tags:  item.Tags,
		})
	}
	result.Count = len(result.Items)

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No items found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Title", "Type", "Tags")

	for _, item := range result.Items {
		tags := strings.Join(item.Tags, ", ")
		if tags == "" {
			tags = "-"
		}
		table.Row(item.Title, item.Type, tags)
	}

	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d items\n", result.Count)

	return nil
}
