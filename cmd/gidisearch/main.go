package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gidipin/gidisearch/cmd/commands"
	"github.com/gidipin/gidisearch/internal/cli"
	"github.com/gidipin/gidisearch/pkg/files"
	"github.com/gidipin/gidisearch/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "gidisearch",
	Short: "Terminal-based search over your professional identity catalog",
	Long:  `Gidisearch is a terminal-based tool for searching a local catalog of professional identity items (projects, endorsements, activities). It stores everything as plain text files (YAML and JSON) and provides a TUI for interactive search.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.GidiDir)
			fmt.Fprintf(os.Stderr, "Please run 'gidisearch init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// Launch TUI
		app, err := tui.NewApp()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load the project: %v\n", err)
			os.Exit(1)
		}
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gidisearch project",
	Long:  `Creates the .gidisearch folder structure in the current directory and seeds it with sample catalogs`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing gidisearch project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		if err := files.SeedSampleCatalogs(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to seed sample catalogs: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .gidisearch folder structure")
		fmt.Println("✓ Seeded sample catalogs")
		fmt.Println("\nRun 'gidisearch' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gidisearch",
	Long:  `Display the current version of the gidisearch CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gidisearch version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewHistoryCommand())
	rootCmd.AddCommand(commands.NewListCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
