package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/tui"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "gearlist",
		Short: "Track the items your projects still need",
		Long: `A terminal checklist for game item requirements.

Loads the project item lists from the data directory, tracks which items
you have checked off and shows what is still needed per project and
across all of them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive checklist when no subcommand is
			// given.
			app := newApp(fs, configPath)
			model := tui.NewModel(app.catalog, app.store, app.loadErr)

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to gearlist.yaml")

	rootCmd.AddCommand(NewListCommand(fs, &configPath))
	rootCmd.AddCommand(NewToggleCommand(fs, &configPath))
	rootCmd.AddCommand(NewExportCommand(fs, &configPath))
	rootCmd.AddCommand(NewFetchCommand(fs, &configPath))
	rootCmd.AddCommand(NewResetCommand(fs, &configPath))
	rootCmd.AddCommand(NewThemeCommand(fs, &configPath))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
