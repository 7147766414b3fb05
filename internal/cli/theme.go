package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	fs         filesystem.FileSystem
	configPath *string
}

// NewThemeCommand creates a new theme command
func NewThemeCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &ThemeCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE:      cmd.Run,
	}

	return cobraCmd
}

// Run executes the theme command
func (c *ThemeCommand) Run(cmd *cobra.Command, args []string) error {
	app := newApp(c.fs, *c.configPath)

	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.store.Theme())
		return nil
	}

	theme := args[0]
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme: %s (must be light or dark)", theme)
	}

	app.store.SetTheme(theme)
	fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", theme)

	return nil
}
