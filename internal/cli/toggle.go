package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	fs         filesystem.FileSystem
	configPath *string
}

// NewToggleCommand creates a new toggle command
func NewToggleCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &ToggleCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:   "toggle <project> <item-id>",
		Short: "Flip an item's completion flag",
		Long: `Flip the completion flag of one item in one project.

The item id is the slug shown by the export, e.g. "battery-cell-station-x".`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the toggle command
func (c *ToggleCommand) Run(cmd *cobra.Command, args []string) error {
	app := newApp(c.fs, *c.configPath)

	project, itemID := args[0], args[1]
	if _, ok := app.catalog.Project(project); !ok {
		return fmt.Errorf("unknown project: %s", project)
	}

	done := app.store.ToggleItem(project, itemID)
	app.catalog.Refresh()

	if done {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %s in %s\n", itemID, project)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "unchecked %s in %s\n", itemID, project)
	}

	return nil
}
