package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// ResetCommand handles the reset command
type ResetCommand struct {
	fs         filesystem.FileSystem
	configPath *string

	yes bool
}

// NewResetCommand creates a new reset command
func NewResetCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &ResetCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all checklist progress",
		Long: `Reset completion flags, collapse state and the theme preference.

A backup snapshot of the current state is written to the storage
directory before anything is deleted.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "skip the confirmation prompt")

	return cobraCmd
}

// Run executes the reset command
func (c *ResetCommand) Run(cmd *cobra.Command, args []string) error {
	app := newApp(c.fs, *c.configPath)

	if !c.yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Wipe all checklist progress?").
				Description("A backup snapshot is kept in the storage directory.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation aborted: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing reset")
			return nil
		}
	}

	app.store.Clear()
	fmt.Fprintln(cmd.OutOrStdout(), "checklist progress reset")

	return nil
}
