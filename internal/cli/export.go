package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/report"
)

// ExportCommand handles the export command
type ExportCommand struct {
	fs         filesystem.FileSystem
	configPath *string

	output string
}

// NewExportCommand creates a new export command
func NewExportCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &ExportCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a markdown progress report",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "write the report to a file instead of stdout")

	return cobraCmd
}

// Run executes the export command
func (c *ExportCommand) Run(cmd *cobra.Command, args []string) error {
	app := newApp(c.fs, *c.configPath)
	if app.loadErr != nil {
		return app.loadErr
	}

	rendered, err := report.Render(report.Build(app.catalog, app.store))
	if err != nil {
		return err
	}

	if c.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := c.fs.WriteFile(c.output, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", c.output)

	return nil
}
