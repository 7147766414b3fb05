package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/catalog"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// ListCommand handles the list command
type ListCommand struct {
	fs         filesystem.FileSystem
	configPath *string

	all bool
}

// NewListCommand creates a new list command
func NewListCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &ListCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:   "list [project]",
		Short: "Print remaining items",
		Long:  `Print the remaining items per project, or the combined cross-project totals with --all.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.all, "all", false, "show combined totals across all projects")

	return cobraCmd
}

// Run executes the list command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
	app := newApp(c.fs, *c.configPath)
	if app.loadErr != nil {
		return app.loadErr
	}

	out := cmd.OutOrStdout()

	if c.all {
		for _, summary := range app.catalog.RemainingAcrossAllProjects(app.store) {
			if summary.RemainingQuantity == 0 {
				continue
			}
			fmt.Fprintf(out, "%4d  %s\n", summary.RemainingQuantity, summary.Name)
		}
		return nil
	}

	for _, project := range app.catalog.Projects() {
		if len(args) == 1 && project.Name != args[0] {
			continue
		}

		var items []catalog.Item
		for _, group := range app.catalog.GroupByRequirement(project.Items, project.Name) {
			items = append(items, group.Items...)
		}
		done := catalog.CompletedCount(project.Name, items, app.store)

		fmt.Fprintf(out, "%s  %d/%d (%d%%)\n", project.Name, done, len(items), catalog.Percent(done, len(items)))

		for _, group := range app.catalog.GroupByRequirement(project.Items, project.Name) {
			for _, item := range group.Items {
				if app.store.ItemCompleted(project.Name, item.ID) {
					continue
				}
				fmt.Fprintf(out, "  %s", item.Name)
				if qty := item.Quantity.Int(); qty > 1 {
					fmt.Fprintf(out, " x%d", qty)
				}
				if group.Name != "" {
					fmt.Fprintf(out, "  (%s)", group.Name)
				}
				fmt.Fprintln(out)
			}
		}
	}

	return nil
}
