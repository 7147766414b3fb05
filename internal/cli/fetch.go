package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobvie/gearlist/internal/config"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/logger"
	"github.com/tobvie/gearlist/internal/remote"
)

// FetchCommand handles the fetch command
type FetchCommand struct {
	fs         filesystem.FileSystem
	configPath *string
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(fs filesystem.FileSystem, configPath *string) *cobra.Command {
	cmd := &FetchCommand{fs: fs, configPath: configPath}

	cobraCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Update the local item dataset",
		Long: `Download the latest item dataset from the configured upstream
repository into the data directory. Skipped when the local dataset is
already at the upstream release version.`,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the fetch command
func (c *FetchCommand) Run(cmd *cobra.Command, args []string) error {
	// The catalog is not needed here, so skip newApp and its load.
	cfg := config.LoadOrDefault(*c.configPath)
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	fetcher := remote.NewFetcher(c.fs, remote.NewAPIClientFromEnv(), cfg.Upstream, cfg.DataDir)

	result, err := fetcher.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if result.Skipped {
		fmt.Fprintf(out, "dataset %s is up to date\n", result.LocalVersion)
		return nil
	}

	fmt.Fprintf(out, "updated dataset to %s (%d files)\n", result.UpstreamVersion, len(result.Files))
	return nil
}
