package cli

import (
	"sync"

	"github.com/tobvie/gearlist/internal/catalog"
	"github.com/tobvie/gearlist/internal/config"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/logger"
	"github.com/tobvie/gearlist/internal/state"
	"github.com/tobvie/gearlist/internal/storage"
)

// app bundles the wired collaborators every command needs: one explicitly
// owned state store instance and one catalog, both handed to whoever needs
// them instead of living in globals.
type app struct {
	fs      filesystem.FileSystem
	cfg     *config.Config
	store   *state.Store
	catalog *catalog.Catalog

	// loadErr is the non-fatal catalog load failure, surfaced in the UI.
	loadErr error
}

// newApp loads config, state and catalog. Catalog load failures are kept
// on the app rather than returned; every command stays usable with a
// degraded or empty catalog.
func newApp(fs filesystem.FileSystem, configPath string) *app {
	cfg := config.LoadOrDefault(configPath)
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	backend := storage.NewFileBackend(fs, cfg.StorageDir)
	store := state.NewStore(backend, cfg.Theme)
	store.Load()

	c := catalog.New(fs, cfg.DataDir)

	// Reference data loads independently of the project files; neither
	// waits on or blocks the other.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.LoadReference()
	}()
	loadErr := c.LoadProjects()
	wg.Wait()

	return &app{
		fs:      fs,
		cfg:     cfg,
		store:   store,
		catalog: c,
		loadErr: loadErr,
	}
}
