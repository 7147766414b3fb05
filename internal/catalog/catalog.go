package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/logger"
)

func log() *slog.Logger {
	return logger.Get()
}

// ErrNoCatalog is returned when every project source failed to load.
var ErrNoCatalog = errors.New("no item data available")

// Project is a named collection of items loaded from one source file.
type Project struct {
	Name        string
	Quest       bool
	Description string
	Items       []Item
}

// Catalog owns the immutable item data (projects plus the display-only
// reference set) and computes derived, state-dependent views on demand.
type Catalog struct {
	fs      filesystem.FileSystem
	dataDir string

	// referenceFile is the reference dataset, relative to the data dir.
	referenceFile string

	projects  []*Project
	reference map[string]Reference
	totals    map[string]*ItemTotal
}

// New creates an empty catalog reading from dataDir.
func New(fs filesystem.FileSystem, dataDir string) *Catalog {
	return &Catalog{
		fs:            fs,
		dataDir:       dataDir,
		referenceFile: "reference.json",
		reference:     make(map[string]Reference),
		totals:        make(map[string]*ItemTotal),
	}
}

// LoadProjects scans the data dir for project manifests and loads each
// project's data file independently. A failing source is logged and left
// out; only when every source fails does the load fail with ErrNoCatalog.
func (c *Catalog) LoadProjects() error {
	manifests, err := scanManifests(c.fs, c.dataDir)
	if err != nil {
		return fmt.Errorf("failed to scan project manifests: %w", err)
	}
	if len(manifests) == 0 {
		return ErrNoCatalog
	}

	projects := make([]*Project, len(manifests))

	// Sources load independently; one failure must not abort the rest.
	var wg sync.WaitGroup
	for i, manifest := range manifests {
		wg.Add(1)
		go func(i int, manifest *Manifest) {
			defer wg.Done()
			project, err := c.loadProject(manifest)
			if err != nil {
				log().Warn("skipping project source", "manifest", manifest.Path, "error", err)
				return
			}
			projects[i] = project
		}(i, manifest)
	}
	wg.Wait()

	c.projects = c.projects[:0]
	for _, p := range projects {
		if p != nil {
			c.projects = append(c.projects, p)
		}
	}

	if len(c.projects) == 0 {
		return ErrNoCatalog
	}

	c.rebuildTotals()
	return nil
}

func (c *Catalog) loadProject(manifest *Manifest) (*Project, error) {
	path := filepath.Join(c.dataDir, manifest.File)
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range items {
		items[i].Project = manifest.Name
		items[i].ID = ItemID(items[i].Name, items[i].Requirement)
	}

	return &Project{
		Name:        manifest.Name,
		Quest:       manifest.Quest,
		Description: manifest.Description,
		Items:       items,
	}, nil
}

// LoadReference loads the display-enrichment dataset. Failure degrades to
// an empty reference set and never blocks the rest of initialization.
func (c *Catalog) LoadReference() {
	path := filepath.Join(c.dataDir, c.referenceFile)

	data, err := c.fs.ReadFile(path)
	if err != nil {
		log().Warn("reference data unavailable, display enrichment disabled", "path", path, "error", err)
		c.reference = make(map[string]Reference)
		return
	}

	var records []Reference
	if err := json.Unmarshal(data, &records); err != nil {
		log().Warn("reference data unreadable, display enrichment disabled", "path", path, "error", err)
		c.reference = make(map[string]Reference)
		return
	}

	c.reference = make(map[string]Reference, len(records))
	for _, r := range records {
		c.reference[r.Name] = r
	}
}

// Refresh recomputes all derived registries. Cheap enough (hundreds of
// items) to run after every completion toggle; a full rebuild avoids the
// drift an incremental patch could accumulate.
func (c *Catalog) Refresh() {
	c.rebuildTotals()
}

// Projects returns the loaded projects in tab order.
func (c *Catalog) Projects() []*Project {
	return append([]*Project(nil), c.projects...)
}

// Project returns the project with the given name.
func (c *Catalog) Project(name string) (*Project, bool) {
	for _, p := range c.projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ReferenceFor returns the display metadata for an item name.
func (c *Catalog) ReferenceFor(name string) (Reference, bool) {
	r, ok := c.reference[name]
	return r, ok
}

// Totals returns a shallow copy of the item total registry.
func (c *Catalog) Totals() map[string]*ItemTotal {
	copied := make(map[string]*ItemTotal, len(c.totals))
	for id, total := range c.totals {
		copied[id] = total
	}
	return copied
}

func (c *Catalog) isQuestProject(name string) bool {
	p, ok := c.Project(name)
	return ok && p.Quest
}
