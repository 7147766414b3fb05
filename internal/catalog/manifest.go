package catalog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// ignoreFile lists manifest files the data dir scan should skip, using
// gitignore pattern syntax.
const ignoreFile = ".gearignore"

// Manifest describes one project source: a markdown file in the data dir
// with YAML frontmatter and a free-form description body.
type Manifest struct {
	// Name is the display name of the project and the partition key for
	// both the catalog and the state store.
	Name string `yaml:"name"`

	// File is the item data file, relative to the data dir.
	File string `yaml:"file"`

	// Quest marks the quest-item source; its non-keepable groups are
	// excluded from grouping and from the combined view.
	Quest bool `yaml:"quest"`

	// Order positions the project's tab; ties break on name.
	Order int `yaml:"order"`

	// Description is the markdown body below the frontmatter.
	Description string `yaml:"-"`

	// Path is where the manifest was read from.
	Path string `yaml:"-"`
}

// scanManifests finds all manifest files in the data dir, honoring an
// optional .gearignore.
func scanManifests(fs filesystem.FileSystem, dataDir string) ([]*Manifest, error) {
	entries, err := fs.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir %s: %w", dataDir, err)
	}

	ignore := loadIgnore(fs, dataDir)

	var manifests []*Manifest
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dataDir, entry.Name())
		if ignore != nil {
			// Relative matches against the pattern set without stat'ing the
			// path, so it works against the filesystem abstraction.
			if match := ignore.Relative(entry.Name(), false); match != nil && match.Ignore() {
				continue
			}
		}

		manifest, err := readManifest(fs, path)
		if err != nil {
			log().Warn("skipping unreadable manifest", "path", path, "error", err)
			continue
		}
		manifests = append(manifests, manifest)
	}

	sort.Slice(manifests, func(i, j int) bool {
		if manifests[i].Order != manifests[j].Order {
			return manifests[i].Order < manifests[j].Order
		}
		return manifests[i].Name < manifests[j].Name
	})

	return manifests, nil
}

func readManifest(fs filesystem.FileSystem, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest Manifest
	body, err := frontmatter.Parse(bytes.NewReader(data), &manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if strings.TrimSpace(manifest.Name) == "" {
		manifest.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	if strings.TrimSpace(manifest.File) == "" {
		return nil, fmt.Errorf("manifest %s does not name a data file", path)
	}

	manifest.Description = strings.TrimSpace(string(body))
	manifest.Path = path

	return &manifest, nil
}

func loadIgnore(fs filesystem.FileSystem, dataDir string) gitignore.GitIgnore {
	ignorePath := filepath.Join(dataDir, ignoreFile)
	if !fs.Exists(ignorePath) {
		return nil
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return nil
	}

	return gitignore.New(bytes.NewReader(data), dataDir, nil)
}
