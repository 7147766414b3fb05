package remote

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/tobvie/gearlist/internal/config"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/logger"
	"golang.org/x/mod/semver"
)

// versionFile records which dataset release the local data dir holds.
const versionFile = "DATASET_VERSION"

// Fetcher syncs the local data dir with the upstream dataset repository.
type Fetcher struct {
	fs       filesystem.FileSystem
	client   Client
	upstream config.UpstreamConfig
	dataDir  string
}

// NewFetcher wires a fetcher for the configured upstream repository.
func NewFetcher(fs filesystem.FileSystem, client Client, upstream config.UpstreamConfig, dataDir string) *Fetcher {
	return &Fetcher{fs: fs, client: client, upstream: upstream, dataDir: dataDir}
}

// Result summarizes what Fetch did.
type Result struct {
	LocalVersion    string
	UpstreamVersion string
	Files           []string
	Skipped         bool
}

// Fetch downloads the upstream dataset when the local copy is behind.
// Versions are compared as semver tags; an unversioned local copy always
// updates.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	if f.upstream.Owner == "" || f.upstream.Repo == "" {
		return nil, fmt.Errorf("no upstream dataset repository configured")
	}

	upstreamVersion, err := f.client.LatestReleaseTag(ctx, f.upstream.Owner, f.upstream.Repo)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upstream version: %w", err)
	}

	local := f.localVersion()
	result := &Result{LocalVersion: local, UpstreamVersion: upstreamVersion}

	if local != "" && !needsUpdate(local, upstreamVersion) {
		result.Skipped = true
		return result, nil
	}

	names, err := f.client.ListDirectory(ctx, f.upstream.Owner, f.upstream.Repo, f.upstream.Path, f.upstream.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to list upstream dataset: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("upstream dataset directory %s is empty", f.upstream.Path)
	}

	if err := f.fs.MkdirAll(f.dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	for _, name := range names {
		if err := f.downloadOne(ctx, name); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, name)
	}

	if err := f.fs.WriteFile(filepath.Join(f.dataDir, versionFile), []byte(upstreamVersion+"\n"), 0644); err != nil {
		logger.Get().Warn("failed to record dataset version", "error", err)
	}

	return result, nil
}

func (f *Fetcher) downloadOne(ctx context.Context, name string) error {
	rc, err := f.client.DownloadFile(ctx, f.upstream.Owner, f.upstream.Repo, path.Join(f.upstream.Path, name), f.upstream.Ref)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := f.fs.WriteFile(filepath.Join(f.dataDir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (f *Fetcher) localVersion() string {
	data, err := f.fs.ReadFile(filepath.Join(f.dataDir, versionFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// needsUpdate compares two release tags. Tags that don't parse as semver
// compare unequal, which forces an update rather than silently skipping.
func needsUpdate(local, upstream string) bool {
	lv, uv := canonical(local), canonical(upstream)
	if !semver.IsValid(lv) || !semver.IsValid(uv) {
		return local != upstream
	}
	return semver.Compare(lv, uv) < 0
}

func canonical(tag string) string {
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	return tag
}
