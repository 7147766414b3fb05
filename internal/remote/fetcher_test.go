package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobvie/gearlist/internal/config"
	"github.com/tobvie/gearlist/internal/filesystem"
)

// mockClient serves a fixed release tag and file set.
type mockClient struct {
	tag   string
	files map[string][]byte
}

func (m *mockClient) LatestReleaseTag(ctx context.Context, owner, repo string) (string, error) {
	if m.tag == "" {
		return "", fmt.Errorf("no releases")
	}
	return m.tag, nil
}

func (m *mockClient) ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]string, error) {
	var names []string
	for name := range m.files {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockClient) DownloadFile(ctx context.Context, owner, repo, path, ref string) (io.ReadCloser, error) {
	for name, data := range m.files {
		if path == "data/"+name {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	}
	return nil, fmt.Errorf("no such file: %s", path)
}

func testUpstream() config.UpstreamConfig {
	return config.UpstreamConfig{Owner: "tobvie", Repo: "gearlist-data", Ref: "main", Path: "data"}
}

func TestFetcher_DownloadsDataset(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	client := &mockClient{
		tag: "v1.2.0",
		files: map[string][]byte{
			"hideout.md":   []byte("---\nname: Hideout\nfile: hideout.json\n---\n"),
			"hideout.json": []byte("[]"),
		},
	}

	fetcher := NewFetcher(fs, client, testUpstream(), "/data")

	result, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, "v1.2.0", result.UpstreamVersion)
	assert.Len(t, result.Files, 2)

	assert.True(t, fs.Exists("/data/hideout.json"))

	version, err := fs.ReadFile("/data/DATASET_VERSION")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0\n", string(version))
}

func TestFetcher_SkipsWhenCurrent(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/data/DATASET_VERSION", []byte("v1.2.0\n"))

	client := &mockClient{tag: "v1.2.0", files: map[string][]byte{"hideout.json": []byte("[]")}}
	fetcher := NewFetcher(fs, client, testUpstream(), "/data")

	result, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, fs.Exists("/data/hideout.json"))
}

func TestFetcher_UpdatesWhenBehind(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/data/DATASET_VERSION", []byte("v1.1.0\n"))

	client := &mockClient{tag: "v1.2.0", files: map[string][]byte{"hideout.json": []byte("[]")}}
	fetcher := NewFetcher(fs, client, testUpstream(), "/data")

	result, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.True(t, fs.Exists("/data/hideout.json"))
}

func TestFetcher_NoUpstreamConfigured(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fetcher := NewFetcher(fs, &mockClient{tag: "v1.0.0"}, config.UpstreamConfig{}, "/data")

	_, err := fetcher.Fetch(context.Background())
	assert.Error(t, err)
}

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		upstream string
		want     bool
	}{
		{name: "behind", local: "v1.0.0", upstream: "v1.1.0", want: true},
		{name: "current", local: "v1.1.0", upstream: "v1.1.0", want: false},
		{name: "ahead stays put", local: "v2.0.0", upstream: "v1.9.0", want: false},
		{name: "missing v prefix still compares", local: "1.0.0", upstream: "v1.1.0", want: true},
		{name: "non-semver tags compare by equality", local: "weekly-3", upstream: "weekly-4", want: true},
		{name: "equal non-semver tags skip", local: "weekly-4", upstream: "weekly-4", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, needsUpdate(tt.local, tt.upstream))
		})
	}
}
