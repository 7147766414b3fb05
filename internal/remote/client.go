package remote

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client is the slice of the GitHub API the dataset fetcher needs.
type Client interface {
	// LatestReleaseTag returns the tag name of the newest release.
	LatestReleaseTag(ctx context.Context, owner, repo string) (string, error)

	// ListDirectory returns the file names directly inside path at ref.
	ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]string, error)

	// DownloadFile streams the contents of one file at ref.
	DownloadFile(ctx context.Context, owner, repo, path, ref string) (io.ReadCloser, error)
}

// APIClient implements Client against the real GitHub API.
type APIClient struct {
	client *github.Client
}

// NewAPIClient creates a client authenticated with the given token.
func NewAPIClient(token string) *APIClient {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &APIClient{client: github.NewClient(tc)}
}

// NewAPIClientFromEnv creates a client using GEARLIST_GITHUB_TOKEN or
// GITHUB_TOKEN when present, falling back to anonymous access (fine for
// public dataset repositories, just rate-limited harder).
func NewAPIClientFromEnv() *APIClient {
	token := os.Getenv("GEARLIST_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return &APIClient{client: github.NewClient(nil)}
	}
	return NewAPIClient(token)
}

func (c *APIClient) LatestReleaseTag(ctx context.Context, owner, repo string) (string, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to get latest release: %w", err)
	}
	return release.GetTagName(), nil
}

func (c *APIClient) ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	_, entries, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.GetType() == "file" {
			names = append(names, entry.GetName())
		}
	}
	return names, nil
}

func (c *APIClient) DownloadFile(ctx context.Context, owner, repo, path, ref string) (io.ReadCloser, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	rc, _, err := c.client.Repositories.DownloadContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}
	return rc, nil
}
