// Package github provides the repository data source: repositories, branches,
// file trees, and blob content, consumed through a narrow interface.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// Repository is a simplified view of a GitHub repository.
type Repository struct {
	Name          string
	FullName      string
	Description   string
	DefaultBranch string
	Private       bool
}

// TreeEntry is one node of a repository file tree. Type is "blob" for files
// and "tree" for directories.
type TreeEntry struct {
	Path string
	Type string
	Size int
	SHA  string
}

// Client defines the repository data operations the application consumes.
type Client interface {
	ListRepositories(ctx context.Context, user string) ([]Repository, error)
	ListBranches(ctx context.Context, owner, repo string) ([]string, error)
	GetTree(ctx context.Context, owner, repo, ref string) ([]TreeEntry, error)
	GetBlob(ctx context.Context, owner, repo, sha string) (string, error)
	FileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client in the application's Client
// interface. Pass a client built by NewPATClient or an anonymous one.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a Client authenticated with a Personal Access Token.
// An empty token yields an anonymous client, which works for public
// repositories within GitHub's unauthenticated rate limits.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	if token == "" {
		return &gitHubClient{client: github.NewClient(nil), logger: logger}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), logger: logger}
}

// ListRepositories returns the user's repositories, paginated to completion.
func (g *gitHubClient) ListRepositories(ctx context.Context, user string) ([]Repository, error) {
	var all []Repository
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		repos, resp, err := g.client.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			g.logger.Error("failed to list repositories", "user", user, "error", err)
			return nil, err
		}
		for _, r := range repos {
			all = append(all, Repository{
				Name:          r.GetName(),
				FullName:      r.GetFullName(),
				Description:   r.GetDescription(),
				DefaultBranch: r.GetDefaultBranch(),
				Private:       r.GetPrivate(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListBranches returns the repository's branch names.
func (g *gitHubClient) ListBranches(ctx context.Context, owner, repo string) ([]string, error) {
	var all []string
	opts := &github.BranchListOptions{ListOptions: github.ListOptions{PerPage: 100}}

	for {
		branches, resp, err := g.client.Repositories.ListBranches(ctx, owner, repo, opts)
		if err != nil {
			g.logger.Error("failed to list branches", "owner", owner, "repo", repo, "error", err)
			return nil, err
		}
		for _, b := range branches {
			all = append(all, b.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// GetTree returns the full recursive file tree at the given ref.
func (g *gitHubClient) GetTree(ctx context.Context, owner, repo, ref string) ([]TreeEntry, error) {
	tree, _, err := g.client.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		g.logger.Error("failed to get repository tree", "owner", owner, "repo", repo, "ref", ref, "error", err)
		return nil, err
	}

	entries := make([]TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, TreeEntry{
			Path: e.GetPath(),
			Type: e.GetType(),
			Size: e.GetSize(),
			SHA:  e.GetSHA(),
		})
	}
	return entries, nil
}

// GetBlob fetches a blob by SHA and returns its decoded text content.
func (g *gitHubClient) GetBlob(ctx context.Context, owner, repo, sha string) (string, error) {
	blob, _, err := g.client.Git.GetBlob(ctx, owner, repo, sha)
	if err != nil {
		g.logger.Error("failed to get blob", "owner", owner, "repo", repo, "sha", sha, "error", err)
		return "", err
	}

	if blob.GetEncoding() != "base64" {
		return blob.GetContent(), nil
	}
	decoded, err := DecodeBase64Content(blob.GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to decode blob %s: %w", sha, err)
	}
	return decoded, nil
}

// FileContent fetches the decoded content of the file at path and ref.
func (g *gitHubClient) FileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	file, _, _, err := g.client.Repositories.GetContents(ctx, owner, repo, path,
		&github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		g.logger.Error("failed to get file contents", "owner", owner, "repo", repo, "path", path, "ref", ref, "error", err)
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("path %q is not a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode contents of %q: %w", path, err)
	}
	return content, nil
}
