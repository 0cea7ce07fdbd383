package repoinfo

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

// ContentSource provides the raw text of a file at a given ref. Satisfied by
// the GitHub client; narrowed here so metadata fetching is testable without
// network access.
type ContentSource interface {
	FileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
}

// MetadataService reads a repository's package.json and derives RepoMetadata.
type MetadataService struct {
	source ContentSource
	logger *slog.Logger
}

// NewMetadataService creates a metadata service backed by the given source.
func NewMetadataService(source ContentSource, logger *slog.Logger) *MetadataService {
	return &MetadataService{source: source, logger: logger}
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// FetchRepoMetadata reads package.json at the given ref and derives framework
// and dependency metadata. Every failure path returns empty metadata rather
// than an error: missing manifest, fetch failure, or unparseable JSON all
// degrade to a review without enhanced context.
func (s *MetadataService) FetchRepoMetadata(ctx context.Context, owner, repo, branch string) core.RepoMetadata {
	content, err := s.source.FileContent(ctx, owner, repo, "package.json", branch)
	if err != nil {
		s.logger.Warn("failed to fetch package.json, proceeding without repo metadata",
			"owner", owner, "repo", repo, "branch", branch, "error", err)
		return core.RepoMetadata{}
	}

	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		s.logger.Warn("invalid package.json, proceeding without repo metadata",
			"owner", owner, "repo", repo, "error", err)
		return core.RepoMetadata{}
	}

	return core.RepoMetadata{
		Framework:          DetectFramework(pkg.Dependencies, pkg.DevDependencies),
		Dependencies:       pkg.Dependencies,
		DevDependencies:    pkg.DevDependencies,
		PackageJSONContent: content,
	}
}
