// Package embedding computes an optional semantic vector over a repository
// manifest. Embedding is a best-effort enhancement: every failure degrades
// to a nil vector, never to a user-visible error.
package embedding

import (
	"context"
	"log/slog"

	"github.com/sevigo/goframe/embeddings"
)

// Service computes a repository embedding from manifest content. A nil
// vector means "no semantic enhancement" and is always a valid result.
type Service interface {
	EmbedManifest(ctx context.Context, content string) []float32
}

type embedderService struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// NewService wraps a configured embedder. Pass NewNoopService when no
// embedder provider is available.
func NewService(embedder embeddings.Embedder, logger *slog.Logger) Service {
	return &embedderService{embedder: embedder, logger: logger}
}

func (s *embedderService) EmbedManifest(ctx context.Context, content string) []float32 {
	if content == "" {
		return nil
	}

	vector, err := s.embedder.EmbedQuery(ctx, content)
	if err != nil {
		s.logger.Warn("manifest embedding failed, proceeding without semantic context", "error", err)
		return nil
	}
	return vector
}

type noopService struct{}

// NewNoopService returns a Service that never produces a vector.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) EmbedManifest(context.Context, string) []float32 {
	return nil
}
