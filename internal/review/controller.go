package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/embedding"
	"github.com/deepakkumardewani/review-pilot/internal/repoinfo"
	"github.com/deepakkumardewani/review-pilot/internal/suggest"
)

// FileSelection identifies the file under review and the agents to run.
type FileSelection struct {
	Owner          string
	Repo           string
	Branch         string
	Path           string
	Content        string
	SelectedAgents []core.AgentType
}

// Controller drives one review end to end: metadata fetch, context
// inference, optional embedding, orchestration, accumulation, and the
// final suggestion reconciliation. Results land in the shared State.
type Controller struct {
	metadata     *repoinfo.MetadataService
	embedder     embedding.Service
	orchestrator *Orchestrator
	state        *State
	logger       *slog.Logger
}

func NewController(
	metadata *repoinfo.MetadataService,
	embedder embedding.Service,
	orchestrator *Orchestrator,
	state *State,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		metadata:     metadata,
		embedder:     embedder,
		orchestrator: orchestrator,
		state:        state,
		logger:       logger,
	}
}

// State exposes the observable review state for rendering.
func (c *Controller) State() *State {
	return c.state
}

// BuildRequest assembles a ReviewRequest for the selection. Metadata and
// embedding failures degrade to empty context rather than failing.
func (c *Controller) BuildRequest(ctx context.Context, sel FileSelection) core.ReviewRequest {
	md := c.metadata.FetchRepoMetadata(ctx, sel.Owner, sel.Repo, sel.Branch)

	req := core.ReviewRequest{
		Language:       repoinfo.LanguageForFile(sel.Path),
		FileContent:    sel.Content,
		FileContext:    repoinfo.InferFileContext(sel.Path),
		RepoContext:    repoinfo.BuildRepoContext(md),
		SelectedAgents: sel.SelectedAgents,
	}
	if req.RepoContext == "" {
		req.RepoContext = "No repository metadata available."
	}
	if !md.Empty() {
		req.Embedding = c.embedder.EmbedManifest(ctx, md.PackageJSONContent)
	}
	return req
}

// StartReview runs the full pipeline and blocks until the review reaches a
// terminal state. Each streamed fragment is forwarded to onChunk (if set)
// as it arrives. A stale generation, caused by a newer StartReview or a
// Reset, stops consumption without touching the newer review's state.
func (c *Controller) StartReview(ctx context.Context, sel FileSelection, onChunk func(chunk string)) error {
	gen := c.state.Begin()

	req := c.BuildRequest(ctx, sel)

	stream, err := c.orchestrator.Review(ctx, req)
	if err != nil {
		c.state.Fail(gen, err)
		return err
	}

	var full strings.Builder
	for chunk := range stream.Chunks() {
		if !c.state.Append(gen, chunk) {
			stream.Cancel()
			return fmt.Errorf("review superseded")
		}
		full.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	if err := stream.Err(); err != nil {
		c.state.Fail(gen, err)
		return err
	}

	modified := suggest.ApplySuggestions(full.String(), sel.Content)
	c.state.Complete(gen, modified)
	return nil
}
