// Package review contains the review orchestration pipeline: request
// validation, single- and multi-agent model dispatch, and the streamed
// delivery of the resulting report.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/llm"
)

// Sampling configuration per invocation mode. The synthesis pass runs
// cooler than the agents so it rearranges rather than invents.
var (
	singleOptions    = llm.GenerateOptions{Temperature: 0.3, MaxTokens: 2000}
	agentOptions     = llm.GenerateOptions{Temperature: 0.3, MaxTokens: 1500}
	synthesisOptions = llm.GenerateOptions{Temperature: 0.2, MaxTokens: 3000}
)

// Orchestrator turns a validated review request into a single streamed
// report, fanning out to specialized agents when requested.
type Orchestrator struct {
	generator llm.Generator
	builder   *llm.Builder
	logger    *slog.Logger
}

func NewOrchestrator(generator llm.Generator, builder *llm.Builder, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		builder:   builder,
		logger:    logger,
	}
}

// Review validates the request and starts generation. Validation failures
// are returned synchronously and cause no model invocation; generation
// failures surface through the returned stream's Err.
func (o *Orchestrator) Review(ctx context.Context, req core.ReviewRequest) (*Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	stream := newStream(cancel)

	go func() {
		defer cancel()

		var err error
		if req.MultiAgent() {
			err = o.multiAgent(ctx, req, stream)
		} else {
			err = o.singleAgent(ctx, req, stream)
		}
		if err != nil {
			o.logger.Error("review generation failed",
				"language", req.Language,
				"fileContext", req.FileContext,
				"agents", len(req.SelectedAgents),
				"error", err)
		}
		stream.finish(err)
	}()

	return stream, nil
}

func (o *Orchestrator) singleAgent(ctx context.Context, req core.ReviewRequest, stream *Stream) error {
	prompt, err := o.builder.CodeReview(req)
	if err != nil {
		return fmt.Errorf("failed to build review prompt: %w", err)
	}

	return o.generator.GenerateStream(ctx, llm.ReviewerSystemInstruction, prompt, singleOptions,
		func(ctx context.Context, chunk []byte) error {
			return stream.push(ctx, string(chunk))
		})
}

// multiAgent fans out one batch call per selected agent, joins on all of
// them, then streams a synthesis pass over the collected reviews. A single
// agent failure fails the whole request; there is no partial salvage.
func (o *Orchestrator) multiAgent(ctx context.Context, req core.ReviewRequest, stream *Stream) error {
	reviews := make([]core.AgentReview, len(req.SelectedAgents))

	g, gctx := errgroup.WithContext(ctx)
	for i, agent := range req.SelectedAgents {
		g.Go(func() error {
			prompt, err := o.builder.AgentReview(agent, req)
			if err != nil {
				return err
			}

			text, err := o.generator.Generate(gctx, llm.AgentSystemInstruction, prompt, agentOptions)
			if err != nil {
				return fmt.Errorf("agent '%s' review failed: %w", agent, err)
			}

			reviews[i] = core.AgentReview{Type: agent, Review: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	prompt, err := o.builder.Synthesis(reviews)
	if err != nil {
		return fmt.Errorf("failed to build synthesis prompt: %w", err)
	}

	return o.generator.GenerateStream(ctx, llm.SynthesisSystemInstruction, prompt, synthesisOptions,
		func(ctx context.Context, chunk []byte) error {
			return stream.push(ctx, string(chunk))
		})
}
