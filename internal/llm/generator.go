package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"
)

// GenerateOptions carries the per-call sampling configuration.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// Generator is the narrow model-invocation contract the orchestrator
// depends on. Batch calls return the completed text; streaming calls
// deliver chunks through fn as they arrive.
type Generator interface {
	Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error)
	GenerateStream(ctx context.Context, system, prompt string, opts GenerateOptions, fn func(ctx context.Context, chunk []byte) error) error
}

type modelGenerator struct {
	llm    llms.Model
	logger *slog.Logger
}

// NewGenerator wraps a configured model behind the Generator contract.
func NewGenerator(llm llms.Model, logger *slog.Logger) Generator {
	return &modelGenerator{llm: llm, logger: logger}
}

func (g *modelGenerator) Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error) {
	resp, err := g.llm.GenerateContent(ctx, messagesFor(system, prompt),
		llms.WithTemperature(opts.Temperature),
		llms.WithMaxTokens(opts.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("content generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func (g *modelGenerator) GenerateStream(ctx context.Context, system, prompt string, opts GenerateOptions, fn func(ctx context.Context, chunk []byte) error) error {
	_, err := g.llm.GenerateContent(ctx, messagesFor(system, prompt),
		llms.WithTemperature(opts.Temperature),
		llms.WithMaxTokens(opts.MaxTokens),
		llms.WithStreamingFunc(fn),
	)
	if err != nil {
		return fmt.Errorf("streaming generation failed: %w", err)
	}
	return nil
}

func messagesFor(system, prompt string) []schema.MessageContent {
	return []schema.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}
}
