package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	messages []schema.MessageContent
	opts     llms.CallOptions
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []schema.MessageContent, options ...llms.CallOption) (*schema.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.opts.StreamingFunc != nil {
		if err := f.opts.StreamingFunc(ctx, []byte(f.response)); err != nil {
			return nil, err
		}
	}
	return &schema.ContentResponse{
		Choices: []*schema.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return f.response, f.err
}

func TestGeneratorComposesSystemAndHumanMessages(t *testing.T) {
	model := &fakeModel{response: "looks good"}
	gen := NewGenerator(model, slog.New(slog.DiscardHandler))

	out, err := gen.Generate(context.Background(), "be thorough", "review this", GenerateOptions{Temperature: 0.3, MaxTokens: 2000})
	require.NoError(t, err)
	assert.Equal(t, "looks good", out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)
	assert.InDelta(t, 0.3, model.opts.Temperature, 0.0001)
	assert.Equal(t, 2000, model.opts.MaxTokens)
}

func TestGeneratorStreamDeliversChunks(t *testing.T) {
	model := &fakeModel{response: "chunked output"}
	gen := NewGenerator(model, slog.New(slog.DiscardHandler))

	var got []string
	err := gen.GenerateStream(context.Background(), "be thorough", "review this", GenerateOptions{Temperature: 0.2, MaxTokens: 3000},
		func(_ context.Context, chunk []byte) error {
			got = append(got, string(chunk))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"chunked output"}, got)

	require.Len(t, model.messages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)
}

func TestGeneratorPropagatesModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("backend unavailable")}
	gen := NewGenerator(model, slog.New(slog.DiscardHandler))

	_, err := gen.Generate(context.Background(), "sys", "prompt", GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")
}
