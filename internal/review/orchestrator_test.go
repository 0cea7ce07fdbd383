package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/llm"
)

type batchCall struct {
	system string
	prompt string
	opts   llm.GenerateOptions
}

type streamCall struct {
	system string
	prompt string
	opts   llm.GenerateOptions
}

// fakeGenerator answers batch calls from a prompt-substring lookup and
// replays a fixed chunk sequence for streaming calls.
type fakeGenerator struct {
	mu          sync.Mutex
	batchCalls  []batchCall
	streamCalls []streamCall

	// keyed by a substring of the prompt; value is the batch response
	batchResponses map[string]string
	// per-key artificial latency to force out-of-order completion
	batchDelays map[string]time.Duration
	batchErr    error

	streamChunks []string
	streamErr    error
}

func (f *fakeGenerator) Generate(ctx context.Context, system, prompt string, opts llm.GenerateOptions) (string, error) {
	f.mu.Lock()
	f.batchCalls = append(f.batchCalls, batchCall{system, prompt, opts})
	f.mu.Unlock()

	if f.batchErr != nil {
		return "", f.batchErr
	}
	for key, resp := range f.batchResponses {
		if strings.Contains(prompt, key) {
			if d := f.batchDelays[key]; d > 0 {
				select {
				case <-time.After(d):
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			return resp, nil
		}
	}
	return "", errors.New("no response configured for prompt")
}

func (f *fakeGenerator) GenerateStream(ctx context.Context, system, prompt string, opts llm.GenerateOptions, fn func(ctx context.Context, chunk []byte) error) error {
	f.mu.Lock()
	f.streamCalls = append(f.streamCalls, streamCall{system, prompt, opts})
	f.mu.Unlock()

	if f.streamErr != nil {
		return f.streamErr
	}
	for _, chunk := range f.streamChunks {
		if err := fn(ctx, []byte(chunk)); err != nil {
			return err
		}
	}
	return nil
}

func newTestOrchestrator(t *testing.T, gen llm.Generator) *Orchestrator {
	t.Helper()
	pm, err := llm.NewPromptManager()
	require.NoError(t, err)
	return NewOrchestrator(gen, llm.NewBuilder(pm, "default"), slog.New(slog.DiscardHandler))
}

func validRequest() core.ReviewRequest {
	return core.ReviewRequest{
		Language:    "typescript",
		FileContent: "const x = 1;",
		FileContext: core.ContextUtility,
		RepoContext: "Project uses React framework.",
	}
}

func collect(t *testing.T, s *Stream) (string, error) {
	t.Helper()
	var b strings.Builder
	for chunk := range s.Chunks() {
		b.WriteString(chunk)
	}
	return b.String(), s.Err()
}

func TestReviewRejectsInvalidRequestWithoutModelCall(t *testing.T) {
	gen := &fakeGenerator{}
	o := newTestOrchestrator(t, gen)

	req := validRequest()
	req.Language = ""

	_, err := o.Review(context.Background(), req)
	require.ErrorIs(t, err, core.ErrMissingFields)
	assert.Empty(t, gen.batchCalls)
	assert.Empty(t, gen.streamCalls)
}

func TestSingleAgentStreamsInOrder(t *testing.T) {
	gen := &fakeGenerator{streamChunks: []string{"first ", "second ", "third"}}
	o := newTestOrchestrator(t, gen)

	stream, err := o.Review(context.Background(), validRequest())
	require.NoError(t, err)

	text, streamErr := collect(t, stream)
	require.NoError(t, streamErr)
	assert.Equal(t, "first second third", text)

	require.Len(t, gen.streamCalls, 1)
	call := gen.streamCalls[0]
	assert.Equal(t, llm.ReviewerSystemInstruction, call.system)
	assert.InDelta(t, 0.3, call.opts.Temperature, 0.001)
	assert.Equal(t, 2000, call.opts.MaxTokens)
	assert.Contains(t, call.prompt, "expert code reviewer with deep knowledge of typescript")
	assert.Empty(t, gen.batchCalls)
}

func TestMultiAgentPreservesRequestOrder(t *testing.T) {
	// The security agent finishes last; the synthesis prompt must still
	// list it first because the request asked for it first.
	gen := &fakeGenerator{
		batchResponses: map[string]string{
			"### Security:":    "security findings",
			"### Performance:": "performance findings",
		},
		batchDelays: map[string]time.Duration{
			"### Security:": 30 * time.Millisecond,
		},
		streamChunks: []string{"merged report"},
	}
	o := newTestOrchestrator(t, gen)

	req := validRequest()
	req.SelectedAgents = []core.AgentType{core.AgentSecurity, core.AgentPerformance}

	stream, err := o.Review(context.Background(), req)
	require.NoError(t, err)

	text, streamErr := collect(t, stream)
	require.NoError(t, streamErr)
	assert.Equal(t, "merged report", text)

	require.Len(t, gen.batchCalls, 2)
	for _, call := range gen.batchCalls {
		assert.Equal(t, llm.AgentSystemInstruction, call.system)
		assert.InDelta(t, 0.3, call.opts.Temperature, 0.001)
		assert.Equal(t, 1500, call.opts.MaxTokens)
	}

	require.Len(t, gen.streamCalls, 1)
	synthesis := gen.streamCalls[0]
	assert.Equal(t, llm.SynthesisSystemInstruction, synthesis.system)
	assert.InDelta(t, 0.2, synthesis.opts.Temperature, 0.001)
	assert.Equal(t, 3000, synthesis.opts.MaxTokens)
	assert.Contains(t, synthesis.prompt, "## 1. SECURITY REVIEW AGENT")
	assert.Contains(t, synthesis.prompt, "## 2. PERFORMANCE REVIEW AGENT")
	assert.Less(t,
		strings.Index(synthesis.prompt, "security findings"),
		strings.Index(synthesis.prompt, "performance findings"))
}

func TestMultiAgentJoinFailureFailsWholeRequest(t *testing.T) {
	gen := &fakeGenerator{
		batchErr: errors.New("provider exploded"),
	}
	o := newTestOrchestrator(t, gen)

	req := validRequest()
	req.SelectedAgents = []core.AgentType{core.AgentSecurity, core.AgentLogic}

	stream, err := o.Review(context.Background(), req)
	require.NoError(t, err)

	_, streamErr := collect(t, stream)
	require.Error(t, streamErr)
	assert.Empty(t, gen.streamCalls, "synthesis must not run after an agent failure")
}

func TestMultiAgentUnknownAgentFails(t *testing.T) {
	gen := &fakeGenerator{
		batchResponses: map[string]string{"### Security:": "ok"},
	}
	o := newTestOrchestrator(t, gen)

	req := validRequest()
	req.SelectedAgents = []core.AgentType{core.AgentSecurity, core.AgentType("astrology")}

	stream, err := o.Review(context.Background(), req)
	require.NoError(t, err)

	_, streamErr := collect(t, stream)
	assert.Error(t, streamErr)
	assert.Empty(t, gen.streamCalls)
}

func TestStreamErrorSurfacesAsTerminalError(t *testing.T) {
	gen := &fakeGenerator{streamErr: errors.New("mid-stream drop")}
	o := newTestOrchestrator(t, gen)

	stream, err := o.Review(context.Background(), validRequest())
	require.NoError(t, err)

	_, streamErr := collect(t, stream)
	assert.Error(t, streamErr)
}
