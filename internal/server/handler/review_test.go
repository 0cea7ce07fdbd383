package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakkumardewani/review-pilot/internal/llm"
	"github.com/deepakkumardewani/review-pilot/internal/review"
)

type stubGenerator struct {
	mu           sync.Mutex
	batchText    string
	batchErr     error
	streamChunks []string
	streamErr    error
	batchCalls   int
	streamCalls  int
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string, _ llm.GenerateOptions) (string, error) {
	s.mu.Lock()
	s.batchCalls++
	s.mu.Unlock()
	return s.batchText, s.batchErr
}

func (s *stubGenerator) GenerateStream(ctx context.Context, _, _ string, _ llm.GenerateOptions, fn func(ctx context.Context, chunk []byte) error) error {
	s.streamCalls++
	if s.streamErr != nil {
		return s.streamErr
	}
	for _, chunk := range s.streamChunks {
		if err := fn(ctx, []byte(chunk)); err != nil {
			return err
		}
	}
	return nil
}

func newReviewHandler(t *testing.T, gen llm.Generator) *ReviewHandler {
	t.Helper()
	pm, err := llm.NewPromptManager()
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)
	orchestrator := review.NewOrchestrator(gen, llm.NewBuilder(pm, "default"), logger)
	return NewReviewHandler(orchestrator, logger)
}

const validBody = `{
	"language": "typescript",
	"fileContent": "const x = 1;",
	"fileContext": "utility",
	"repoContext": "Project uses React framework."
}`

func postReview(h *ReviewHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestReviewHandlerStreamsReport(t *testing.T) {
	gen := &stubGenerator{streamChunks: []string{"## Review\n", "Looks good."}}
	h := newReviewHandler(t, gen)

	rec := postReview(h, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "## Review\nLooks good.", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestReviewHandlerMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing language", `{"fileContent":"x","fileContext":"utility","repoContext":"ctx"}`},
		{"missing fileContent", `{"language":"go","fileContext":"utility","repoContext":"ctx"}`},
		{"missing fileContext", `{"language":"go","fileContent":"x","repoContext":"ctx"}`},
		{"missing repoContext", `{"language":"go","fileContent":"x","fileContext":"utility"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{}
			h := newReviewHandler(t, gen)

			rec := postReview(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Required fields are missing"}`, rec.Body.String())
			assert.Zero(t, gen.batchCalls, "validation failures must not invoke the model")
			assert.Zero(t, gen.streamCalls)
		})
	}
}

func TestReviewHandlerMalformedJSON(t *testing.T) {
	h := newReviewHandler(t, &stubGenerator{})

	rec := postReview(h, "{not json")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate review"}`, rec.Body.String())
}

func TestReviewHandlerAgentFailure(t *testing.T) {
	gen := &stubGenerator{batchErr: errors.New("provider down")}
	h := newReviewHandler(t, gen)

	body := `{
		"language": "typescript",
		"fileContent": "const x = 1;",
		"fileContext": "utility",
		"repoContext": "ctx",
		"selectedAgents": ["security", "logic"]
	}`
	rec := postReview(h, body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate review"}`, rec.Body.String())
	assert.Zero(t, gen.streamCalls, "synthesis must not run after an agent failure")
}

func TestReviewHandlerMultiAgent(t *testing.T) {
	gen := &stubGenerator{
		batchText:    "agent findings",
		streamChunks: []string{"synthesized report"},
	}
	h := newReviewHandler(t, gen)

	body := `{
		"language": "typescript",
		"fileContent": "const x = 1;",
		"fileContext": "utility",
		"repoContext": "ctx",
		"selectedAgents": ["security", "performance", "maintainability"]
	}`
	rec := postReview(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "synthesized report", rec.Body.String())
	assert.Equal(t, 3, gen.batchCalls)
	assert.Equal(t, 1, gen.streamCalls)
}
