package embedding

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = f.vector
	}
	return vectors, f.err
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return f.vector, f.err
}

func (f *fakeEmbedder) EmbedQueries(_ context.Context, queries []string) ([][]float32, error) {
	vectors := make([][]float32, len(queries))
	for i := range queries {
		vectors[i] = f.vector
	}
	return vectors, f.err
}

func (f *fakeEmbedder) GetDimension(_ context.Context) (int, error) {
	return len(f.vector), f.err
}

func TestEmbedManifest(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("returns vector on success", func(t *testing.T) {
		svc := NewService(&fakeEmbedder{vector: []float32{0.1, 0.2}}, logger)
		assert.Equal(t, []float32{0.1, 0.2}, svc.EmbedManifest(context.Background(), "{}"))
	})

	t.Run("fails soft on embedder error", func(t *testing.T) {
		svc := NewService(&fakeEmbedder{err: errors.New("provider down")}, logger)
		assert.Nil(t, svc.EmbedManifest(context.Background(), "{}"))
	})

	t.Run("skips empty content", func(t *testing.T) {
		svc := NewService(&fakeEmbedder{vector: []float32{0.1}}, logger)
		assert.Nil(t, svc.EmbedManifest(context.Background(), ""))
	})
}

func TestNoopService(t *testing.T) {
	assert.Nil(t, NewNoopService().EmbedManifest(context.Background(), "{}"))
}
