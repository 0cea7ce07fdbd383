package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sevigo/goframe/embeddings"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/embedding"
	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/llm"
	"github.com/deepakkumardewani/review-pilot/internal/logger"
	"github.com/deepakkumardewani/review-pilot/internal/repoinfo"
)

func provideGeneratorLLM(ctx context.Context, cfg *config.Config, log *slog.Logger) (llms.Model, error) {
	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return gemini.New(ctx, gemini.WithModel(cfg.AI.GeneratorModel), gemini.WithAPIKey(cfg.AI.GeminiAPIKey))
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.AI.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient()),
			ollama.WithModel(cfg.AI.GeneratorModel),
			ollama.WithLogger(log),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.AI.Provider)
	}
}

// provideEmbeddingService never fails: embedding is a best-effort
// enhancement, so a misconfigured embedder degrades to the noop service.
func provideEmbeddingService(cfg *config.Config, log *slog.Logger) embedding.Service {
	embedderLLM, err := ollama.New(
		ollama.WithServerURL(cfg.AI.OllamaHost),
		ollama.WithModel(cfg.AI.EmbedderModel),
		ollama.WithHTTPClient(newOllamaHTTPClient()),
		ollama.WithLogger(log),
	)
	if err != nil {
		log.Warn("embedder unavailable, reviews proceed without semantic context", "error", err)
		return embedding.NewNoopService()
	}

	embedder, err := embeddings.NewEmbedder(embedderLLM)
	if err != nil {
		log.Warn("embedder unavailable, reviews proceed without semantic context", "error", err)
		return embedding.NewNoopService()
	}
	return embedding.NewService(embedder, log)
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, log *slog.Logger) github.Client {
	return github.NewPATClient(ctx, cfg.GitHub.Token, log)
}

func provideContentSource(gh github.Client) repoinfo.ContentSource {
	return gh
}

func provideBuilder(pm *llm.PromptManager, cfg *config.Config) *llm.Builder {
	return llm.NewBuilder(pm, cfg.AI.Provider)
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, _ := os.OpenFile("review-pilot.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stdout
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

// newOllamaHTTPClient creates an HTTP client with generous timeouts; local
// model servers can take minutes on large prompts.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 15 * time.Minute,
	}
}
