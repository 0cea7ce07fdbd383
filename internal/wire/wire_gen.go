// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/deepakkumardewani/review-pilot/internal/app"
	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/llm"
	"github.com/deepakkumardewani/review-pilot/internal/repoinfo"
	"github.com/deepakkumardewani/review-pilot/internal/review"
	"github.com/deepakkumardewani/review-pilot/internal/server"
)

// InitializeApp creates and wires the HTTP server application.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	generatorLLM, err := provideGeneratorLLM(ctx, cfg, slogLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}

	builder := provideBuilder(promptMgr, cfg)
	generator := llm.NewGenerator(generatorLLM, slogLogger)
	orchestrator := review.NewOrchestrator(generator, builder, slogLogger)
	ghClient := provideGitHubClient(ctx, cfg, slogLogger)

	srv := server.NewServer(ctx, cfg, orchestrator, ghClient, slogLogger)
	application := app.NewApp(ctx, cfg, srv, slogLogger)

	return application, func() {}, nil
}

// InitializeReviewKit creates and wires the client-side review pipeline.
func InitializeReviewKit(ctx context.Context) (*ReviewKit, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	generatorLLM, err := provideGeneratorLLM(ctx, cfg, slogLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}

	builder := provideBuilder(promptMgr, cfg)
	generator := llm.NewGenerator(generatorLLM, slogLogger)
	orchestrator := review.NewOrchestrator(generator, builder, slogLogger)
	ghClient := provideGitHubClient(ctx, cfg, slogLogger)

	contentSource := provideContentSource(ghClient)
	metadata := repoinfo.NewMetadataService(contentSource, slogLogger)
	embedder := provideEmbeddingService(cfg, slogLogger)
	state := review.NewState()
	controller := review.NewController(metadata, embedder, orchestrator, state, slogLogger)

	kit := &ReviewKit{
		Cfg:        cfg,
		Logger:     slogLogger,
		GitHub:     ghClient,
		Controller: controller,
	}
	return kit, func() {}, nil
}
