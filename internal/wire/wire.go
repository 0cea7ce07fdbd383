//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/deepakkumardewani/review-pilot/internal/app"
	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/llm"
	"github.com/deepakkumardewani/review-pilot/internal/repoinfo"
	"github.com/deepakkumardewani/review-pilot/internal/review"
	"github.com/deepakkumardewani/review-pilot/internal/server"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		llm.NewPromptManager,
		llm.NewGenerator,
		review.NewOrchestrator,
		provideBuilder,
		provideGeneratorLLM,
		provideGitHubClient,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}

func InitializeReviewKit(ctx context.Context) (*ReviewKit, func(), error) {
	wire.Build(
		wire.Struct(new(ReviewKit), "*"),
		config.LoadConfig,
		llm.NewPromptManager,
		llm.NewGenerator,
		review.NewOrchestrator,
		review.NewController,
		review.NewState,
		repoinfo.NewMetadataService,
		provideContentSource,
		provideBuilder,
		provideGeneratorLLM,
		provideEmbeddingService,
		provideGitHubClient,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &ReviewKit{}, nil, nil
}
