// Package config loads and validates the application's configuration from
// environment variables and an optional .env file.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/deepakkumardewani/review-pilot/internal/logger"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AIConfig holds model-invocation settings. Provider selects the backend for
// the generator model; the embedder always runs against Ollama and is
// optional (reviews degrade gracefully without it).
type AIConfig struct {
	Provider       string
	GeminiAPIKey   string
	OllamaHost     string
	GeneratorModel string
	EmbedderModel  string
}

// GitHubConfig holds repository data source settings. Token is optional;
// without it the client uses anonymous API access with its lower rate limits.
type GitHubConfig struct {
	Token string
}

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	GitHub  GitHubConfig
	Logging logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates provider-specific requirements.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	viper.SetDefault("EMBEDDER_MODEL_NAME", "nomic-embed-text")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("failed to read .env file, continuing with environment only", "error", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		AI: AIConfig{
			Provider:       viper.GetString("LLM_PROVIDER"),
			GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
			OllamaHost:     viper.GetString("OLLAMA_HOST"),
			GeneratorModel: viper.GetString("GENERATOR_MODEL_NAME"),
			EmbedderModel:  viper.GetString("EMBEDDER_MODEL_NAME"),
		},
		GitHub: GitHubConfig{
			Token: viper.GetString("GITHUB_TOKEN"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
	}

	// GENERATOR_MODEL_NAME defaults target the Ollama provider. Gemini reads
	// its own key and otherwise falls back to a sensible Gemini model.
	if cfg.AI.Provider == "gemini" {
		if geminiModel := viper.GetString("GEMINI_GENERATOR_MODEL_NAME"); geminiModel != "" {
			cfg.AI.GeneratorModel = geminiModel
		} else {
			cfg.AI.GeneratorModel = "gemini-2.5-flash"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider-specific requirements.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
		}
	case "ollama":
		if c.AI.OllamaHost == "" {
			return fmt.Errorf("OLLAMA_HOST must be set for the ollama provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.AI.Provider)
	}
	return nil
}
