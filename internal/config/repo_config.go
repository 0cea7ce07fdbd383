package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrRepoConfigNotFound = errors.New("repo config file not found")
	ErrRepoConfigParsing  = errors.New("repo config parsing failed")
)

// RepoConfig represents the optional .review-pilot.yml file a user may keep
// next to their working directory to preselect review behavior.
type RepoConfig struct {
	// Agents selected by default when none are passed on the command line.
	DefaultAgents []string `yaml:"default_agents"`

	// Branch used when none is passed on the command line.
	DefaultBranch string `yaml:"default_branch"`

	// Language override for files whose extension is ambiguous.
	LanguageOverride string `yaml:"language_override"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{
		DefaultAgents: []string{},
		DefaultBranch: "main",
	}
}

// LoadRepoConfig loads and parses the .review-pilot.yml file from a directory.
func LoadRepoConfig(dir string) (*RepoConfig, error) {
	configPath := filepath.Join(dir, ".review-pilot.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRepoConfig(), ErrRepoConfigNotFound
		}
		return nil, fmt.Errorf("failed to read .review-pilot.yml: %w", err)
	}

	cfg := DefaultRepoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepoConfigParsing, err)
	}
	return cfg, nil
}
