package wire

import (
	"log/slog"

	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/review"
)

// ReviewKit bundles the client-side review pipeline for the CLI and the
// terminal UI.
type ReviewKit struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	GitHub     github.Client
	Controller *review.Controller
}
