package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepakkumardewani/review-pilot/internal/config"
	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/review"
	"github.com/deepakkumardewani/review-pilot/internal/wire"
)

var (
	verbose      bool
	agentNames   []string
	showModified bool
	renderPretty bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file-url]",
	Short: "Run an AI code review for a file in a GitHub repository",
	Long: `Run an AI code review for a file in a GitHub repository.

The review command fetches the file content, infers its role from the
repository's metadata, and streams a model-generated review. With --agents,
specialized agents review the file in parallel and their findings are
synthesized into one prioritized report.

Examples:
  pilot-cli review https://github.com/owner/repo/blob/main/src/index.ts
  pilot-cli review --agents security,performance https://github.com/owner/repo/blob/main/src/api/users.ts`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	reviewCmd.Flags().StringSliceVarP(&agentNames, "agents", "a", nil, "Specialized agents to run (security, performance, codeStyle, logic, maintainability)")
	reviewCmd.Flags().BoolVar(&showModified, "show-modified", false, "Print the file with suggestions applied after the review")
	reviewCmd.Flags().BoolVar(&renderPretty, "render", false, "Render the finished review as styled terminal markdown instead of streaming raw text")
	rootCmd.AddCommand(reviewCmd)
}

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{
		stepNum:    0,
		totalSteps: totalSteps,
		verbose:    verbose,
	}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\n🔧 Step %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   ✓ Done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   └── %s\n", d)
		}
	}
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	fileURL := args[0]

	timer := newStepTimer(3, verbose)
	overallStart := time.Now()

	titleColor.Println("🚀 Review Pilot - File Review")
	dimColor.Printf("   Target: %s\n\n", fileURL)

	// 1. Initialize services
	timer.step("Initializing services")
	kit, cleanup, err := wire.InitializeReviewKit(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w\n\nTip: Check that your .env exists and is valid", err)
	}
	defer cleanup()
	timer.done()

	// 2. Fetch the file
	timer.step("Fetching file content")
	owner, repo, ref, path, err := github.ParseBlobURL(fileURL)
	if err != nil {
		return err
	}

	content, err := kit.GitHub.FileContent(ctx, owner, repo, path, ref)
	if err != nil {
		return fmt.Errorf("failed to fetch file content: %w", err)
	}
	timer.done(fmt.Sprintf("%s@%s, %d bytes", path, ref, len(content)))

	agents, err := resolveAgents(agentNames)
	if err != nil {
		return err
	}

	// 3. Generate the review
	if len(agents) > 0 {
		timer.step(fmt.Sprintf("Generating review with %d agents", len(agents)))
	} else {
		timer.step("Generating review")
	}

	sel := review.FileSelection{
		Owner:          owner,
		Repo:           repo,
		Branch:         ref,
		Path:           path,
		Content:        content,
		SelectedAgents: agents,
	}

	onChunk := func(chunk string) {
		if !renderPretty {
			fmt.Print(chunk)
		}
	}
	if !renderPretty {
		fmt.Println()
	}

	if err := kit.Controller.StartReview(ctx, sel, onChunk); err != nil {
		errorColor.Printf("\n✗ Review failed: %v\n", err)
		return err
	}
	if !renderPretty {
		fmt.Println()
	}
	timer.done()

	snap := kit.Controller.State().Snapshot()

	if renderPretty {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		rendered, err := renderer.Render(snap.Review)
		if err != nil {
			return fmt.Errorf("failed to render review: %w", err)
		}
		fmt.Print(rendered)
	}

	if showModified && snap.ModifiedFile != content {
		titleColor.Println("\n📝 File with suggestions applied:")
		fmt.Println(snap.ModifiedFile)
	}

	if verbose {
		dimColor.Printf("\nTotal time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}
	return nil
}

// resolveAgents turns the --agents flag into validated agent types. With no
// flag set, the .review-pilot.yml in the working directory supplies the
// default selection.
func resolveAgents(names []string) ([]core.AgentType, error) {
	if len(names) == 0 {
		repoCfg, err := config.LoadRepoConfig(".")
		if err != nil && !errors.Is(err, config.ErrRepoConfigNotFound) {
			return nil, err
		}
		names = repoCfg.DefaultAgents
	}

	var agents []core.AgentType
	for _, name := range names {
		agent := core.AgentType(strings.TrimSpace(name))
		if !agent.Valid() {
			return nil, fmt.Errorf("unknown agent '%s'; valid agents: %v", name, core.AllAgentTypes())
		}
		agents = append(agents, agent)
	}
	return agents, nil
}
