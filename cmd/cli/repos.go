package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deepakkumardewani/review-pilot/internal/wire"
)

var reposJSON bool

var reposCmd = &cobra.Command{
	Use:   "repos [owner]",
	Short: "Lists the GitHub repositories of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()

		kit, cleanup, err := wire.InitializeReviewKit(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		repos, err := kit.GitHub.ListRepositories(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to retrieve repositories: %w", err)
		}

		if reposJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(repos)
		}

		if len(repos) == 0 {
			fmt.Printf("No repositories found for '%s'.\n", args[0])
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "REPOSITORY\tDEFAULT BRANCH\tPRIVATE\tDESCRIPTION")
		for _, repo := range repos {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n",
				repo.FullName,
				repo.DefaultBranch,
				repo.Private,
				repo.Description,
			)
		}
		return w.Flush()
	},
}

var branchesCmd = &cobra.Command{
	Use:   "branches [owner/repo]",
	Short: "Lists the branches of a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()

		owner, repo, err := splitFullName(args[0])
		if err != nil {
			return err
		}

		kit, cleanup, err := wire.InitializeReviewKit(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		branches, err := kit.GitHub.ListBranches(ctx, owner, repo)
		if err != nil {
			return fmt.Errorf("failed to retrieve branches: %w", err)
		}

		for _, branch := range branches {
			fmt.Println(branch)
		}
		return nil
	},
}

func splitFullName(fullName string) (owner, repo string, err error) {
	for i := range fullName {
		if fullName[i] == '/' {
			if i == 0 || i == len(fullName)-1 {
				break
			}
			return fullName[:i], fullName[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("expected 'owner/repo', got '%s'", fullName)
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "Output repositories as JSON")
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(branchesCmd)
}
