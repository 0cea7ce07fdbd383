package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/review"
	"github.com/deepakkumardewani/review-pilot/internal/wire"
)

func initializeKitCmd() tea.Cmd {
	return func() tea.Msg {
		kit, _, err := wire.InitializeReviewKit(context.Background())
		if err != nil {
			return kitInitializedMsg{err: err}
		}
		return kitInitializedMsg{kit: kit}
	}
}

func loadReposCmd(kit *wire.ReviewKit, owner string) tea.Cmd {
	return func() tea.Msg {
		repos, err := kit.GitHub.ListRepositories(context.Background(), owner)
		return reposLoadedMsg{owner: owner, repos: repos, err: err}
	}
}

func loadTreeCmd(kit *wire.ReviewKit, owner, repo, ref string) tea.Cmd {
	return func() tea.Msg {
		entries, err := kit.GitHub.GetTree(context.Background(), owner, repo, ref)
		return treeLoadedMsg{ref: ref, entries: entries, err: err}
	}
}

func loadFileCmd(kit *wire.ReviewKit, owner, repo, path, ref string) tea.Cmd {
	return func() tea.Msg {
		content, err := kit.GitHub.FileContent(context.Background(), owner, repo, path, ref)
		return fileLoadedMsg{path: path, content: content, err: err}
	}
}

func loadBlobCmd(kit *wire.ReviewKit, owner, repo, path, sha string) tea.Cmd {
	return func() tea.Msg {
		content, err := kit.GitHub.GetBlob(context.Background(), owner, repo, sha)
		return fileLoadedMsg{path: path, content: content, err: err}
	}
}

// startReviewCmd fetches the file and kicks off the review pipeline in the
// background. Streamed fragments flow through the returned channels; the
// model re-issues waitForReviewChunkCmd after each one.
func startReviewCmd(kit *wire.ReviewKit, owner, repo, branch, path string, agents []core.AgentType) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		content, err := kit.GitHub.FileContent(ctx, owner, repo, path, branch)
		if err != nil {
			return errorMsg{err}
		}

		sel := review.FileSelection{
			Owner:          owner,
			Repo:           repo,
			Branch:         branch,
			Path:           path,
			Content:        content,
			SelectedAgents: agents,
		}

		chunks := make(chan string, 16)
		done := make(chan error, 1)
		go func() {
			err := kit.Controller.StartReview(ctx, sel, func(chunk string) {
				chunks <- chunk
			})
			close(chunks)
			done <- err
		}()

		return reviewStartedMsg{path: path, chunks: chunks, done: done}
	}
}

func waitForReviewChunkCmd(chunks chan string, done chan error) tea.Cmd {
	return func() tea.Msg {
		if chunk, ok := <-chunks; ok {
			return reviewChunkMsg(chunk)
		}
		return reviewDoneMsg{err: <-done}
	}
}
