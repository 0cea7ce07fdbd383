package main

import (
	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/wire"
)

// Indicates that the core application services have been initialized.
type kitInitializedMsg struct {
	kit *wire.ReviewKit
	err error
}

type reposLoadedMsg struct {
	owner string
	repos []github.Repository
	err   error
}

type treeLoadedMsg struct {
	ref     string
	entries []github.TreeEntry
	err     error
}

type fileLoadedMsg struct {
	path    string
	content string
	err     error
}

// Carries the channels of a freshly started review stream.
type reviewStartedMsg struct {
	path   string
	chunks chan string
	done   chan error
}

// A single streamed fragment of the review text.
type reviewChunkMsg string

// Indicates that the review stream has terminated.
type reviewDoneMsg struct {
	err error
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
