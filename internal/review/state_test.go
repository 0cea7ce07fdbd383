package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateLifecycle(t *testing.T) {
	s := NewState()

	gen := s.Begin()
	assert.True(t, s.Snapshot().Loading)

	assert.True(t, s.Append(gen, "hello "))
	assert.True(t, s.Append(gen, "world"))
	assert.Equal(t, "hello world", s.Snapshot().Review)

	assert.True(t, s.Complete(gen, "reconciled"))
	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "reconciled", snap.ModifiedFile)
	assert.NoError(t, snap.Err)
}

func TestStateBeginClearsPriorReview(t *testing.T) {
	s := NewState()

	gen := s.Begin()
	s.Append(gen, "old review")
	s.Complete(gen, "old file")

	s.Begin()
	snap := s.Snapshot()
	assert.Empty(t, snap.Review)
	assert.Empty(t, snap.ModifiedFile)
	assert.True(t, snap.Loading)
}

func TestStaleGenerationCannotWrite(t *testing.T) {
	s := NewState()

	stale := s.Begin()
	current := s.Begin()

	assert.False(t, s.Append(stale, "ghost chunk"))
	assert.False(t, s.Fail(stale, errors.New("ghost error")))
	assert.False(t, s.Complete(stale, "ghost file"))

	snap := s.Snapshot()
	assert.Empty(t, snap.Review)
	assert.NoError(t, snap.Err)
	assert.True(t, snap.Loading, "stale terminal writes must not end the current review")

	assert.True(t, s.Append(current, "real chunk"))
	assert.Equal(t, "real chunk", s.Snapshot().Review)
}

func TestStateFail(t *testing.T) {
	s := NewState()

	gen := s.Begin()
	s.Append(gen, "partial")
	assert.True(t, s.Fail(gen, errors.New("generation failed")))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Error(t, snap.Err)
	assert.Equal(t, "partial", snap.Review)
}

func TestStateReset(t *testing.T) {
	s := NewState()

	gen := s.Begin()
	s.Append(gen, "something")
	s.Reset()

	snap := s.Snapshot()
	assert.Empty(t, snap.Review)
	assert.False(t, snap.Loading)

	assert.False(t, s.Append(gen, "after reset"), "reset must invalidate outstanding tokens")
}
