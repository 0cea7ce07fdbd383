package review

import "sync"

// Snapshot is a point-in-time view of the active review.
type Snapshot struct {
	Review       string
	ModifiedFile string
	Loading      bool
	Err          error
}

// State holds the observable review state on the consuming side. Every
// write is guarded by a generation token handed out by Begin, so terminal
// callbacks from a superseded review can never corrupt the current one.
type State struct {
	mu         sync.Mutex
	generation uint64
	snap       Snapshot
}

func NewState() *State {
	return &State{}
}

// Begin resets the state for a new review and returns the generation token
// that authorizes subsequent writes. Any older token becomes stale.
func (s *State) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.snap = Snapshot{Loading: true}
	return s.generation
}

// Append adds a streamed chunk. Returns false if the token is stale, in
// which case nothing was written.
func (s *State) Append(gen uint64, chunk string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.snap.Review += chunk
	return true
}

// Complete marks the review finished and records the reconciled file.
func (s *State) Complete(gen uint64, modifiedFile string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.snap.Loading = false
	s.snap.ModifiedFile = modifiedFile
	return true
}

// Fail marks the review terminally failed.
func (s *State) Fail(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.snap.Loading = false
	s.snap.Err = err
	return true
}

// Reset clears everything, e.g. when the selected file changes.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.snap = Snapshot{}
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
