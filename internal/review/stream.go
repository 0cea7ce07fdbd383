package review

import "context"

// Stream delivers review text chunks in arrival order. The consumer ranges
// over Chunks until it closes, then checks Err for the terminal outcome.
// Cancel stops the underlying generation; remaining chunks are dropped.
type Stream struct {
	chunks chan string
	done   chan struct{}
	err    error
	cancel context.CancelFunc
}

func newStream(cancel context.CancelFunc) *Stream {
	return &Stream{
		chunks: make(chan string, 16),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Chunks returns the channel of text fragments. It is closed when the
// stream terminates, successfully or not.
func (s *Stream) Chunks() <-chan string {
	return s.chunks
}

// Err blocks until the stream has terminated and reports its outcome.
func (s *Stream) Err() error {
	<-s.done
	return s.err
}

// Cancel aborts the in-flight generation. Safe to call more than once.
func (s *Stream) Cancel() {
	s.cancel()
}

func (s *Stream) push(ctx context.Context, chunk string) error {
	select {
	case s.chunks <- chunk:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Stream) finish(err error) {
	s.err = err
	close(s.chunks)
	close(s.done)
}
