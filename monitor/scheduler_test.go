package monitor

import (
	"context"
	"sync"
	"testing"

	"reddit-monitor/reddit"
)

// blockingSearcher parks the first cycle inside Search until released, and
// counts how many cycles reached it.
type blockingSearcher struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingSearcher) Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Post, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil, nil
}

func (b *blockingSearcher) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestRunCycleSkipsWhileCycleInFlight(t *testing.T) {
	searcher := &blockingSearcher{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m, _ := newTestMonitor(t, searcher, &fakeMessenger{})
	s := &Scheduler{monitor: m}

	done := make(chan struct{})
	go func() {
		s.runCycle()
		close(done)
	}()
	// Wait until the first cycle is mid-scan.
	<-searcher.started

	// A second cycle firing now must return without starting a scan.
	s.runCycle()
	if got := searcher.callCount(); got != 1 {
		t.Fatalf("overlapping cycle reached the searcher: %d calls", got)
	}

	close(searcher.release)
	<-done

	// The guard is released once the cycle finishes, so the next one runs.
	s.runCycle()
	if got := searcher.callCount(); got != 2 {
		t.Fatalf("expected a fresh cycle after completion, got %d calls", got)
	}
}
