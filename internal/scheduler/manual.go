package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by Advance. Callbacks run
// synchronously on the goroutine calling Advance, in due-time order.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates a scheduler whose clock only moves on Advance
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward, firing every callback that comes due,
// including ones scheduled by callbacks fired along the way
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Flush fires the next pending callback regardless of its due time
func (s *ManualScheduler) Flush() bool {
	s.mu.Lock()
	t := s.next()
	if t == nil {
		s.mu.Unlock()
		return false
	}
	s.now = t.due
	s.mu.Unlock()
	s.Advance(0)
	return true
}

// Pending returns the number of live callbacks
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) Shutdown(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.pending {
		t.stopped = true
	}
	s.pending = nil
	return nil
}

func (s *ManualScheduler) popDue(target time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.next()
	if t == nil || t.due > target {
		return nil
	}
	t.stopped = true
	s.now = t.due
	return t
}

// next returns the earliest live timer. Caller must hold the mutex.
func (s *ManualScheduler) next() *manualTimer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}
