package rng

import (
	"fmt"
	"sync"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Recorder wraps a source and logs every draw so a round can be replayed
type Recorder struct {
	inner Source

	mu    sync.Mutex
	draws []domain.Draw
}

// NewRecorder wraps src
func NewRecorder(src Source) *Recorder {
	return &Recorder{inner: src}
}

func (r *Recorder) UniformIndex(n int) int {
	v := r.inner.UniformIndex(n)
	r.mu.Lock()
	r.draws = append(r.draws, domain.Draw{N: n, Index: v})
	r.mu.Unlock()
	return v
}

func (r *Recorder) UniformFloat() float64 {
	f := r.inner.UniformFloat()
	r.mu.Lock()
	r.draws = append(r.draws, domain.Draw{Float: f})
	r.mu.Unlock()
	return f
}

// Take returns the draws logged since the last Take and resets the log
func (r *Recorder) Take() []domain.Draw {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.draws
	r.draws = nil
	return out
}

// Replay feeds back a recorded draw log. A draw requested with a different
// range than was recorded marks the replay as diverged.
type Replay struct {
	draws []domain.Draw
	pos   int
	err   error
}

// NewReplay returns a source that reproduces draws exactly
func NewReplay(draws []domain.Draw) *Replay {
	return &Replay{draws: draws}
}

func (r *Replay) next() (domain.Draw, bool) {
	if r.pos >= len(r.draws) {
		r.fail(fmt.Errorf("draw %d requested but only %d recorded", r.pos, len(r.draws)))
		return domain.Draw{}, false
	}
	d := r.draws[r.pos]
	r.pos++
	return d, true
}

func (r *Replay) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Replay) UniformIndex(n int) int {
	d, ok := r.next()
	if !ok {
		return 0
	}
	if d.N != n || d.Index < 0 || d.Index >= n {
		r.fail(fmt.Errorf("draw %d: recorded range %d, requested %d", r.pos-1, d.N, n))
		return 0
	}
	return d.Index
}

func (r *Replay) UniformFloat() float64 {
	d, ok := r.next()
	if !ok {
		return 0
	}
	if d.N != 0 {
		r.fail(fmt.Errorf("draw %d: recorded index draw, requested float", r.pos-1))
		return 0
	}
	return d.Float
}

// Err reports the first divergence, or unconsumed draws left over
func (r *Replay) Err() error {
	if r.err != nil {
		return r.err
	}
	if r.pos != len(r.draws) {
		return fmt.Errorf("%d recorded draws were not consumed", len(r.draws)-r.pos)
	}
	return nil
}
