package rng

import "sync"

// Scripted replays a fixed sequence of draws. It is the test double for Source.
// Index draws return the next scripted value modulo n; once the script runs
// out every draw returns zero. A draw over a single choice consumes nothing.
type Scripted struct {
	mu      sync.Mutex
	indices []int
	floats  []float64
}

// NewScripted returns a source that yields indices in order
func NewScripted(indices ...int) *Scripted {
	return &Scripted{indices: append([]int(nil), indices...)}
}

// WithFloats appends scripted float draws
func (s *Scripted) WithFloats(floats ...float64) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, floats...)
	return s
}

// Push appends further index draws
func (s *Scripted) Push(indices ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indices = append(s.indices, indices...)
}

// Remaining reports how many scripted index draws are left
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.indices)
}

func (s *Scripted) UniformIndex(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.indices) == 0 || n <= 1 {
		return 0
	}
	v := s.indices[0]
	s.indices = s.indices[1:]
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Scripted) UniformFloat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}
