// Package rng is the single source of nondeterminism for the round engine.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source draws uniformly distributed values
type Source interface {
	// UniformIndex returns an integer in [0, n). n must be positive.
	UniformIndex(n int) int
	// UniformFloat returns a value in [0, 1).
	UniformFloat() float64
}

// cryptoSource is the production default
type cryptoSource struct{}

// Default returns a source backed by crypto/rand
func Default() Source { return cryptoSource{} }

func (cryptoSource) UniformIndex(n int) int {
	if n <= 1 {
		return 0
	}
	// Rejection sampling over a 64-bit word keeps the draw unbiased for any n
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		u, ok := readUint64()
		if !ok {
			return rand.IntN(n)
		}
		if u < limit {
			return int(u % bound)
		}
	}
}

func (cryptoSource) UniformFloat() float64 {
	u, ok := readUint64()
	if !ok {
		return rand.Float64()
	}
	// 53 bits => [0, 1)
	return float64(u>>11) / (1 << 53)
}

func readUint64() (uint64, bool) {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(buf[:]), true
}

// seededSource is reproducible for simulation and replay
type seededSource struct{ r *rand.Rand }

// NewSeeded returns a PCG-backed source. Equal seeds give equal sequences.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) UniformIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *seededSource) UniformFloat() float64 { return s.r.Float64() }

// Shuffle permutes xs in place with Fisher-Yates over src
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := src.UniformIndex(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
