// Package wheel resolves the main wheel and the top-slot reels.
package wheel

import (
	"log/slog"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Resolution reports how an override was handled
type Resolution string

const (
	ResolutionUniform  Resolution = "uniform"
	ResolutionForced   Resolution = "forced"
	ResolutionFallback Resolution = "fallback"
)

// Resolver picks the winning main-wheel segment
type Resolver struct {
	table *table.Table
	src   rng.Source
}

// NewResolver creates a wheel resolver drawing from src
func NewResolver(t *table.Table, src rng.Source) *Resolver {
	return &Resolver{table: t, src: src}
}

// Resolve draws the winning segment. A forced label draws uniformly among the
// segments carrying it so that forcing never biases which physical segment lands.
func (r *Resolver) Resolve(forced *domain.Label) (domain.Segment, Resolution) {
	if forced != nil {
		matches := r.table.SegmentIndices(*forced)
		if len(matches) > 0 {
			k := r.src.UniformIndex(len(matches))
			return r.table.Segment(matches[k]), ResolutionForced
		}
		slog.Default().Warn(LogMsgForcedLabelMissing, "label", *forced)
		return r.uniform(), ResolutionFallback
	}
	return r.uniform(), ResolutionUniform
}

func (r *Resolver) uniform() domain.Segment {
	return r.table.Segment(r.src.UniformIndex(r.table.SegmentCount()))
}
