package wheel

import (
	"log/slog"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// TopSlotResolver draws the auxiliary label and multiplier reels
type TopSlotResolver struct {
	left  []domain.Label
	right []int64
	src   rng.Source
}

// NewTopSlotResolver creates a top-slot resolver drawing from src
func NewTopSlotResolver(t *table.Table, src rng.Source) *TopSlotResolver {
	return &TopSlotResolver{
		left:  t.TopSlotLeftReel(),
		right: t.TopSlotRightValues(),
		src:   src,
	}
}

// Resolve draws the left reel then the right reel. Each side honours its own
// override and falls back to an unforced draw when the forced value is not on
// the reel. An empty reel leaves its side nil.
func (r *TopSlotResolver) Resolve(forcedLeft *domain.Label, forcedRight *int64) domain.TopSlotResult {
	var result domain.TopSlotResult

	if len(r.left) > 0 {
		i := r.pick(len(r.left), forcedLeft != nil, func(i int) bool { return r.left[i] == *forcedLeft })
		if i < 0 {
			slog.Default().Warn(LogMsgForcedLeftMissing, "label", *forcedLeft)
			i = r.src.UniformIndex(len(r.left))
		}
		label := r.left[i]
		result.Left = &label
	}

	if len(r.right) > 0 {
		i := r.pick(len(r.right), forcedRight != nil, func(i int) bool { return r.right[i] == *forcedRight })
		if i < 0 {
			slog.Default().Warn(LogMsgForcedRightMissing, "multiplier", *forcedRight)
			i = r.src.UniformIndex(len(r.right))
		}
		value := r.right[i]
		result.Right = &value
	}

	return result
}

// pick draws a reel stop. When forced it draws among the matching stops and
// returns -1 if there are none.
func (r *TopSlotResolver) pick(n int, forced bool, match func(int) bool) int {
	if !forced {
		return r.src.UniformIndex(n)
	}
	var matches []int
	for i := 0; i < n; i++ {
		if match(i) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return -1
	}
	return matches[r.src.UniformIndex(len(matches))]
}
