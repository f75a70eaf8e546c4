package table

import (
	"fmt"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Table is the immutable outcome data shared by every resolver.
// Accessors return copies so callers cannot mutate the shared table.
type Table struct {
	options        []domain.BetOption
	segments       []domain.Segment
	topSlotLeft    []domain.Label
	topSlotRight   []int64
	coinFlipValues []int64
	pachinkoBoard  []domain.Pocket
	pachinkoCap    int64
	cashHuntPool   []int64
	crazyTimeWheel []domain.Pocket
	crazyTimeCap   int64

	byLabel map[domain.Label][]int
}

// Definition is the raw material a Table is built from
type Definition struct {
	Options        []domain.BetOption
	Segments       []domain.Label
	TopSlotLeft    []domain.Label
	TopSlotRight   []int64
	CoinFlipValues []int64
	PachinkoBoard  []domain.Pocket
	PachinkoCap    int64
	CashHuntPool   []int64
	CrazyTimeWheel []domain.Pocket
	CrazyTimeCap   int64
}

// New validates a definition and freezes it into a Table
func New(def Definition) (*Table, error) {
	t := &Table{
		options:        append([]domain.BetOption(nil), def.Options...),
		topSlotLeft:    append([]domain.Label(nil), def.TopSlotLeft...),
		topSlotRight:   append([]int64(nil), def.TopSlotRight...),
		coinFlipValues: append([]int64(nil), def.CoinFlipValues...),
		pachinkoBoard:  append([]domain.Pocket(nil), def.PachinkoBoard...),
		pachinkoCap:    def.PachinkoCap,
		cashHuntPool:   append([]int64(nil), def.CashHuntPool...),
		crazyTimeWheel: append([]domain.Pocket(nil), def.CrazyTimeWheel...),
		crazyTimeCap:   def.CrazyTimeCap,
		byLabel:        make(map[domain.Label][]int),
	}

	t.segments = make([]domain.Segment, len(def.Segments))
	for i, label := range def.Segments {
		seg := domain.Segment{Index: i, Label: label, Kind: domain.KindBonus}
		if v, ok := label.NumericValue(); ok {
			seg.Kind = domain.KindNumber
			seg.Multiplier = v
		}
		t.segments[i] = seg
		t.byLabel[label] = append(t.byLabel[label], i)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the structural invariants every resolver relies on
func (t *Table) Validate() error {
	known := make(map[domain.Label]bool, len(t.options))
	for _, o := range t.options {
		known[o.Label] = true
	}
	if len(known) == 0 {
		return invalid("no bet options")
	}
	if len(t.segments) == 0 {
		return invalid("no wheel segments")
	}
	for _, s := range t.segments {
		if !known[s.Label] {
			return invalid("segment %d has unknown label %q", s.Index, s.Label)
		}
		if !s.Label.IsBonus() && s.Multiplier <= 0 {
			return invalid("segment %d has non-positive multiplier", s.Index)
		}
	}
	for _, l := range t.topSlotLeft {
		if !known[l] {
			return invalid("top slot reel has unknown label %q", l)
		}
	}
	if err := positive("top slot right value", t.topSlotRight); err != nil {
		return err
	}
	if len(t.coinFlipValues) < 2 {
		return invalid("coin flip needs at least two values")
	}
	if err := positive("coin flip value", t.coinFlipValues); err != nil {
		return err
	}
	if err := escalationBoard("pachinko", t.pachinkoBoard, t.pachinkoCap); err != nil {
		return err
	}
	if len(t.cashHuntPool) == 0 {
		return invalid("cash hunt pool is empty")
	}
	if err := positive("cash hunt value", t.cashHuntPool); err != nil {
		return err
	}
	return escalationBoard("crazy time", t.crazyTimeWheel, t.crazyTimeCap)
}

// escalationBoard requires at least one numeric pocket so the re-draw loop terminates
func escalationBoard(name string, board []domain.Pocket, limit int64) error {
	if limit <= 0 {
		return invalid("%s cap must be positive", name)
	}
	numeric := 0
	for i, p := range board {
		if p.IsBoost() {
			if p.Boost.Factor() < 2 {
				return invalid("%s pocket %d has unknown boost %q", name, i, p.Boost)
			}
			continue
		}
		if p.Value <= 0 || p.Value > limit {
			return invalid("%s pocket %d value %d outside (0, %d]", name, i, p.Value, limit)
		}
		numeric++
	}
	if numeric == 0 {
		return invalid("%s board has no numeric pocket", name)
	}
	return nil
}

func positive(what string, values []int64) error {
	for _, v := range values {
		if v <= 0 {
			return invalid("%s %d is not positive", what, v)
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidTable, fmt.Sprintf(format, args...))
}

// BetOptions returns every bet option in display order
func (t *Table) BetOptions() []domain.BetOption {
	return append([]domain.BetOption(nil), t.options...)
}

// Labels returns the bet labels in display order
func (t *Table) Labels() []domain.Label {
	out := make([]domain.Label, len(t.options))
	for i, o := range t.options {
		out[i] = o.Label
	}
	return out
}

// Option looks up a bet option by label
func (t *Table) Option(label domain.Label) (domain.BetOption, bool) {
	for _, o := range t.options {
		if o.Label == label {
			return o, true
		}
	}
	return domain.BetOption{}, false
}

// SegmentCount returns the number of wheel positions
func (t *Table) SegmentCount() int {
	return len(t.segments)
}

// Segment returns the segment at a wheel index
func (t *Table) Segment(i int) domain.Segment {
	return t.segments[i]
}

// Segments returns every wheel segment in physical order
func (t *Table) Segments() []domain.Segment {
	return append([]domain.Segment(nil), t.segments...)
}

// SegmentIndices returns the wheel indices carrying a label, in physical order
func (t *Table) SegmentIndices(label domain.Label) []int {
	return append([]int(nil), t.byLabel[label]...)
}

// TopSlotLeftReel returns the weighted label reel
func (t *Table) TopSlotLeftReel() []domain.Label {
	return append([]domain.Label(nil), t.topSlotLeft...)
}

// TopSlotRightValues returns the multiplier reel
func (t *Table) TopSlotRightValues() []int64 {
	return append([]int64(nil), t.topSlotRight...)
}

// CoinFlipValues returns the multiplier set both coin sides are drawn from
func (t *Table) CoinFlipValues() []int64 {
	return append([]int64(nil), t.coinFlipValues...)
}

// PachinkoBoard returns the starting Pachinko board
func (t *Table) PachinkoBoard() []domain.Pocket {
	return append([]domain.Pocket(nil), t.pachinkoBoard...)
}

// PachinkoCap returns the escalation ceiling for Pachinko
func (t *Table) PachinkoCap() int64 {
	return t.pachinkoCap
}

// CashHuntPool returns the multiset of Cash Hunt multipliers in canonical order
func (t *Table) CashHuntPool() []int64 {
	return append([]int64(nil), t.cashHuntPool...)
}

// CrazyTimeWheel returns the starting Crazy Time wheel
func (t *Table) CrazyTimeWheel() []domain.Pocket {
	return append([]domain.Pocket(nil), t.crazyTimeWheel...)
}

// CrazyTimeCap returns the escalation ceiling for Crazy Time
func (t *Table) CrazyTimeCap() int64 {
	return t.crazyTimeCap
}
