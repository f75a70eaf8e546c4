package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a state of the round state machine
type Phase string

const (
	PhaseBetting        Phase = "BETTING"
	PhaseSpinning       Phase = "SPINNING"
	PhaseNumberResult   Phase = "NUMBER_RESULT"
	PhasePreBonus       Phase = "PRE_BONUS"
	PhaseBonusCoinFlip  Phase = "BONUS_COIN_FLIP"
	PhaseBonusPachinko  Phase = "BONUS_PACHINKO"
	PhaseBonusCashHunt  Phase = "BONUS_CASH_HUNT"
	PhaseBonusCrazyTime Phase = "BONUS_CRAZY_TIME"
	PhaseResult         Phase = "RESULT"
)

// BonusPhase returns the BONUS_<kind> phase for a bonus label
func BonusPhase(label Label) Phase {
	return Phase("BONUS_" + string(label))
}

// IsBonus reports whether the phase is one of the BONUS_<kind> states
func (p Phase) IsBonus() bool {
	switch p {
	case PhaseBonusCoinFlip, PhaseBonusPachinko, PhaseBonusCashHunt, PhaseBonusCrazyTime:
		return true
	}
	return false
}

// Bets maps every bet option to its stake. Zero entries are kept.
type Bets map[Label]int64

// NewBets returns a zeroed bet map keyed by the given labels
func NewBets(labels []Label) Bets {
	b := make(Bets, len(labels))
	for _, l := range labels {
		b[l] = 0
	}
	return b
}

// Total sums every stake
func (b Bets) Total() int64 {
	var total int64
	for _, v := range b {
		total += v
	}
	return total
}

// Clone returns an independent copy
func (b Bets) Clone() Bets {
	out := make(Bets, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Overrides are the one-shot forced outcomes for the next spin
type Overrides struct {
	SegmentLabel *Label `json:"segment_label,omitempty"`
	TopSlotLeft  *Label `json:"top_slot_left,omitempty"`
	TopSlotRight *int64 `json:"top_slot_right,omitempty"`
}

// IsZero reports whether no override is set
func (o Overrides) IsZero() bool {
	return o.SegmentLabel == nil && o.TopSlotLeft == nil && o.TopSlotRight == nil
}

// Merge sets every field present in other, leaving the rest untouched
func (o *Overrides) Merge(other Overrides) {
	if other.SegmentLabel != nil {
		l := *other.SegmentLabel
		o.SegmentLabel = &l
	}
	if other.TopSlotLeft != nil {
		l := *other.TopSlotLeft
		o.TopSlotLeft = &l
	}
	if other.TopSlotRight != nil {
		v := *other.TopSlotRight
		o.TopSlotRight = &v
	}
}

// TakeSegment returns the forced segment label and clears it
func (o *Overrides) TakeSegment() *Label {
	l := o.SegmentLabel
	o.SegmentLabel = nil
	return l
}

// TakeTopSlot returns both forced top-slot values and clears them
func (o *Overrides) TakeTopSlot() (*Label, *int64) {
	l, r := o.TopSlotLeft, o.TopSlotRight
	o.TopSlotLeft, o.TopSlotRight = nil, nil
	return l, r
}

// Draw is one call made to the random source. N is zero for float draws.
type Draw struct {
	N     int     `json:"n,omitempty"`
	Index int     `json:"i,omitempty"`
	Float float64 `json:"f,omitempty"`
}

// RoundRecord is the immutable log entry for one settled round
type RoundRecord struct {
	RoundID        uuid.UUID     `json:"round_id"`
	Timestamp      time.Time     `json:"timestamp"`
	Bets           Bets          `json:"bets"`
	TotalBet       int64         `json:"total_bet"`
	WinningSegment Segment       `json:"winning_segment"`
	TopSlot        TopSlotResult `json:"top_slot_result"`
	IsBonus        bool          `json:"is_bonus"`
	BonusWinnings  *int64        `json:"bonus_winnings,omitempty"`
	BonusDetails   *BonusDetails `json:"bonus_details,omitempty"`
	RoundWinnings  int64         `json:"round_winnings"`
	NetResult      int64         `json:"net_result"`
	Overrides      *Overrides    `json:"overrides,omitempty"`
	Draws          []Draw        `json:"draws,omitempty"`
}

// BalanceDelta is the amount the player's balance moves by once the round settles
func (r RoundRecord) BalanceDelta() int64 {
	return r.NetResult
}
