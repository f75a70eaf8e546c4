// Package settlement computes payouts and builds the immutable round record.
// It owns no state: every function is a pure function of its inputs.
package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Input is everything a round settles from
type Input struct {
	Bets      domain.Bets
	Segment   domain.Segment
	TopSlot   domain.TopSlotResult
	Bonus     *domain.BonusOutcome
	Overrides *domain.Overrides
	Draws     []domain.Draw
}

// Result is the settled totals of a round
type Result struct {
	TotalBet      int64
	BetOnWinner   int64
	RoundWinnings int64
	NetResult     int64
	BonusPlayed   bool
}

// EffectiveMultiplier is the segment's own multiplier unless the top slot
// landed on the winning label with a value, which then replaces it outright
func EffectiveMultiplier(seg domain.Segment, top domain.TopSlotResult) int64 {
	if top.Matches(seg.Label) {
		return *top.Right
	}
	return seg.Multiplier
}

// NumberWinnings pays stake x multiplier plus the stake back
func NumberWinnings(bets domain.Bets, seg domain.Segment, top domain.TopSlotResult) int64 {
	stake := bets[seg.Label]
	if stake <= 0 {
		return 0
	}
	return stake*EffectiveMultiplier(seg, top) + stake
}

// CashHuntTopSlotMultiplier is the top-slot value fed into Cash Hunt. It only
// applies when the top slot's label reel landed on Cash Hunt.
func CashHuntTopSlotMultiplier(seg domain.Segment, top domain.TopSlotResult) int64 {
	if seg.Label == domain.LabelCashHunt && top.Matches(domain.LabelCashHunt) {
		return *top.Right
	}
	return 1
}

// BonusStake is the amount staked on a bonus label, zero when the bonus is not played
func BonusStake(bets domain.Bets, seg domain.Segment) int64 {
	if !seg.IsBonus() {
		return 0
	}
	if stake := bets[seg.Label]; stake > 0 {
		return stake
	}
	return 0
}

// Settle computes the round totals. Stakes on losing labels are forfeited.
func Settle(in Input) Result {
	r := Result{
		TotalBet:    in.Bets.Total(),
		BetOnWinner: in.Bets[in.Segment.Label],
	}
	if r.BetOnWinner < 0 {
		r.BetOnWinner = 0
	}

	switch {
	case r.BetOnWinner == 0:
		r.RoundWinnings = 0
	case in.Segment.IsBonus():
		if in.Bonus != nil {
			r.BonusPlayed = true
			r.RoundWinnings = r.BetOnWinner + in.Bonus.Winnings
		} else {
			r.RoundWinnings = r.BetOnWinner
		}
	default:
		r.RoundWinnings = NumberWinnings(in.Bets, in.Segment, in.TopSlot)
	}

	r.NetResult = r.RoundWinnings - r.TotalBet
	return r
}

// BuildRecord settles and freezes the round into its log entry
func BuildRecord(id uuid.UUID, ts time.Time, in Input) domain.RoundRecord {
	res := Settle(in)

	rec := domain.RoundRecord{
		RoundID:        id,
		Timestamp:      ts.UTC(),
		Bets:           in.Bets.Clone(),
		TotalBet:       res.TotalBet,
		WinningSegment: in.Segment,
		TopSlot:        copyTopSlot(in.TopSlot),
		IsBonus:        in.Segment.IsBonus(),
		RoundWinnings:  res.RoundWinnings,
		NetResult:      res.NetResult,
		Draws:          append([]domain.Draw(nil), in.Draws...),
	}

	if res.BonusPlayed {
		w := in.Bonus.Winnings
		details := in.Bonus.Details
		rec.BonusWinnings = &w
		rec.BonusDetails = &details
	}
	if in.Overrides != nil && !in.Overrides.IsZero() {
		o := domain.Overrides{}
		o.Merge(*in.Overrides)
		rec.Overrides = &o
	}
	return rec
}

func copyTopSlot(t domain.TopSlotResult) domain.TopSlotResult {
	var out domain.TopSlotResult
	if t.Left != nil {
		l := *t.Left
		out.Left = &l
	}
	if t.Right != nil {
		r := *t.Right
		out.Right = &r
	}
	return out
}
