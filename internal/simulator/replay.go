package simulator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/settlement"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Replay re-plays a recorded round from its draw log, its consumed overrides
// and the player's bonus decisions, and checks the rebuilt record is identical.
func Replay(t *table.Table, rec domain.RoundRecord) (domain.RoundRecord, error) {
	if len(rec.Draws) == 0 {
		return domain.RoundRecord{}, domain.ErrNoDrawLog
	}

	src := rng.NewReplay(rec.Draws)
	resolvers := round.NewResolvers(t, src)

	var overrides domain.Overrides
	if rec.Overrides != nil {
		overrides.Merge(*rec.Overrides)
	}

	in := resolvers.Play(rec.Bets.Clone(), &overrides, ChoiceFromDetails(rec.BonusDetails))
	in.Draws = rec.Draws
	out := settlement.BuildRecord(rec.RoundID, rec.Timestamp, in)

	if err := src.Err(); err != nil {
		return out, fmt.Errorf("%w: %s: %v", domain.ErrReplayMismatch, ErrContextReplay, err)
	}
	if !sameRecord(rec, out) {
		return out, domain.ErrReplayMismatch
	}
	return out, nil
}

// ChoiceFromDetails recovers the decision the player made during a bonus.
// Decisions that fell back to a draw are left unset so the draw is repeated.
func ChoiceFromDetails(d *domain.BonusDetails) bonus.Choice {
	var c bonus.Choice
	if d == nil {
		return c
	}
	if d.CoinFlip != nil && !d.CoinFlip.ChoiceFallback {
		side := d.CoinFlip.Choice
		c.Side = &side
	}
	if d.CashHunt != nil && !d.CashHunt.PickFallback {
		cell := d.CashHunt.Pick
		c.Cell = &cell
	}
	if d.CrazyTime != nil && !d.CrazyTime.FlapperFallback {
		f := d.CrazyTime.Flapper
		c.Flapper = &f
	}
	return c
}

func sameRecord(a, b domain.RoundRecord) bool {
	b.Timestamp = a.Timestamp
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
