package round

import (
	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/settlement"
	"github.com/osse101/WheelShow_Go/internal/table"
	"github.com/osse101/WheelShow_Go/internal/wheel"
)

// Resolvers bundles every draw a round makes. The live engine and the batch
// simulator both play through this type so their statistics cannot drift.
type Resolvers struct {
	Wheel   *wheel.Resolver
	TopSlot *wheel.TopSlotResolver
	Games   bonus.Registry
}

// NewResolvers builds the resolvers over one table and random source
func NewResolvers(t *table.Table, src rng.Source) Resolvers {
	return Resolvers{
		Wheel:   wheel.NewResolver(t, src),
		TopSlot: wheel.NewTopSlotResolver(t, src),
		Games:   bonus.NewRegistry(t, src),
	}
}

// Spin resolves the wheel then the top slot, consuming any overrides.
// The overrides that were consumed are returned for the round record.
func (r Resolvers) Spin(o *domain.Overrides) (domain.Segment, domain.TopSlotResult, wheel.Resolution, domain.Overrides) {
	var applied domain.Overrides
	if o != nil {
		applied.Merge(*o)
	}

	var forced *domain.Label
	var left *domain.Label
	var right *int64
	if o != nil {
		forced = o.TakeSegment()
		left, right = o.TakeTopSlot()
	}

	seg, res := r.Wheel.Resolve(forced)
	top := r.TopSlot.Resolve(left, right)
	return seg, top, res, applied
}

// StartBonus opens the bonus session for a winning bonus segment. It returns
// false when the segment is numeric, nothing is staked on it, or no game is
// registered for the label.
func (r Resolvers) StartBonus(bets domain.Bets, seg domain.Segment, top domain.TopSlotResult) (bonus.Session, bool) {
	stake := settlement.BonusStake(bets, seg)
	if stake == 0 {
		return nil, false
	}
	g, ok := r.Games.Game(seg.Label)
	if !ok {
		return nil, false
	}
	return g.Start(stake, settlement.CashHuntTopSlotMultiplier(seg, top)), true
}

// Play runs one full round without delays, using choice for any bonus
func (r Resolvers) Play(bets domain.Bets, o *domain.Overrides, choice bonus.Choice) settlement.Input {
	seg, top, _, applied := r.Spin(o)
	in := settlement.Input{
		Bets:      bets,
		Segment:   seg,
		TopSlot:   top,
		Overrides: &applied,
	}
	if session, ok := r.StartBonus(bets, seg, top); ok {
		outcome := session.Resolve(choice)
		in.Bonus = &outcome
	}
	return in
}
