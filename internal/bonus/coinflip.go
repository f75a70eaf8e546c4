package bonus

import (
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// CoinFlip assigns two distinct multipliers to red and blue and flips a coin
type CoinFlip struct {
	values []int64
	src    rng.Source
}

// NewCoinFlip creates the coin flip game
func NewCoinFlip(t *table.Table, src rng.Source) *CoinFlip {
	return &CoinFlip{values: t.CoinFlipValues(), src: src}
}

func (g *CoinFlip) Kind() domain.Label { return domain.LabelCoinFlip }

func (g *CoinFlip) Start(stake, _ int64) Session {
	n := len(g.values)
	i := g.src.UniformIndex(n)
	j := g.src.UniformIndex(n - 1)
	if j >= i {
		j++
	}
	return &coinFlipSession{
		game:  g,
		stake: stake,
		red:   g.values[i],
		blue:  g.values[j],
	}
}

type coinFlipSession struct {
	once
	game      *CoinFlip
	stake     int64
	red, blue int64
}

func (s *coinFlipSession) Prompt() Prompt {
	return Prompt{
		Kind:     domain.LabelCoinFlip,
		CoinFlip: &CoinFlipPrompt{Red: s.red, Blue: s.blue},
	}
}

func (s *coinFlipSession) Resolve(choice Choice) domain.BonusOutcome {
	return s.do(func() domain.BonusOutcome {
		d := &domain.CoinFlipDetails{Red: s.red, Blue: s.blue}

		if choice.Side != nil && choice.Side.Valid() {
			d.Choice = *choice.Side
		} else {
			d.Choice = sideAt(s.game.src.UniformIndex(2))
			d.ChoiceFallback = true
		}
		d.Result = sideAt(s.game.src.UniformIndex(2))

		var winnings int64
		if d.Result == d.Choice {
			mult := s.red
			if d.Choice == domain.SideBlue {
				mult = s.blue
			}
			winnings = s.stake * mult
		}

		return domain.BonusOutcome{
			Winnings: winnings,
			Details:  domain.BonusDetails{Kind: domain.LabelCoinFlip, CoinFlip: d},
		}
	})
}

func sideAt(i int) domain.Side {
	if i == 0 {
		return domain.SideRed
	}
	return domain.SideBlue
}
