package bonus

import (
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// CashHunt shows a shuffled grid, conceals it, and pays the value bound to the
// picked cell in a second, independent shuffle of the same multiset
type CashHunt struct {
	pool []int64
	src  rng.Source
}

// NewCashHunt creates the Cash Hunt game
func NewCashHunt(t *table.Table, src rng.Source) *CashHunt {
	return &CashHunt{pool: t.CashHuntPool(), src: src}
}

func (g *CashHunt) Kind() domain.Label { return domain.LabelCashHunt }

func (g *CashHunt) Start(stake, topSlotMultiplier int64) Session {
	if topSlotMultiplier < 1 {
		topSlotMultiplier = 1
	}

	display := append([]int64(nil), g.pool...)
	rng.Shuffle(g.src, display)
	final := append([]int64(nil), g.pool...)
	rng.Shuffle(g.src, final)

	return &cashHuntSession{
		game:    g,
		stake:   stake,
		topMult: topSlotMultiplier,
		display: display,
		final:   final,
	}
}

type cashHuntSession struct {
	once
	game    *CashHunt
	stake   int64
	topMult int64
	display []int64
	final   []int64
}

func (s *cashHuntSession) Prompt() Prompt {
	return Prompt{
		Kind:     domain.LabelCashHunt,
		CashHunt: &CashHuntPrompt{Display: append([]int64(nil), s.display...)},
	}
}

func (s *cashHuntSession) Resolve(choice Choice) domain.BonusOutcome {
	return s.do(func() domain.BonusOutcome {
		d := &domain.CashHuntDetails{
			Display:           s.display,
			Final:             s.final,
			TopSlotMultiplier: s.topMult,
		}

		if choice.Cell != nil && *choice.Cell >= 0 && *choice.Cell < len(s.final) {
			d.Pick = *choice.Cell
		} else {
			d.Pick = s.game.src.UniformIndex(len(s.final))
			d.PickFallback = true
		}
		d.FinalMultiplier = s.final[d.Pick]

		return domain.BonusOutcome{
			Winnings: s.stake * d.FinalMultiplier * s.topMult,
			Details:  domain.BonusDetails{Kind: domain.LabelCashHunt, CashHunt: d},
		}
	})
}
