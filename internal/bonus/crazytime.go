package bonus

import (
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// CrazyTime spins a bonus wheel until it lands on a numeric segment. DOUBLE and
// TRIPLE escalate every numeric segment and the wheel is spun again.
type CrazyTime struct {
	wheel []domain.Pocket
	limit int64
	src   rng.Source
}

// NewCrazyTime creates the Crazy Time game
func NewCrazyTime(t *table.Table, src rng.Source) *CrazyTime {
	return &CrazyTime{wheel: t.CrazyTimeWheel(), limit: t.CrazyTimeCap(), src: src}
}

func (g *CrazyTime) Kind() domain.Label { return domain.LabelCrazyTime }

func (g *CrazyTime) Start(stake, _ int64) Session {
	return &crazyTimeSession{game: g, stake: stake}
}

type crazyTimeSession struct {
	once
	game  *CrazyTime
	stake int64
}

func (s *crazyTimeSession) Prompt() Prompt {
	return Prompt{
		Kind: domain.LabelCrazyTime,
		CrazyTime: &CrazyTimePrompt{
			Wheel:    append([]domain.Pocket(nil), s.game.wheel...),
			Flappers: append([]domain.Flapper(nil), domain.Flappers...),
		},
	}
}

// Resolve records the flapper but never consults it when drawing
func (s *crazyTimeSession) Resolve(choice Choice) domain.BonusOutcome {
	return s.do(func() domain.BonusOutcome {
		d := &domain.CrazyTimeDetails{}
		if choice.Flapper != nil && choice.Flapper.Valid() {
			d.Flapper = *choice.Flapper
		} else {
			d.Flapper = domain.Flappers[s.game.src.UniformIndex(len(domain.Flappers))]
			d.FlapperFallback = true
		}

		wheel := s.game.wheel
		for {
			i := s.game.src.UniformIndex(len(wheel))
			pocket := wheel[i]
			d.Spins = append(d.Spins, domain.CrazyTimeSpin{Segment: i, Pocket: pocket})
			if !pocket.IsBoost() {
				d.Multiplier = pocket.Value
				break
			}
			wheel = escalate(wheel, pocket.Boost.Factor(), s.game.limit)
		}
		d.FinalWheel = append([]domain.Pocket(nil), wheel...)

		return domain.BonusOutcome{
			Winnings: s.stake * d.Multiplier,
			Details:  domain.BonusDetails{Kind: domain.LabelCrazyTime, CrazyTime: d},
		}
	})
}
