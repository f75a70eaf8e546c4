package bonus

import (
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Pachinko drops a puck onto a board until it lands on a numeric pocket.
// A DOUBLE pocket escalates every numeric pocket and the puck is dropped again.
type Pachinko struct {
	board []domain.Pocket
	limit int64
	src   rng.Source
}

// NewPachinko creates the Pachinko game
func NewPachinko(t *table.Table, src rng.Source) *Pachinko {
	return &Pachinko{board: t.PachinkoBoard(), limit: t.PachinkoCap(), src: src}
}

func (g *Pachinko) Kind() domain.Label { return domain.LabelPachinko }

func (g *Pachinko) Start(stake, _ int64) Session {
	return &pachinkoSession{game: g, stake: stake}
}

type pachinkoSession struct {
	once
	game  *Pachinko
	stake int64
}

func (s *pachinkoSession) Prompt() Prompt {
	return Prompt{
		Kind:     domain.LabelPachinko,
		Pachinko: &PachinkoPrompt{Board: append([]domain.Pocket(nil), s.game.board...)},
	}
}

// Resolve has no iteration bound. Termination follows from the board holding
// numeric pockets; only pocket values are capped.
func (s *pachinkoSession) Resolve(Choice) domain.BonusOutcome {
	return s.do(func() domain.BonusOutcome {
		board := s.game.board
		d := &domain.PachinkoDetails{}

		for {
			slot := s.game.src.UniformIndex(len(board))
			pocket := board[slot]
			d.Drops = append(d.Drops, domain.PachinkoDrop{Slot: slot, Pocket: pocket})
			if !pocket.IsBoost() {
				d.Multiplier = pocket.Value
				break
			}
			board = escalate(board, pocket.Boost.Factor(), s.game.limit)
		}
		d.FinalBoard = append([]domain.Pocket(nil), board...)

		return domain.BonusOutcome{
			Winnings: s.stake * d.Multiplier,
			Details:  domain.BonusDetails{Kind: domain.LabelPachinko, Pachinko: d},
		}
	})
}
