// Package bonus implements the four bonus games. Every game is a pure
// function of its stake, the table and the random source, and is shared by
// live play and the batch simulator.
package bonus

import (
	"sync"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Choice carries the player's decision. Nil fields mean no decision was made
// before the window closed and the game draws one instead.
type Choice struct {
	Side    *domain.Side    `json:"side,omitempty"`
	Cell    *int            `json:"cell,omitempty"`
	Flapper *domain.Flapper `json:"flapper,omitempty"`
}

// Prompt is what the player is shown while a bonus waits for a decision
type Prompt struct {
	Kind      domain.Label     `json:"kind"`
	CoinFlip  *CoinFlipPrompt  `json:"coin_flip,omitempty"`
	Pachinko  *PachinkoPrompt  `json:"pachinko,omitempty"`
	CashHunt  *CashHuntPrompt  `json:"cash_hunt,omitempty"`
	CrazyTime *CrazyTimePrompt `json:"crazy_time,omitempty"`
}

// CoinFlipPrompt shows both sides
type CoinFlipPrompt struct {
	Red  int64 `json:"red"`
	Blue int64 `json:"blue"`
}

// PachinkoPrompt shows the starting board
type PachinkoPrompt struct {
	Board []domain.Pocket `json:"board"`
}

// CashHuntPrompt shows the decoy grid before it is concealed
type CashHuntPrompt struct {
	Display []int64 `json:"display"`
}

// CrazyTimePrompt shows the wheel and the markers to choose from
type CrazyTimePrompt struct {
	Wheel    []domain.Pocket  `json:"wheel"`
	Flappers []domain.Flapper `json:"flappers"`
}

// Game creates bonus sessions
type Game interface {
	Kind() domain.Label
	// Start performs any pre-decision draws and returns the live session
	Start(stake, topSlotMultiplier int64) Session
}

// Session is one bonus invocation
type Session interface {
	Prompt() Prompt
	// Resolve runs the game to completion. Further calls return the same outcome.
	Resolve(choice Choice) domain.BonusOutcome
}

// Run plays a bonus in one step
func Run(g Game, stake, topSlotMultiplier int64, choice Choice) domain.BonusOutcome {
	return g.Start(stake, topSlotMultiplier).Resolve(choice)
}

// Registry maps bonus labels to their games
type Registry map[domain.Label]Game

// NewRegistry builds all four games over one table and source
func NewRegistry(t *table.Table, src rng.Source) Registry {
	games := []Game{
		NewCoinFlip(t, src),
		NewPachinko(t, src),
		NewCashHunt(t, src),
		NewCrazyTime(t, src),
	}
	r := make(Registry, len(games))
	for _, g := range games {
		r[g.Kind()] = g
	}
	return r
}

// Game looks up the game for a bonus label
func (r Registry) Game(label domain.Label) (Game, bool) {
	g, ok := r[label]
	return g, ok
}

// once makes Resolve idempotent
type once struct {
	o       sync.Once
	outcome domain.BonusOutcome
}

func (s *once) do(fn func() domain.BonusOutcome) domain.BonusOutcome {
	s.o.Do(func() { s.outcome = fn() })
	return s.outcome
}

// escalate returns a new board with every numeric pocket multiplied by factor
// and capped at limit. Boost pockets are carried over unchanged.
func escalate(board []domain.Pocket, factor, limit int64) []domain.Pocket {
	next := make([]domain.Pocket, len(board))
	for i, p := range board {
		if !p.IsBoost() {
			v := p.Value * factor
			if v > limit {
				v = limit
			}
			p.Value = v
		}
		next[i] = p
	}
	return next
}
