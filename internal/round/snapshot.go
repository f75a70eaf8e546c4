package round

import (
	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Snapshot is a point-in-time copy of the engine state
type Snapshot struct {
	RoundID    string                `json:"round_id"`
	Phase      domain.Phase          `json:"phase"`
	Paused     bool                  `json:"paused"`
	Countdown  int                   `json:"countdown"`
	Balance    int64                 `json:"balance"`
	Held       int64                 `json:"held"`
	Available  int64                 `json:"available"`
	Bets       domain.Bets           `json:"bets"`
	TotalBet   int64                 `json:"total_bet"`
	BetOptions []domain.BetOption    `json:"bet_options"`
	Overrides  *domain.Overrides     `json:"overrides,omitempty"`
	Segment    *domain.Segment       `json:"segment,omitempty"`
	TopSlot    *domain.TopSlotResult `json:"top_slot,omitempty"`
	Prompt     *bonus.Prompt         `json:"prompt,omitempty"`
	LastRecord *domain.RoundRecord   `json:"last_record,omitempty"`
}
