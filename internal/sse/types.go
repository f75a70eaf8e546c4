package sse

import "github.com/osse101/WheelShow_Go/internal/domain"

// RoundCompletedPayload is the client view of a settled round
type RoundCompletedPayload struct {
	RoundID        string               `json:"round_id"`
	WinningSegment domain.Segment       `json:"winning_segment"`
	TopSlot        domain.TopSlotResult `json:"top_slot"`
	IsBonus        bool                 `json:"is_bonus"`
	BonusWinnings  *int64               `json:"bonus_winnings,omitempty"`
	TotalBet       int64                `json:"total_bet"`
	RoundWinnings  int64                `json:"round_winnings"`
	NetResult      int64                `json:"net_result"`
	Balance        int64                `json:"balance"`
}
