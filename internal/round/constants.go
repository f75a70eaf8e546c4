package round

import "time"

// Default phase timings
const (
	DefaultStartingBalance     = 1000
	DefaultBettingSeconds      = 15
	DefaultTickInterval        = time.Second
	DefaultSpinDuration        = 6 * time.Second
	DefaultPreBonusDuration    = 3 * time.Second
	DefaultBonusDecisionWindow = 10 * time.Second
	DefaultResultDuration      = 5 * time.Second
)

// Log messages
const (
	LogMsgEngineStarted      = "Round engine started"
	LogMsgEngineStopped      = "Round engine stopped"
	LogMsgBetPlaced          = "Bet placed"
	LogMsgBetRejected        = "Bet rejected"
	LogMsgBetsCleared        = "Bets cleared"
	LogMsgBetUndone          = "Last bet undone"
	LogMsgForcedOutcomeSet   = "Forced outcome set"
	LogMsgPhaseChanged       = "Round phase changed"
	LogMsgPauseToggled       = "Round pause toggled"
	LogMsgTransitionDeferred = "Transition deferred while paused"
	LogMsgForcedFallback     = "Forced segment fell back to an unforced draw"
	LogMsgBonusSkipped       = "No stake on winning bonus, skipping bonus"
	LogMsgBonusStarted       = "Bonus started"
	LogMsgBonusResolved      = "Bonus resolved"
	LogMsgRoundSettled       = "Round settled"
	LogMsgSinkFailed         = "Round sink rejected record"
	LogMsgPublishFailed      = "Failed to publish round event"
	LogMsgMissingBonusGame   = "No game registered for bonus label"
)

// Error contexts
const (
	ErrContextPlaceBet = "failed to place bet"
)
