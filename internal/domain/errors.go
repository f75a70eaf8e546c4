package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wagering errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "stake must be a positive amount"
	ErrMsgUnknownBetOption  = "unknown bet option"

	// Round log errors
	ErrMsgRoundNotFound  = "round not found"
	ErrMsgNoDrawLog      = "round record has no draw log"
	ErrMsgReplayMismatch = "replayed round does not match the recorded round"

	// Table errors
	ErrMsgInvalidTable = "invalid outcome table"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

var (
	// ErrInsufficientFunds is returned when a stake exceeds the available balance
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	// ErrInvalidAmount is returned for zero or negative stakes
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
	// ErrUnknownBetOption is returned when a label has no matching bet option
	ErrUnknownBetOption = errors.New(ErrMsgUnknownBetOption)

	// ErrRoundNotFound is returned when a round record does not exist
	ErrRoundNotFound = errors.New(ErrMsgRoundNotFound)
	// ErrNoDrawLog is returned when a record cannot be replayed
	ErrNoDrawLog = errors.New(ErrMsgNoDrawLog)
	// ErrReplayMismatch is returned when a replay diverges from the stored record
	ErrReplayMismatch = errors.New(ErrMsgReplayMismatch)

	// ErrInvalidTable is returned when an outcome table fails validation
	ErrInvalidTable = errors.New(ErrMsgInvalidTable)

	// ErrDatabaseError wraps storage failures surfaced to callers
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
