package flavor

import "time"

// Defaults
const (
	DefaultTimeout     = 3 * time.Second
	DefaultHTTPTimeout = 10 * time.Second
	MaxMessageLength   = 280
)

// Outcome values sent to the generator
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Log messages
const (
	LogMsgFlavorRequestFailed = "Flavor text request failed, using fallback"
	LogMsgFlavorGenerated     = "Flavor text generated"
	LogMsgFlavorJobDropped    = "Flavor text job not queued, using fallback"
	LogMsgFlavorPublishFailed = "Failed to publish flavor text"
)

// Error contexts
const (
	ErrContextEncodeRequest  = "failed to encode flavor request"
	ErrContextBuildRequest   = "failed to build flavor request"
	ErrContextSendRequest    = "flavor request failed"
	ErrContextDecodeResponse = "failed to decode flavor response"
	ErrMsgUnexpectedStatus   = "flavor service returned status %d"
	ErrMsgEmptyMessage       = "flavor service returned an empty message"
)
