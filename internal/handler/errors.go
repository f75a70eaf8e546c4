package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
	ErrMsgInvalidValue          = "Invalid value"

	// Query parameter error messages
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidTimeParam = "Invalid %s parameter, expected RFC3339 time"

	// Round history error messages
	ErrMsgInvalidRoundID   = "Invalid round ID"
	ErrMsgGetRoundFailed   = "Failed to get round"
	ErrMsgListRoundsFailed = "Failed to list rounds"
	ErrMsgExportFailed     = "Failed to export rounds"
	ErrMsgReplayFailed     = "Failed to replay round"
	ErrMsgSimulateFailed   = "Failed to run simulation"
	ErrMsgPlaceBetFailed   = "Failed to place bet"
)

// Success messages for API responses
const (
	MsgBetsCleared     = "Bets cleared"
	MsgBetUndone       = "Last bet undone"
	MsgRoundSkipped    = "Countdown skipped"
	MsgRoundPaused     = "Round paused"
	MsgRoundResumed    = "Round resumed"
	MsgForcedOutcome   = "Forced outcome set for the next spin"
	MsgBonusChoiceMade = "Bonus choice submitted"
	MsgBetPlaced       = "Bet placed"
)

// Query parameters and headers
const (
	QueryParamLimit = "limit"
	QueryParamSince = "since"
	QueryParamUntil = "until"

	URLParamRoundID = "id"

	HeaderRoundCount  = "X-Round-Count"
	ContentTypeJSON   = "application/json"
	ContentTypeNDJSON = "application/x-ndjson"
)

// Log messages
const (
	LogMsgDecodeFailed         = "Failed to decode request body"
	LogMsgValidationFailed     = "Request failed validation"
	LogMsgPlaceBet             = "Place bet request"
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response"
	LogMsgForcedValueAbsent    = "Forced value not in table, next draw falls back"
)
