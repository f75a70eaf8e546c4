package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// HistorySize is how many broadcast events are kept for resuming clients
	HistorySize = 128
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// ReconnectDelay is the retry hint sent to EventSource clients
	ReconnectDelay = 3 * time.Second

	HeaderLastEventID = "Last-Event-ID"
)

// Event types for SSE
const (
	EventTypeConnected     = "connected"
	EventTypeState         = "round.state"
	EventTypePhaseChanged  = "round.phase"
	EventTypeCountdown     = "round.countdown"
	EventTypeRoundComplete = "round.completed"
	EventTypeFlavorText    = "round.flavor"
	EventTypeKeepalive     = "keepalive"
)

// QueryParamTypes filters the stream to a comma separated list of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientResumed        = "SSE client resumed"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgEventDropped         = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgInvalidPayload       = "Invalid event payload for SSE"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)

// Error messages
const ErrMsgStreamingUnsupported = "SSE not supported"
