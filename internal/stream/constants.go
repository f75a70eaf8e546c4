package stream

// Defaults
const (
	DefaultStreamName = "wheelshow:rounds"
	DefaultMaxLen     = 10000
)

// Stream entry fields
const (
	FieldRoundID      = "round_id"
	FieldRecord       = "record"
	FieldBalanceDelta = "balance_delta"
)

// Log messages
const (
	LogMsgRoundStreamed  = "Round appended to stream"
	LogMsgRedisConnected = "Connected to Redis"
)

// Error contexts
const (
	ErrContextMarshalRecord = "failed to marshal round record"
	ErrContextAppendStream  = "failed to append to stream"
	ErrContextPingRedis     = "failed to ping redis"
)
