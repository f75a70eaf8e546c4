package event

import "time"

// EventSchemaVersion is stamped on every round event
const EventSchemaVersion = "1.0"

// Retry settings
const (
	// RetryQueueBufferSize bounds the events waiting for another attempt.
	// Overflow goes straight to the dead-letter file.
	RetryQueueBufferSize = 1000

	// MaxRetryDelay caps the exponential backoff
	MaxRetryDelay = time.Minute
)

// DeadLetterFilePermissions is the mode of a newly created dead-letter file
const DeadLetterFilePermissions = 0644

// DeadLetterSchemaVersion is the format version of a dead-letter line
const DeadLetterSchemaVersion = "1.0"

// Log messages
const (
	LogMsgEventPublishFailed    = "Round event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, round event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write dead-letter entry"
	LogMsgEventDeadLettered     = "Round event dead-lettered"
	LogMsgEventRetryExhausted   = "Round event retries exhausted"
	LogMsgEventRetryFailed      = "Round event retry failed, backing off"
	LogMsgEventRetrySucceeded   = "Round event retry succeeded"
	LogMsgEventDroppedShutdown  = "Round event undeliverable at shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
)

// Error contexts
const (
	ErrContextHandlers       = "event handlers failed"
	ErrContextDecodePayload  = "failed to decode event payload"
	ErrContextReadDeadLetter = "failed to read dead-letter file"
)

// CalculateRetryDelay doubles baseDelay for each attempt after the first,
// capped at MaxRetryDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	return delay
}
