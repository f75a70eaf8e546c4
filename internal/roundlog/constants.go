package roundlog

import "time"

// Defaults for the recent rounds cache and queries
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
	DefaultListLimit = 50
	MaxListLimit     = 1000
)

// CacheSchemaVersion is bumped when the cached record shape changes
const CacheSchemaVersion = "1.0"

// Log messages - service events
const (
	LogMsgFailedToDecodeRound = "Failed to decode round completed payload"
	LogMsgFailedToSaveRound   = "Failed to save round record"
	LogMsgRoundSaved          = "Round record saved"
	LogMsgRoundCacheHit       = "Round record served from cache"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting round log cleanup job"
	LogMsgCleanupJobFailed    = "Round log cleanup failed"
	LogMsgCleanupJobCompleted = "Round log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldRoundID       = "round_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// Error contexts
const (
	ErrContextSaveRound  = "failed to save round"
	ErrContextGetRound   = "failed to get round"
	ErrContextListRounds = "failed to list rounds"
	ErrContextExport     = "failed to export rounds"
	ErrContextCleanup    = "failed to clean up rounds"
)
