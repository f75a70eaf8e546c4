package bootstrap

import "time"

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Session log files, one per process start
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	// LogFileRetentionCount older sessions are kept beside the current one
	LogFileRetentionCount = 9
)

// Round event delivery
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"
)

// Scheduled jobs
const (
	JobNameRoundCleanup   = "round_cleanup"
	JobNameBalanceSample  = "balance_sample"
	BalanceSampleInterval = 15 * time.Second
)

// Startup
const (
	LogMsgLoggingInitialized             = "Logging initialized"
	LogMsgStartingService                = "Starting WheelShow"
	LogMsgConfigurationLoaded            = "Configuration loaded"
	LogMsgFailedCreateLogsDir            = "failed to create logs directory"
	LogMsgFailedOpenLogFile              = "failed to open log file"
	LogMsgFailedDeleteOldLog             = "Failed to delete old log file"
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgRoundLogPostgres               = "Round log stored in Postgres"
	LogMsgRoundLogMemory                 = "Round log kept in memory"
	LogMsgRedisSinkEnabled               = "Round records streamed to Redis"
	LogMsgTableReady                     = "Outcome table ready"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgRoundLoggerSubscribed          = "Round logger subscribed"
	LogMsgFlavorNotifierSubscribed       = "Flavor notifier subscribed"
	LogMsgEventStreamSubscribed          = "Event stream bridge subscribed"
)

// Startup errors
const (
	ErrMsgFailedConnectDB            = "failed to connect to database"
	ErrMsgFailedMigrate              = "failed to run migrations"
	ErrMsgFailedConnectRedis         = "failed to connect to redis"
	ErrMsgFailedLoadTable            = "failed to load outcome table"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeRoundLogger = "failed to subscribe round logger"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgEngineShutdownFailed       = "Round engine shutdown failed"
	LogMsgCloseFailed                = "Close failed"
)
