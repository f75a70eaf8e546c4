package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion         = "ENV_SCHEMA_VERSION"
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvLogDir                = "LOG_DIR"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvEnvironment           = "ENVIRONMENT"
	EnvAPIKey                = "API_KEY"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvCORSOrigins           = "CORS_ORIGINS"
	EnvDBUser                = "DB_USER"
	EnvDBPassword            = "DB_PASSWORD"
	EnvDBHost                = "DB_HOST"
	EnvDBPort                = "DB_PORT"
	EnvDBName                = "DB_NAME"
	EnvDBSSLMode             = "DB_SSLMODE"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime     = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime     = "DB_MAX_CONN_LIFETIME"
	EnvRedisAddr             = "REDIS_ADDR"
	EnvRedisStream           = "REDIS_STREAM"
	EnvFlavorURL             = "FLAVOR_URL"
	EnvFlavorTimeout         = "FLAVOR_TIMEOUT"
	EnvStartingBalance       = "STARTING_BALANCE"
	EnvBettingSeconds        = "BETTING_SECONDS"
	EnvTickInterval          = "TICK_INTERVAL"
	EnvSpinDuration          = "SPIN_DURATION"
	EnvPreBonusDuration      = "PRE_BONUS_DURATION"
	EnvBonusDecisionWindow   = "BONUS_DECISION_WINDOW"
	EnvResultDuration        = "RESULT_DURATION"
	EnvTableConfigPath       = "TABLE_CONFIG_PATH"
	EnvRoundRetentionDays    = "ROUND_RETENTION_DAYS"
	EnvCleanupCron           = "CLEANUP_CRON"
	EnvWorkerCount           = "WORKER_COUNT"
	EnvWorkerQueueSize       = "WORKER_QUEUE_SIZE"
	EnvRecentRoundsCacheSize = "RECENT_ROUNDS_CACHE_SIZE"
	EnvRecentRoundsCacheTTL  = "RECENT_ROUNDS_CACHE_TTL"
	EnvDeadLetterPath        = "DEAD_LETTER_PATH"
	EnvRateLimitPerMinute    = "RATE_LIMIT_PER_MINUTE"
)

// Defaults
const (
	DefaultPort                  = "8080"
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultLogDir                = "logs"
	DefaultServiceName           = "wheelshow"
	DefaultVersion               = "dev"
	DefaultEnvironment           = "dev"
	DefaultDBUser                = "postgres"
	DefaultDBPassword            = "postgres"
	DefaultDBPort                = "5432"
	DefaultDBName                = "wheelshow"
	DefaultDBSSLMode             = "disable"
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = 30 * time.Minute
	DefaultRedisStream           = "wheelshow:rounds"
	DefaultFlavorTimeout         = 3 * time.Second
	DefaultTableConfigPath       = "configs/table.yaml"
	DefaultRoundRetentionDays    = 30
	DefaultCleanupCron           = "0 4 * * *"
	DefaultWorkerCount           = 4
	DefaultWorkerQueueSize       = 100
	DefaultRecentRoundsCacheSize = 256
	DefaultRecentRoundsCacheTTL  = 10 * time.Minute
	DefaultDeadLetterPath        = "logs/deadletter.jsonl"
	DefaultRateLimitPerMinute    = 600
)

// Error messages
const (
	ErrMsgInvalidPort    = "invalid PORT value"
	ErrMsgAPIKeyRequired = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig  = "invalid configuration"
)
