package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/WheelShow_Go/internal/database"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/round"
)

// Config holds the application configuration
type Config struct {
	Port           int    `validate:"min=1,max=65535"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogFormat      string `validate:"oneof=json text"`
	LogDir         string
	ServiceName    string `validate:"required"`
	Version        string
	Environment    string `validate:"required"`
	APIKey         string `validate:"required"` // API key for authentication
	TrustedProxies []string
	CORSOrigins    []string
	RateLimit      int `validate:"gte=0"`

	// Round log database. An empty DBHost keeps the round log in memory.
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0"`
	DBMaxConnLifetime time.Duration `validate:"gt=0"`

	// Optional Redis stream sink
	RedisAddr   string
	RedisStream string

	// Optional flavor text service
	FlavorURL     string        `validate:"omitempty,url"`
	FlavorTimeout time.Duration `validate:"gt=0"`

	// Round engine
	StartingBalance     int64         `validate:"gte=0"`
	BettingSeconds      int           `validate:"min=1"`
	TickInterval        time.Duration `validate:"gt=0"`
	SpinDuration        time.Duration `validate:"gte=0"`
	PreBonusDuration    time.Duration `validate:"gte=0"`
	BonusDecisionWindow time.Duration `validate:"gt=0"`
	ResultDuration      time.Duration `validate:"gte=0"`
	TableConfigPath     string

	// Background work
	RoundRetentionDays    int `validate:"min=1"`
	CleanupCron           string
	WorkerCount           int           `validate:"min=1"`
	WorkerQueueSize       int           `validate:"min=1"`
	RecentRoundsCacheSize int           `validate:"min=1"`
	RecentRoundsCacheTTL  time.Duration `validate:"gt=0"`
	DeadLetterPath        string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:         getEnv(EnvLogDir, DefaultLogDir),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		CORSOrigins:    getEnvAsList(EnvCORSOrigins),
		RateLimit:      getEnvAsInt(EnvRateLimitPerMinute, DefaultRateLimitPerMinute),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, ""),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:         getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		RedisAddr:   getEnv(EnvRedisAddr, ""),
		RedisStream: getEnv(EnvRedisStream, DefaultRedisStream),

		FlavorURL:     getEnv(EnvFlavorURL, ""),
		FlavorTimeout: getEnvAsDuration(EnvFlavorTimeout, DefaultFlavorTimeout),

		StartingBalance:     int64(getEnvAsInt(EnvStartingBalance, round.DefaultStartingBalance)),
		BettingSeconds:      getEnvAsInt(EnvBettingSeconds, round.DefaultBettingSeconds),
		TickInterval:        getEnvAsDuration(EnvTickInterval, round.DefaultTickInterval),
		SpinDuration:        getEnvAsDuration(EnvSpinDuration, round.DefaultSpinDuration),
		PreBonusDuration:    getEnvAsDuration(EnvPreBonusDuration, round.DefaultPreBonusDuration),
		BonusDecisionWindow: getEnvAsDuration(EnvBonusDecisionWindow, round.DefaultBonusDecisionWindow),
		ResultDuration:      getEnvAsDuration(EnvResultDuration, round.DefaultResultDuration),
		TableConfigPath:     getEnv(EnvTableConfigPath, ""),

		RoundRetentionDays:    getEnvAsInt(EnvRoundRetentionDays, DefaultRoundRetentionDays),
		CleanupCron:           getEnv(EnvCleanupCron, DefaultCleanupCron),
		WorkerCount:           getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:       getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		RecentRoundsCacheSize: getEnvAsInt(EnvRecentRoundsCacheSize, DefaultRecentRoundsCacheSize),
		RecentRoundsCacheTTL:  getEnvAsDuration(EnvRecentRoundsCacheTTL, DefaultRecentRoundsCacheTTL),
		DeadLetterPath:        getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// Validate checks field ranges. Load stays lenient so a bad value can be
// reported together with every other problem at startup.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// UsesDatabase reports whether the round log is persisted to postgres
func (c *Config) UsesDatabase() bool {
	return c.DBHost != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// RoundConfig returns the engine timings
func (c *Config) RoundConfig() round.Config {
	return round.Config{
		StartingBalance:     c.StartingBalance,
		BettingSeconds:      c.BettingSeconds,
		TickInterval:        c.TickInterval,
		SpinDuration:        c.SpinDuration,
		PreBonusDuration:    c.PreBonusDuration,
		BonusDecisionWindow: c.BonusDecisionWindow,
		ResultDuration:      c.ResultDuration,
	}
}

// LoggerConfig returns the logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.LogLevel == "debug")
}

// RetentionPeriod is how long settled rounds are kept
func (c *Config) RetentionPeriod() time.Duration {
	return time.Duration(c.RoundRetentionDays) * 24 * time.Hour
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
