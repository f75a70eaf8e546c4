package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

var (
	ErrEnvSchemaMissing  = errors.New("ENV_SCHEMA_VERSION is not set")
	ErrEnvSchemaMismatch = errors.New("ENV_SCHEMA_VERSION mismatch")
	ErrEnvMissing        = errors.New("missing required environment variables")
)

// Placeholder values shipped in .env.example
const (
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
	exampleDBPassword = "change_this_secure_password"
)

// RequiredEnvVars must be non-empty for the service to start
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
}

// envWarning is a non-fatal configuration smell
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv(EnvAPIKey) == exampleAPIKey },
		message: "API_KEY is the example value; generate one with: openssl rand -hex 32",
	},
	{
		applies: func() bool {
			return os.Getenv(EnvDBHost) != "" && os.Getenv(EnvDBPassword) == exampleDBPassword
		},
		message: "DB_PASSWORD is the example value",
	},
	{
		applies: func() bool { return os.Getenv(EnvDBHost) == "" },
		message: "DB_HOST is not set; the round log is kept in memory and lost on restart",
	},
	{
		applies: func() bool {
			if os.Getenv(EnvEnvironment) != "prod" {
				return false
			}
			for _, origin := range getEnvAsList(EnvCORSOrigins) {
				if origin == "*" {
					return true
				}
			}
			return false
		},
		message: "CORS_ORIGINS allows any origin in prod",
	},
	{
		applies: func() bool {
			path := os.Getenv(EnvTableConfigPath)
			if path == "" {
				return false
			}
			_, err := os.Stat(path)
			return err != nil
		},
		message: "TABLE_CONFIG_PATH does not exist; the default outcome table will fail to load",
	},
}

// ValidateEnv checks the schema version and the required variables
func ValidateEnv() error {
	switch version := os.Getenv(EnvSchemaVersion); version {
	case "":
		return fmt.Errorf("%w (expected %s); add it to your .env file", ErrEnvSchemaMissing, ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return fmt.Errorf("%w: expected %s, got %s", ErrEnvSchemaMismatch, ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvMissing, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists the non-fatal
// problems worth logging at startup
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
