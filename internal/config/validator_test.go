package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing schema version",
			env:     map[string]string{EnvAPIKey: "key"},
			wantErr: ErrEnvSchemaMissing,
		},
		{
			name:    "schema version mismatch",
			env:     map[string]string{EnvSchemaVersion: "0.9", EnvAPIKey: "key"},
			wantErr: ErrEnvSchemaMismatch,
			wantMsg: "expected 1.0, got 0.9",
		},
		{
			name:    "missing api key",
			env:     map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion},
			wantErr: ErrEnvMissing,
			wantMsg: EnvAPIKey,
		},
		{
			name: "ok",
			env:  map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion, EnvAPIKey: "key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvSchemaVersion, "")
			os.Unsetenv(EnvSchemaVersion)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := ValidateEnv()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte("segments: {}\n"), 0o600))

	tests := []struct {
		name         string
		env          map[string]string
		wantContains []string
	}{
		{
			name:         "example secrets",
			env:          map[string]string{EnvAPIKey: exampleAPIKey, EnvDBHost: "localhost", EnvDBPassword: exampleDBPassword},
			wantContains: []string{"API_KEY", "DB_PASSWORD"},
		},
		{
			name:         "in-memory round log",
			env:          map[string]string{EnvAPIKey: "real"},
			wantContains: []string{"DB_HOST"},
		},
		{
			name:         "wildcard cors in prod",
			env:          map[string]string{EnvAPIKey: "real", EnvDBHost: "db", EnvEnvironment: "prod", EnvCORSOrigins: "https://a.example, *"},
			wantContains: []string{"CORS_ORIGINS"},
		},
		{
			name:         "missing table file",
			env:          map[string]string{EnvAPIKey: "real", EnvDBHost: "db", EnvTableConfigPath: "/no/such/table.yaml"},
			wantContains: []string{"TABLE_CONFIG_PATH"},
		},
		{
			name: "clean",
			env:  map[string]string{EnvAPIKey: "real", EnvDBHost: "db", EnvTableConfigPath: tablePath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			warnings, err := ValidateEnvWithWarnings()
			require.NoError(t, err)
			require.Len(t, warnings, len(tt.wantContains))
			for i, want := range tt.wantContains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}

func TestValidateEnvWithWarnings_PropagatesError(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.1")

	warnings, err := ValidateEnvWithWarnings()
	assert.ErrorIs(t, err, ErrEnvSchemaMismatch)
	assert.Nil(t, warnings)
}
