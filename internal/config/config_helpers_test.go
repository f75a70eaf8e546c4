package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperVar = "WHEELSHOW_TEST_VAR"

// setOrUnset sets helperVar, or leaves it unset when value is nil
func setOrUnset(t *testing.T, value *string) {
	t.Helper()
	t.Setenv(helperVar, "")
	if value == nil {
		os.Unsetenv(helperVar)
		return
	}
	t.Setenv(helperVar, *value)
}

func strPtr(s string) *string { return &s }

func TestGetEnv(t *testing.T) {
	setOrUnset(t, nil)
	assert.Equal(t, "fallback", getEnv(helperVar, "fallback"))

	// an explicitly empty value is kept
	setOrUnset(t, strPtr(""))
	assert.Equal(t, "", getEnv(helperVar, "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		raw  *string
		want int
	}{
		{nil, 42},
		{strPtr("100"), 100},
		{strPtr("-10"), -10},
		{strPtr("0"), 0},
		{strPtr("42.5"), 42},
		{strPtr("ten"), 42},
		{strPtr(""), 42},
	}
	for _, tt := range tests {
		setOrUnset(t, tt.raw)
		assert.Equal(t, tt.want, getEnvAsInt(helperVar, 42), "raw=%v", tt.raw)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		raw  *string
		want time.Duration
	}{
		{nil, 5 * time.Second},
		{strPtr("750ms"), 750 * time.Millisecond},
		{strPtr("1h30m"), 90 * time.Minute},
		{strPtr("15"), 5 * time.Second},
		{strPtr("soon"), 5 * time.Second},
		{strPtr(""), 5 * time.Second},
	}
	for _, tt := range tests {
		setOrUnset(t, tt.raw)
		assert.Equal(t, tt.want, getEnvAsDuration(helperVar, 5*time.Second), "raw=%v", tt.raw)
	}
}

func TestGetEnvAsList(t *testing.T) {
	setOrUnset(t, nil)
	assert.Nil(t, getEnvAsList(helperVar))

	setOrUnset(t, strPtr(" 10.0.0.1 ,, 10.0.0.0/8 ,"))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, getEnvAsList(helperVar))
}

func TestLoad_DatabasePool(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantConns    int
		wantIdle     time.Duration
		wantLifetime time.Duration
	}{
		{
			name:         "defaults",
			wantConns:    DefaultDBMaxConns,
			wantIdle:     DefaultDBMaxConnIdleTime,
			wantLifetime: DefaultDBMaxConnLifetime,
		},
		{
			name:         "overrides",
			env:          map[string]string{EnvDBMaxConns: "50", EnvDBMaxConnIdleTime: "10m", EnvDBMaxConnLifetime: "1h"},
			wantConns:    50,
			wantIdle:     10 * time.Minute,
			wantLifetime: time.Hour,
		},
		{
			name:         "garbage falls back",
			env:          map[string]string{EnvDBMaxConns: "many", EnvDBMaxConnIdleTime: "idle", EnvDBMaxConnLifetime: "forever"},
			wantConns:    DefaultDBMaxConns,
			wantIdle:     DefaultDBMaxConnIdleTime,
			wantLifetime: DefaultDBMaxConnLifetime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvAPIKey, "test-key")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantConns, cfg.DBMaxConns)
			assert.Equal(t, tt.wantIdle, cfg.DBMaxConnIdleTime)
			assert.Equal(t, tt.wantLifetime, cfg.DBMaxConnLifetime)
		})
	}
}
