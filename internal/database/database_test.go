package database

import (
	"context"
	"io/fs"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/WheelShow_Go/internal/testing/leaktest"
)

var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// requireDatabase starts one postgres container for the whole package on
// first use. Tests skip in short mode or when Docker is unavailable.
func requireDatabase(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	containerOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				containerErr = assert.AnError
			}
		}()
		ctx := context.Background()
		c, err := postgres.Run(ctx, "postgres:15-alpine",
			postgres.WithDatabase("wheel"),
			postgres.WithUsername("wheel"),
			postgres.WithPassword("wheel"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = err
			return
		}
		containerURL, containerErr = c.ConnectionString(ctx, "sslmode=disable")
	})
	if containerErr != nil {
		t.Skipf("Skipping integration test: postgres unavailable: %v", containerErr)
	}
	return containerURL
}

func TestConnString(t *testing.T) {
	tests := []struct {
		sslMode string
		want    string
	}{
		{"", "postgres://u:p@db:5432/wheel?sslmode=disable"},
		{"require", "postgres://u:p@db:5432/wheel?sslmode=require"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConnString("u", "p", "db", "5432", "wheel", tt.sslMode))
	}
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool("postgres://%zz", 1, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		body, err := fs.ReadFile(migrationsFS, f)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}
}

func TestNewPool_Limits(t *testing.T) {
	url := requireDatabase(t)

	pool, err := NewPool(url, 0, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config()
	assert.EqualValues(t, DefaultMaxConnections, cfg.MaxConns, "non-positive max falls back to the default")
	assert.EqualValues(t, DefaultMinConnections, cfg.MinConns)
	assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)

	small, err := NewPool(url, 1, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer small.Close()
	assert.EqualValues(t, 1, small.Config().MinConns, "min is clamped to max")
}

func TestPool_ReleasesUnderLoad(t *testing.T) {
	url := requireDatabase(t)

	pool, err := NewPool(url, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var got int
			if err := pool.QueryRow(ctx, "SELECT $1::int", n).Scan(&got); err != nil {
				t.Errorf("query %d: %v", n, err)
				return
			}
			if got != n {
				t.Errorf("query %d returned %d", n, got)
			}
			// failing statements must release their connection too
			if _, err := pool.Exec(ctx, "SELECT * FROM no_such_table"); err == nil {
				t.Errorf("query %d: expected error", n)
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestMigrate(t *testing.T) {
	url := requireDatabase(t)

	pool, err := NewPool(url, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "migrations are idempotent")

	version, err := MigrationVersion(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	var exists bool
	err = pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'rounds')`).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}
