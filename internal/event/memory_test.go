package event

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/testing/leaktest"
)

// TestResilientPublisher_Shutdown_NoGoroutineLeak verifies the retry worker exits
func TestResilientPublisher_Shutdown_NoGoroutineLeak(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	rp, err := NewResilientPublisher(NewMemoryBus(), 1, 10*time.Millisecond, filepath.Join(t.TempDir(), "dl.jsonl"))
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewCountdownEvent("r1", 5)))
	require.NoError(t, rp.Shutdown(context.Background()))

	checker.Check(0)
}
