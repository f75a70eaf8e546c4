package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/jobs"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/server"
	"github.com/osse101/WheelShow_Go/internal/sse"
	"github.com/osse101/WheelShow_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Engine             *round.Engine
	Jobs               *jobs.Scheduler
	Pool               *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Round engine (cancel pending phase timers)
// 3. Scheduled jobs and the worker pool (finish queued flavor and cleanup work)
// 4. SSE hub (close client streams)
// 5. Event publisher (flush pending events)
// 6. Storage connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Engine != nil {
		if err := c.Engine.Shutdown(ctx); err != nil {
			slog.Error(LogMsgEngineShutdownFailed, "error", err)
		}
	}

	if c.Jobs != nil {
		c.Jobs.Stop(ctx)
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
