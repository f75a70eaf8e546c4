package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/WheelShow_Go/internal/config"
	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/flavor"
	"github.com/osse101/WheelShow_Go/internal/jobs"
	"github.com/osse101/WheelShow_Go/internal/metrics"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
	"github.com/osse101/WheelShow_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Publisher       event.Publisher
	RoundLogService roundlog.Service
	Pool            jobs.Enqueuer
	Hub             *sse.Hub
	Config          *config.Config
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// - round logger (persists RoundCompleted records)
// - flavor notifier (one message per settled round)
// - metrics collector
// - SSE bridge to connected clients
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	if err := deps.RoundLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeRoundLogger, err)
	}
	slog.Info(LogMsgRoundLoggerSubscribed)

	var gen flavor.Generator
	if deps.Config.FlavorURL != "" {
		gen = flavor.NewHTTPGenerator(deps.Config.FlavorURL)
	}
	flavor.NewNotifier(gen, deps.Pool, deps.Publisher).
		WithTimeout(deps.Config.FlavorTimeout).
		Subscribe(deps.EventBus)
	slog.Info(LogMsgFlavorNotifierSubscribed, "flavor_url", deps.Config.FlavorURL)

	if err := metrics.NewRoundCollector().Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgEventStreamSubscribed)

	return nil
}
