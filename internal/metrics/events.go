package metrics

import (
	"context"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/logger"
)

// RoundCollector subscribes to round events and records metrics
type RoundCollector struct{}

// NewRoundCollector creates a new round metrics collector
func NewRoundCollector() *RoundCollector {
	return &RoundCollector{}
}

// Register subscribes to all round events
func (c *RoundCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundCompleted,
		event.PhaseChanged,
		event.FlavorTextReady,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, c.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (c *RoundCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RoundCompleted:
		p, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Warn(LogMsgFailedToDecodeEvent, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		c.ObserveRound(p.Record)
		PlayerBalance.Set(float64(p.Balance))

	case event.PhaseChanged:
		p, err := event.DecodePayload[event.PhaseChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Warn(LogMsgFailedToDecodeEvent, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		PhaseTransitions.WithLabelValues(string(p.Phase)).Inc()

	case event.FlavorTextReady:
		p, err := event.DecodePayload[event.FlavorTextPayloadV1](evt.Payload)
		if err == nil && p.Fallback {
			FlavorTextFallbacks.Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// ObserveRound records one settled round
func (c *RoundCollector) ObserveRound(rec domain.RoundRecord) {
	RoundsTotal.WithLabelValues(string(rec.WinningSegment.Label)).Inc()
	AmountWagered.Add(float64(rec.TotalBet))
	AmountPaidOut.Add(float64(rec.RoundWinnings))
	RoundNetResult.Observe(float64(rec.NetResult))

	if rec.BonusDetails != nil && rec.BonusWinnings != nil {
		kind := string(rec.BonusDetails.Kind)
		BonusRoundsTotal.WithLabelValues(kind).Inc()
		BonusWinnings.WithLabelValues(kind).Observe(float64(*rec.BonusWinnings))
	}
}

// BalanceJob samples the engine balance into the PlayerBalance gauge
type BalanceJob struct {
	balance func() int64
}

// NewBalanceJob creates a job reading the balance from fn
func NewBalanceJob(fn func() int64) *BalanceJob {
	return &BalanceJob{balance: fn}
}

// Process executes the sample
func (j *BalanceJob) Process(context.Context) error {
	PlayerBalance.Set(float64(j.balance()))
	return nil
}
