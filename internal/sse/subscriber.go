package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/WheelShow_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all round event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PhaseChanged, s.handlePhaseChanged)
	s.bus.Subscribe(event.CountdownTick, s.handleCountdown)
	s.bus.Subscribe(event.RoundCompleted, s.handleRoundCompleted)
	s.bus.Subscribe(event.FlavorTextReady, s.handleFlavorText)

	slog.Info(LogMsgSubscriberRegistered,
		"types", []string{
			string(event.PhaseChanged),
			string(event.CountdownTick),
			string(event.RoundCompleted),
			string(event.FlavorTextReady),
		})
}

func (s *Subscriber) handlePhaseChanged(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.PhaseChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypePhaseChanged, p)
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypePhaseChanged, "phase", p.Phase)
	return nil
}

func (s *Subscriber) handleCountdown(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.CountdownPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeCountdown, p)
	return nil
}

func (s *Subscriber) handleRoundCompleted(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	rec := p.Record
	s.hub.Broadcast(EventTypeRoundComplete, RoundCompletedPayload{
		RoundID:        rec.RoundID.String(),
		WinningSegment: rec.WinningSegment,
		TopSlot:        rec.TopSlot,
		IsBonus:        rec.IsBonus,
		BonusWinnings:  rec.BonusWinnings,
		TotalBet:       rec.TotalBet,
		RoundWinnings:  rec.RoundWinnings,
		NetResult:      rec.NetResult,
		Balance:        p.Balance,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeRoundComplete,
		"round_id", rec.RoundID,
		"net_result", rec.NetResult)
	return nil
}

func (s *Subscriber) handleFlavorText(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.FlavorTextPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeFlavorText, p)
	return nil
}
