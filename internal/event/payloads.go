package event

import (
	"time"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Round event types
const (
	RoundCompleted  Type = domain.EventTypeRoundCompleted
	PhaseChanged    Type = domain.EventTypePhaseChanged
	CountdownTick   Type = domain.EventTypeCountdownTick
	FlavorTextReady Type = domain.EventTypeFlavorTextReady
)

// RoundCompletedPayloadV1 carries the settled record and the balance movement
type RoundCompletedPayloadV1 struct {
	Record       domain.RoundRecord `json:"record"`
	BalanceDelta int64              `json:"balance_delta"`
	Balance      int64              `json:"balance"`
}

// PhaseChangedPayloadV1 is published on every state machine transition
type PhaseChangedPayloadV1 struct {
	RoundID   string                `json:"round_id"`
	Phase     domain.Phase          `json:"phase"`
	Previous  domain.Phase          `json:"previous"`
	Paused    bool                  `json:"paused"`
	Countdown int                   `json:"countdown"`
	Segment   *domain.Segment       `json:"segment,omitempty"`
	TopSlot   *domain.TopSlotResult `json:"top_slot,omitempty"`
	Prompt    interface{}           `json:"prompt,omitempty"`
	Timestamp int64                 `json:"timestamp"`
}

// CountdownPayloadV1 is published once per betting tick
type CountdownPayloadV1 struct {
	RoundID   string `json:"round_id"`
	Remaining int    `json:"remaining"`
}

// FlavorTextPayloadV1 carries the post-round message
type FlavorTextPayloadV1 struct {
	RoundID  string `json:"round_id"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback"`
}

// Type-safe event constructors

// NewRoundCompletedEvent creates a round completed event
func NewRoundCompletedEvent(rec domain.RoundRecord, balance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundCompleted,
		RoundID: rec.RoundID.String(),
		Payload: RoundCompletedPayloadV1{
			Record:       rec,
			BalanceDelta: rec.BalanceDelta(),
			Balance:      balance,
		},
	}
}

// NewPhaseChangedEvent creates a phase change event
func NewPhaseChangedEvent(p PhaseChangedPayloadV1) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    PhaseChanged,
		RoundID: p.RoundID,
		Payload: p,
	}
}

// NewCountdownEvent creates a countdown tick event
func NewCountdownEvent(roundID string, remaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CountdownTick,
		RoundID: roundID,
		Payload: CountdownPayloadV1{RoundID: roundID, Remaining: remaining},
	}
}

// NewFlavorTextEvent creates a flavor text event
func NewFlavorTextEvent(roundID, message string, fallback bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FlavorTextReady,
		RoundID: roundID,
		Payload: FlavorTextPayloadV1{RoundID: roundID, Message: message, Fallback: fallback},
	}
}
