package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "round.completed")
const (
	// EventTypeRoundCompleted is published once per settled round with the record and balance delta
	EventTypeRoundCompleted = "round.completed"

	// EventTypePhaseChanged is published on every state machine transition
	EventTypePhaseChanged = "round.phase_changed"

	// EventTypeCountdownTick is published on every betting countdown tick
	EventTypeCountdownTick = "round.countdown"

	// EventTypeFlavorTextReady is published when the post-round message is available
	EventTypeFlavorTextReady = "round.flavor_text"
)
