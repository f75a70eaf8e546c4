package event

import (
	"context"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// RoundSink forwards settled rounds onto the bus as RoundCompleted events
type RoundSink struct {
	pub     Publisher
	balance func() int64
}

// NewRoundSink creates a sink publishing through pub
func NewRoundSink(pub Publisher) *RoundSink {
	return &RoundSink{pub: pub}
}

// WithBalance attaches a balance source so events carry the settled balance
func (s *RoundSink) WithBalance(fn func() int64) *RoundSink {
	s.balance = fn
	return s
}

// Accept publishes the record
func (s *RoundSink) Accept(ctx context.Context, rec domain.RoundRecord, _ int64) error {
	var balance int64
	if s.balance != nil {
		balance = s.balance()
	}
	return s.pub.Publish(ctx, NewRoundCompletedEvent(rec, balance))
}
