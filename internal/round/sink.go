package round

import (
	"context"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Sink receives every settled round together with the balance delta to apply
type Sink interface {
	Accept(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error

func (f SinkFunc) Accept(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error {
	return f(ctx, rec, balanceDelta)
}
