package roundlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Filter narrows round queries. Results are newest first.
type Filter struct {
	Since *time.Time
	Until *time.Time
	Limit int
}

// Repository defines the interface for round record storage
type Repository interface {
	// SaveRound stores a settled round. Saving the same round id twice is a no-op.
	SaveRound(ctx context.Context, rec domain.RoundRecord) error

	// GetRound returns domain.ErrRoundNotFound when the id is unknown
	GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error)

	// ListRounds retrieves rounds matching the filter
	ListRounds(ctx context.Context, filter Filter) ([]domain.RoundRecord, error)

	// CleanupOldRounds removes rounds older than the specified number of days
	CleanupOldRounds(ctx context.Context, retentionDays int) (int64, error)

	Ping(ctx context.Context) error
}
