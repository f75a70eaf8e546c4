// Package roundlog persists settled rounds and serves them back for history,
// export and replay.
package roundlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/logger"
)

// Service handles round log business logic
type Service interface {
	// Subscribe registers the round logger on RoundCompleted events
	Subscribe(bus event.Bus) error

	// Accept stores a record handed over directly by the engine
	Accept(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error

	GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error)
	ListRounds(ctx context.Context, filter Filter) ([]domain.RoundRecord, error)

	// Export writes matching rounds as JSON lines, oldest first
	Export(ctx context.Context, w io.Writer, filter Filter) (int, error)

	// CleanupOldRounds removes rounds older than retention period
	CleanupOldRounds(ctx context.Context, retentionDays int) (int64, error)

	Ping(ctx context.Context) error
}

type service struct {
	repo  Repository
	cache *roundCache
}

// NewService creates a new round log service
func NewService(repo Repository, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newRoundCache(cacheSize, cacheTTL),
	}
}

// Subscribe registers the RoundCompleted handler
func (s *service) Subscribe(bus event.Bus) error {
	bus.Subscribe(event.RoundCompleted, s.handleRoundCompleted)
	return nil
}

func (s *service) handleRoundCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToDecodeRound, LogFieldError, err)
		return err
	}
	return s.Accept(ctx, payload.Record, payload.BalanceDelta)
}

func (s *service) Accept(ctx context.Context, rec domain.RoundRecord, _ int64) error {
	log := logger.FromContext(ctx)

	s.cache.Set(rec)
	if err := s.repo.SaveRound(ctx, rec); err != nil {
		log.Error(LogMsgFailedToSaveRound, LogFieldRoundID, rec.RoundID, LogFieldError, err)
		return fmt.Errorf("%s: %w", ErrContextSaveRound, err)
	}

	log.Debug(LogMsgRoundSaved, LogFieldRoundID, rec.RoundID)
	return nil
}

func (s *service) GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error) {
	if rec, ok := s.cache.Get(id); ok {
		logger.FromContext(ctx).Debug(LogMsgRoundCacheHit, LogFieldRoundID, id)
		return &rec, nil
	}

	rec, err := s.repo.GetRound(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetRound, err)
	}
	s.cache.Set(*rec)
	return rec, nil
}

func (s *service) ListRounds(ctx context.Context, filter Filter) ([]domain.RoundRecord, error) {
	filter.Limit = clampLimit(filter.Limit)
	rounds, err := s.repo.ListRounds(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListRounds, err)
	}
	return rounds, nil
}

func (s *service) Export(ctx context.Context, w io.Writer, filter Filter) (int, error) {
	if filter.Limit <= 0 {
		filter.Limit = MaxListLimit
	}
	rounds, err := s.repo.ListRounds(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextExport, err)
	}

	enc := json.NewEncoder(w)
	for i := len(rounds) - 1; i >= 0; i-- {
		if err := enc.Encode(rounds[i]); err != nil {
			return len(rounds) - 1 - i, fmt.Errorf("%s: %w", ErrContextExport, err)
		}
	}
	return len(rounds), nil
}

// CleanupOldRounds removes rounds older than the retention period
func (s *service) CleanupOldRounds(ctx context.Context, retentionDays int) (int64, error) {
	n, err := s.repo.CleanupOldRounds(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCleanup, err)
	}
	return n, nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
