package roundlog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// MemoryRepository keeps rounds in process. Used when no database is configured.
type MemoryRepository struct {
	mu     sync.RWMutex
	rounds map[uuid.UUID]domain.RoundRecord
	order  []uuid.UUID
	now    func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make(map[uuid.UUID]domain.RoundRecord),
		now:    time.Now,
	}
}

func (r *MemoryRepository) SaveRound(_ context.Context, rec domain.RoundRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rounds[rec.RoundID]; exists {
		return nil
	}
	r.rounds[rec.RoundID] = rec
	r.order = append(r.order, rec.RoundID)
	return nil
}

func (r *MemoryRepository) GetRound(_ context.Context, id uuid.UUID) (*domain.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.rounds[id]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return &rec, nil
}

func (r *MemoryRepository) ListRounds(_ context.Context, filter Filter) ([]domain.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.RoundRecord, 0, len(r.order))
	for _, id := range r.order {
		rec := r.rounds[id]
		if filter.Since != nil && rec.Timestamp.Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && rec.Timestamp.After(*filter.Until) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) CleanupOldRounds(_ context.Context, retentionDays int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -retentionDays)

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	kept := r.order[:0]
	for _, id := range r.order {
		if r.rounds[id].Timestamp.Before(cutoff) {
			delete(r.rounds, id)
			deleted++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return deleted, nil
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }
