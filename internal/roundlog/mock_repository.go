package roundlog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveRound(ctx context.Context, rec domain.RoundRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundRecord), args.Error(1)
}

func (m *MockRepository) ListRounds(ctx context.Context, filter Filter) ([]domain.RoundRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.RoundRecord), args.Error(1)
}

func (m *MockRepository) CleanupOldRounds(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
