package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
)

// MockRoundEngine mocks RoundEngine
type MockRoundEngine struct {
	mock.Mock
}

func (m *MockRoundEngine) State() round.Snapshot {
	args := m.Called()
	return args.Get(0).(round.Snapshot)
}

func (m *MockRoundEngine) PlaceBet(ctx context.Context, label domain.Label, amount int64) (bool, error) {
	args := m.Called(ctx, label, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoundEngine) ClearBets(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockRoundEngine) UndoLastBet(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockRoundEngine) SetForcedOutcome(ctx context.Context, o domain.Overrides) bool {
	return m.Called(ctx, o).Bool(0)
}

func (m *MockRoundEngine) Skip(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockRoundEngine) SetPaused(ctx context.Context, paused bool) bool {
	return m.Called(ctx, paused).Bool(0)
}

func (m *MockRoundEngine) ChooseBonus(ctx context.Context, choice bonus.Choice) bool {
	return m.Called(ctx, choice).Bool(0)
}

// MockRoundLog mocks RoundLog
type MockRoundLog struct {
	mock.Mock
}

func (m *MockRoundLog) GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundRecord), args.Error(1)
}

func (m *MockRoundLog) ListRounds(ctx context.Context, filter roundlog.Filter) ([]domain.RoundRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoundRecord), args.Error(1)
}

func (m *MockRoundLog) Export(ctx context.Context, w io.Writer, filter roundlog.Filter) (int, error) {
	args := m.Called(ctx, w, filter)
	if fn, ok := args.Get(0).(func(io.Writer) int); ok {
		return fn(w), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

// MockPinger mocks Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
