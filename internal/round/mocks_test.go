package round

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// MockSink is a testify mock for Sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Accept(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error {
	args := m.Called(ctx, rec, balanceDelta)
	return args.Error(0)
}
