package roundlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func record(ts time.Time, net int64) domain.RoundRecord {
	return domain.RoundRecord{
		RoundID:   uuid.New(),
		Timestamp: ts,
		Bets:      domain.Bets{domain.LabelOne: 10},
		TotalBet:  10,
		NetResult: net,
	}
}

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	mockBus.On("Subscribe", event.RoundCompleted, mock.Anything).Return()

	err := NewService(new(MockRepository), 0, DefaultCacheTTL).Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_RoundCompletedIsPersistedAndCached(t *testing.T) {
	bus := event.NewMemoryBus()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, 8, time.Minute)
	require.NoError(t, svc.Subscribe(bus))

	rec := record(time.Now(), 1)
	mockRepo.On("SaveRound", mock.Anything, mock.MatchedBy(func(r domain.RoundRecord) bool {
		return r.RoundID == rec.RoundID
	})).Return(nil).Once()

	require.NoError(t, bus.Publish(context.Background(), event.NewRoundCompletedEvent(rec, 1001)))

	got, err := svc.GetRound(context.Background(), rec.RoundID)
	require.NoError(t, err)
	assert.Equal(t, rec.RoundID, got.RoundID)
	// served from cache: GetRound never reached the repository
	mockRepo.AssertNotCalled(t, "GetRound", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestService_AcceptWrapsRepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, 0, DefaultCacheTTL)
	mockRepo.On("SaveRound", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.Accept(context.Background(), record(time.Now(), 0), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextSaveRound)
}

func TestService_GetRoundNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, 0, DefaultCacheTTL)
	id := uuid.New()
	mockRepo.On("GetRound", mock.Anything, id).Return(nil, domain.ErrRoundNotFound)

	_, err := svc.GetRound(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrRoundNotFound)
}

func TestService_ListRoundsClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultListLimit},
		{"within range", 5, 5},
		{"too large", MaxListLimit + 1, MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("ListRounds", mock.Anything, Filter{Limit: tt.want}).Return([]domain.RoundRecord{}, nil)

			_, err := NewService(mockRepo, 0, DefaultCacheTTL).ListRounds(context.Background(), Filter{Limit: tt.limit})
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_ExportJSONLinesOldestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, 0, DefaultCacheTTL)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Accept(ctx, record(base.Add(time.Duration(i)*time.Minute), int64(i)), int64(i)))
	}

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var nets []int64
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var rec domain.RoundRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		nets = append(nets, rec.NetResult)
	}
	assert.Equal(t, []int64{0, 1, 2}, nets)
}
