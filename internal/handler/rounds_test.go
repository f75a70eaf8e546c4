package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
	"github.com/osse101/WheelShow_Go/internal/simulator"
	"github.com/osse101/WheelShow_Go/internal/table"
)

func roundsRouter(h *RoundsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/rounds", h.HandleListRounds)
	r.Get("/rounds/export", h.HandleExportRounds)
	r.Get("/rounds/{id}", h.HandleGetRound)
	r.Get("/rounds/{id}/replay", h.HandleReplayRound)
	return r
}

// simulatedRecord plays one seeded round and returns its record
func simulatedRecord(t *testing.T) domain.RoundRecord {
	t.Helper()
	var recs []domain.RoundRecord
	sink := round.SinkFunc(func(_ context.Context, rec domain.RoundRecord, _ int64) error {
		recs = append(recs, rec)
		return nil
	})
	_, err := simulator.New(table.Default()).Run(context.Background(), simulator.Params{
		Rounds: 1,
		Bets:   domain.Bets{domain.LabelOne: 10, domain.LabelCoinFlip: 5},
		Seed:   42,
		Sink:   sink,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0]
}

func TestHandleListRounds(t *testing.T) {
	rec := domain.RoundRecord{RoundID: uuid.New(), TotalBet: 10}

	t.Run("Default filter", func(t *testing.T) {
		log := &MockRoundLog{}
		log.On("ListRounds", mock.Anything, roundlog.Filter{}).Return([]domain.RoundRecord{rec}, nil)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rounds", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp RoundListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, rec.RoundID, resp.Rounds[0].RoundID)
		log.AssertExpectations(t)
	})

	t.Run("Limit and window", func(t *testing.T) {
		since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		log := &MockRoundLog{}
		log.On("ListRounds", mock.Anything, mock.MatchedBy(func(f roundlog.Filter) bool {
			return f.Limit == 5 && f.Since != nil && f.Since.Equal(since) && f.Until == nil
		})).Return(nil, nil)

		w := httptest.NewRecorder()
		url := "/rounds?limit=5&since=" + since.Format(time.RFC3339)
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"rounds":[],"count":0}`, w.Body.String())
		log.AssertExpectations(t)
	})

	bad := []struct {
		name  string
		query string
		want  string
	}{
		{"Non numeric limit", "?limit=abc", ErrMsgInvalidLimit},
		{"Zero limit", "?limit=0", ErrMsgInvalidLimit},
		{"Limit too large", "?limit=1001", ErrMsgInvalidLimit},
		{"Bad since", "?since=yesterday", fmt.Sprintf(ErrMsgInvalidTimeParam, QueryParamSince)},
		{"Bad until", "?until=2026-13-01", fmt.Sprintf(ErrMsgInvalidTimeParam, QueryParamUntil)},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			log := &MockRoundLog{}
			w := httptest.NewRecorder()
			roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rounds"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			log.AssertNotCalled(t, "ListRounds", mock.Anything, mock.Anything)
		})
	}

	t.Run("Store error", func(t *testing.T) {
		log := &MockRoundLog{}
		log.On("ListRounds", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("list: %w", domain.ErrDatabaseError))

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rounds", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGetRound(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*MockRoundLog)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid ID",
			path:           "/rounds/not-a-uuid",
			setupMocks:     func(*MockRoundLog) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRoundID,
		},
		{
			name: "Not found",
			path: "/rounds/" + id.String(),
			setupMocks: func(m *MockRoundLog) {
				m.On("GetRound", mock.Anything, id).Return(nil, domain.ErrRoundNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRoundNotFoundError,
		},
		{
			name: "Success",
			path: "/rounds/" + id.String(),
			setupMocks: func(m *MockRoundLog) {
				m.On("GetRound", mock.Anything, id).Return(&domain.RoundRecord{RoundID: id, TotalBet: 30}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   id.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &MockRoundLog{}
			tt.setupMocks(log)

			w := httptest.NewRecorder()
			roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			log.AssertExpectations(t)
		})
	}
}

func TestHandleReplayRound(t *testing.T) {
	rec := simulatedRecord(t)

	t.Run("Reproduces the record", func(t *testing.T) {
		log := &MockRoundLog{}
		log.On("GetRound", mock.Anything, rec.RoundID).Return(&rec, nil)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/rounds/"+rec.RoundID.String()+"/replay", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ReplayResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Match)
		assert.Equal(t, rec.RoundID, resp.RoundID)
		assert.Equal(t, rec.RoundWinnings, resp.Record.RoundWinnings)
	})

	t.Run("No draw log", func(t *testing.T) {
		bare := rec
		bare.Draws = nil
		log := &MockRoundLog{}
		log.On("GetRound", mock.Anything, rec.RoundID).Return(&bare, nil)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/rounds/"+rec.RoundID.String()+"/replay", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoDrawLogError)
	})

	t.Run("Tampered record", func(t *testing.T) {
		tampered := rec
		tampered.RoundWinnings += 1000
		log := &MockRoundLog{}
		log.On("GetRound", mock.Anything, rec.RoundID).Return(&tampered, nil)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/rounds/"+rec.RoundID.String()+"/replay", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgReplayMismatchError)
	})
}

func TestHandleExportRounds(t *testing.T) {
	t.Run("Writes JSON lines", func(t *testing.T) {
		lines := `{"round_id":"a"}` + "\n" + `{"round_id":"b"}` + "\n"
		log := &MockRoundLog{}
		log.On("Export", mock.Anything, mock.Anything, roundlog.Filter{Limit: 2}).
			Return(func(w io.Writer) int {
				_, _ = io.WriteString(w, lines)
				return 2
			}, nil)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rounds/export?limit=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ContentTypeNDJSON, w.Header().Get("Content-Type"))
		assert.Equal(t, "2", w.Header().Get(HeaderRoundCount))
		assert.Equal(t, lines, w.Body.String())
		log.AssertExpectations(t)
	})

	t.Run("Store error", func(t *testing.T) {
		log := &MockRoundLog{}
		log.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(0, assert.AnError)

		w := httptest.NewRecorder()
		roundsRouter(NewRoundsHandler(log, table.Default())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rounds/export", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
