package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/table"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandleGetState(t *testing.T) {
	engine := &MockRoundEngine{}
	engine.On("State").Return(round.Snapshot{Phase: domain.PhaseBetting, Balance: 1000, Countdown: 12})

	h := NewRoundHandler(engine, table.Default())
	w := httptest.NewRecorder()
	h.HandleGetState(w, httptest.NewRequest(http.MethodGet, "/api/v1/round", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var snap round.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, domain.PhaseBetting, snap.Phase)
	assert.Equal(t, int64(1000), snap.Balance)
	assert.Equal(t, 12, snap.Countdown)
}

func TestHandlePlaceBet(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockRoundEngine)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(*MockRoundEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing label",
			reqBody:        PlaceBetRequest{Amount: 10},
			setupMocks:     func(*MockRoundEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"label":"This field is required"`,
		},
		{
			name:           "Zero amount",
			reqBody:        PlaceBetRequest{Label: "5", Amount: 0},
			setupMocks:     func(*MockRoundEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"amount":"Must be greater than 0"`,
		},
		{
			name:    "Insufficient funds",
			reqBody: PlaceBetRequest{Label: "5", Amount: 5000},
			setupMocks: func(m *MockRoundEngine) {
				m.On("PlaceBet", mock.Anything, domain.LabelFive, int64(5000)).
					Return(false, fmt.Errorf("place bet: %w", domain.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   ErrMsgInsufficientFundsError,
		},
		{
			name:    "Unknown option",
			reqBody: PlaceBetRequest{Label: "7", Amount: 10},
			setupMocks: func(m *MockRoundEngine) {
				m.On("PlaceBet", mock.Anything, domain.Label("7"), int64(10)).
					Return(false, fmt.Errorf("place bet: %w", domain.ErrUnknownBetOption))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownBetOptionError,
		},
		{
			name:    "Betting closed",
			reqBody: PlaceBetRequest{Label: "5", Amount: 10},
			setupMocks: func(m *MockRoundEngine) {
				m.On("PlaceBet", mock.Anything, domain.LabelFive, int64(10)).Return(false, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"accepted":false}`,
		},
		{
			name:    "Success",
			reqBody: PlaceBetRequest{Label: "COIN_FLIP", Amount: 25},
			setupMocks: func(m *MockRoundEngine) {
				m.On("PlaceBet", mock.Anything, domain.LabelCoinFlip, int64(25)).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"accepted":true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &MockRoundEngine{}
			tt.setupMocks(engine)
			h := NewRoundHandler(engine, table.Default())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/round/bets", jsonBody(t, tt.reqBody))
			w := httptest.NewRecorder()
			h.HandlePlaceBet(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			engine.AssertExpectations(t)
		})
	}
}

func TestRoundMutations(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		setup   func(m *MockRoundEngine, accepted bool)
		handler func(h *RoundHandler) http.HandlerFunc
		message string
	}{
		{
			name: "clear bets",
			setup: func(m *MockRoundEngine, ok bool) {
				m.On("ClearBets", mock.Anything).Return(ok)
			},
			handler: func(h *RoundHandler) http.HandlerFunc { return h.HandleClearBets },
			message: MsgBetsCleared,
		},
		{
			name: "undo bet",
			setup: func(m *MockRoundEngine, ok bool) {
				m.On("UndoLastBet", mock.Anything).Return(ok)
			},
			handler: func(h *RoundHandler) http.HandlerFunc { return h.HandleUndoBet },
			message: MsgBetUndone,
		},
		{
			name: "skip",
			setup: func(m *MockRoundEngine, ok bool) {
				m.On("Skip", mock.Anything).Return(ok)
			},
			handler: func(h *RoundHandler) http.HandlerFunc { return h.HandleSkip },
			message: MsgRoundSkipped,
		},
		{
			name: "pause",
			setup: func(m *MockRoundEngine, ok bool) {
				m.On("SetPaused", mock.Anything, true).Return(ok)
			},
			handler: func(h *RoundHandler) http.HandlerFunc { return h.HandlePause },
			message: MsgRoundPaused,
		},
		{
			name: "resume",
			setup: func(m *MockRoundEngine, ok bool) {
				m.On("SetPaused", mock.Anything, false).Return(ok)
			},
			handler: func(h *RoundHandler) http.HandlerFunc { return h.HandleResume },
			message: MsgRoundResumed,
		},
	}

	for _, tt := range tests {
		for _, accepted := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s accepted=%v", tt.name, accepted), func(t *testing.T) {
				engine := &MockRoundEngine{}
				tt.setup(engine, accepted)
				h := NewRoundHandler(engine, table.Default())

				w := httptest.NewRecorder()
				tt.handler(h)(w, httptest.NewRequest(http.MethodPost, "/", nil))

				var resp AcceptedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, accepted, resp.Accepted)
				if accepted {
					assert.Equal(t, http.StatusOK, w.Code)
					assert.Equal(t, tt.message, resp.Message)
				} else {
					assert.Equal(t, http.StatusConflict, w.Code)
					assert.Empty(t, resp.Message)
				}
				engine.AssertExpectations(t)
			})
		}
	}
}

func TestHandleForcedOutcome(t *testing.T) {
	seg := domain.LabelCrazyTime
	left := domain.LabelTen
	right := int64(50)

	t.Run("Sets overrides", func(t *testing.T) {
		engine := &MockRoundEngine{}
		engine.On("SetForcedOutcome", mock.Anything, domain.Overrides{
			SegmentLabel: &seg,
			TopSlotLeft:  &left,
			TopSlotRight: &right,
		}).Return(true)
		h := NewRoundHandler(engine, table.Default())

		body := `{"segment_label":"CRAZY_TIME","top_slot_left":"10","top_slot_right":50}`
		w := httptest.NewRecorder()
		h.HandleForcedOutcome(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgForcedOutcome)
		engine.AssertExpectations(t)
	})

	t.Run("Segment only", func(t *testing.T) {
		engine := &MockRoundEngine{}
		engine.On("SetForcedOutcome", mock.Anything, domain.Overrides{SegmentLabel: &seg}).Return(false)
		h := NewRoundHandler(engine, table.Default())

		w := httptest.NewRecorder()
		h.HandleForcedOutcome(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, `{"segment_label":"CRAZY_TIME"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		engine.AssertExpectations(t)
	})

	offWheel := domain.Label("7")
	absent := domain.Label("25")
	bigRight := int64(999)
	passedThrough := []struct {
		name string
		body string
		want domain.Overrides
	}{
		{"Segment label not on wheel", `{"segment_label":"7"}`, domain.Overrides{SegmentLabel: &offWheel}},
		{"Left label not on reel", `{"top_slot_left":"25"}`, domain.Overrides{TopSlotLeft: &absent}},
		{"Right value not on reel", `{"top_slot_right":999}`, domain.Overrides{TopSlotRight: &bigRight}},
	}
	for _, tt := range passedThrough {
		t.Run(tt.name, func(t *testing.T) {
			engine := &MockRoundEngine{}
			engine.On("SetForcedOutcome", mock.Anything, tt.want).Return(true)
			h := NewRoundHandler(engine, table.Default())

			w := httptest.NewRecorder()
			h.HandleForcedOutcome(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, tt.body)))

			assert.Equal(t, http.StatusOK, w.Code)
			engine.AssertExpectations(t)
		})
	}

	t.Run("Non positive multiplier", func(t *testing.T) {
		engine := &MockRoundEngine{}
		h := NewRoundHandler(engine, table.Default())

		w := httptest.NewRecorder()
		h.HandleForcedOutcome(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, `{"top_slot_right":0}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"top_slot_right":"Must be greater than 0"`)
		engine.AssertNotCalled(t, "SetForcedOutcome", mock.Anything, mock.Anything)
	})
}

func TestHandleBonusChoice(t *testing.T) {
	red := domain.SideRed
	yellow := domain.FlapperYellow
	cell := 17

	tests := []struct {
		name   string
		body   string
		choice bonus.Choice
	}{
		{"Coin side", `{"side":"RED"}`, bonus.Choice{Side: &red}},
		{"Cash hunt cell", `{"cell":17}`, bonus.Choice{Cell: &cell}},
		{"Flapper", `{"flapper":"yellow"}`, bonus.Choice{Flapper: &yellow}},
		{"Empty choice", `{}`, bonus.Choice{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &MockRoundEngine{}
			engine.On("ChooseBonus", mock.Anything, tt.choice).Return(true)
			h := NewRoundHandler(engine, table.Default())

			w := httptest.NewRecorder()
			h.HandleBonusChoice(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, tt.body)))

			assert.Equal(t, http.StatusOK, w.Code)
			engine.AssertExpectations(t)
		})
	}

	t.Run("Invalid side", func(t *testing.T) {
		engine := &MockRoundEngine{}
		h := NewRoundHandler(engine, table.Default())

		w := httptest.NewRecorder()
		h.HandleBonusChoice(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, `{"side":"green"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be red or blue")
	})

	t.Run("No bonus running", func(t *testing.T) {
		engine := &MockRoundEngine{}
		engine.On("ChooseBonus", mock.Anything, bonus.Choice{Side: &red}).Return(false)
		h := NewRoundHandler(engine, table.Default())

		w := httptest.NewRecorder()
		h.HandleBonusChoice(w, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, `{"side":"red"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"accepted":false}`, w.Body.String())
	})
}
