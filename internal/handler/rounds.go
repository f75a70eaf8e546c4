package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
	"github.com/osse101/WheelShow_Go/internal/simulator"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// RoundLog serves settled rounds back to the API
type RoundLog interface {
	GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error)
	ListRounds(ctx context.Context, filter roundlog.Filter) ([]domain.RoundRecord, error)
	Export(ctx context.Context, w io.Writer, filter roundlog.Filter) (int, error)
}

type RoundsHandler struct {
	log   RoundLog
	table *table.Table
}

func NewRoundsHandler(log RoundLog, t *table.Table) *RoundsHandler {
	return &RoundsHandler{
		log:   log,
		table: t,
	}
}

// RoundListResponse wraps a page of round records
type RoundListResponse struct {
	Rounds []domain.RoundRecord `json:"rounds"`
	Count  int                  `json:"count"`
}

// ReplayResponse reports a successful replay
type ReplayResponse struct {
	RoundID uuid.UUID          `json:"round_id"`
	Match   bool               `json:"match"`
	Record  domain.RoundRecord `json:"record"`
}

// HandleListRounds returns recent rounds, newest first
// @Summary List rounds
// @Tags rounds
// @Produce json
// @Param limit query int false "Maximum rounds (default 50, max 1000)"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Success 200 {object} RoundListResponse
// @Failure 400 {object} ErrorResponse
// @Router /rounds [get]
func (h *RoundsHandler) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	filter, ok := ParseRoundFilter(r, w)
	if !ok {
		return
	}

	rounds, err := h.log.ListRounds(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgListRoundsFailed, err)
		return
	}
	if rounds == nil {
		rounds = []domain.RoundRecord{}
	}
	respondJSON(w, http.StatusOK, RoundListResponse{Rounds: rounds, Count: len(rounds)})
}

// HandleGetRound returns one round record
// @Summary Get round
// @Tags rounds
// @Produce json
// @Param id path string true "Round ID"
// @Success 200 {object} domain.RoundRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rounds/{id} [get]
func (h *RoundsHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadRound(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// HandleReplayRound re-runs a round from its draw log and checks the result
// @Summary Replay round
// @Description Re-resolves the round from its recorded draws and verifies it reproduces the stored record
// @Tags rounds
// @Produce json
// @Param id path string true "Round ID"
// @Success 200 {object} ReplayResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /rounds/{id}/replay [get]
func (h *RoundsHandler) HandleReplayRound(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadRound(w, r)
	if !ok {
		return
	}

	replayed, err := simulator.Replay(h.table, *rec)
	if err != nil {
		respondServiceError(w, r, ErrMsgReplayFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, ReplayResponse{RoundID: rec.RoundID, Match: true, Record: replayed})
}

// HandleExportRounds streams rounds as JSON lines, oldest first
// @Summary Export rounds
// @Tags rounds
// @Produce plain
// @Param limit query int false "Maximum rounds"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Success 200 {string} string "JSON lines"
// @Failure 400 {object} ErrorResponse
// @Router /rounds/export [get]
func (h *RoundsHandler) HandleExportRounds(w http.ResponseWriter, r *http.Request) {
	filter, ok := ParseRoundFilter(r, w)
	if !ok {
		return
	}

	// Buffer so a failed export can still answer with an error status
	buf := getBuffer()
	defer putBuffer(buf)

	n, err := h.log.Export(r.Context(), buf, filter)
	if err != nil {
		respondServiceError(w, r, ErrMsgExportFailed, err)
		return
	}

	w.Header().Set("Content-Type", ContentTypeNDJSON)
	w.Header().Set(HeaderRoundCount, strconv.Itoa(n))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *RoundsHandler) loadRound(w http.ResponseWriter, r *http.Request) (*domain.RoundRecord, bool) {
	id, err := uuid.Parse(chi.URLParam(r, URLParamRoundID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRoundID)
		return nil, false
	}

	rec, err := h.log.GetRound(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRoundFailed, err)
		return nil, false
	}
	return rec, true
}
