package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// RoundEngine is the part of the round engine the HTTP API drives
type RoundEngine interface {
	State() round.Snapshot
	PlaceBet(ctx context.Context, label domain.Label, amount int64) (bool, error)
	ClearBets(ctx context.Context) bool
	UndoLastBet(ctx context.Context) bool
	SetForcedOutcome(ctx context.Context, o domain.Overrides) bool
	Skip(ctx context.Context) bool
	SetPaused(ctx context.Context, paused bool) bool
	ChooseBonus(ctx context.Context, choice bonus.Choice) bool
}

type RoundHandler struct {
	engine RoundEngine
	table  *table.Table
}

func NewRoundHandler(engine RoundEngine, t *table.Table) *RoundHandler {
	return &RoundHandler{
		engine: engine,
		table:  t,
	}
}

type PlaceBetRequest struct {
	Label  string `json:"label" validate:"required,max=32"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

type ForcedOutcomeRequest struct {
	SegmentLabel *string `json:"segment_label,omitempty" validate:"omitempty,max=32"`
	TopSlotLeft  *string `json:"top_slot_left,omitempty" validate:"omitempty,max=32"`
	TopSlotRight *int64  `json:"top_slot_right,omitempty" validate:"omitempty,gt=0"`
}

type BonusChoiceRequest struct {
	Side    string `json:"side,omitempty" validate:"side"`
	Cell    *int   `json:"cell,omitempty" validate:"omitempty,min=0"`
	Flapper string `json:"flapper,omitempty" validate:"flapper"`
}

// HandleGetState returns the current engine snapshot
// @Summary Get round state
// @Description Returns phase, countdown, balance, bets and any pending bonus prompt
// @Tags round
// @Produce json
// @Success 200 {object} round.Snapshot
// @Router /round [get]
func (h *RoundHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.State())
}

// HandlePlaceBet holds a stake on one bet option
// @Summary Place a bet
// @Description Holds amount on label for the current round. Only accepted while betting is open.
// @Tags round
// @Accept json
// @Produce json
// @Param request body PlaceBetRequest true "Bet"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/bets [post]
func (h *RoundHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgPlaceBet, "label", req.Label, "amount", req.Amount)

	ok, err := h.engine.PlaceBet(r.Context(), domain.Label(req.Label), req.Amount)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlaceBetFailed, err)
		return
	}
	respondAccepted(w, ok, MsgBetPlaced)
}

// HandleClearBets releases every stake of the current round
// @Summary Clear bets
// @Tags round
// @Produce json
// @Success 200 {object} AcceptedResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/bets [delete]
func (h *RoundHandler) HandleClearBets(w http.ResponseWriter, r *http.Request) {
	respondAccepted(w, h.engine.ClearBets(r.Context()), MsgBetsCleared)
}

// HandleUndoBet releases the most recent stake
// @Summary Undo last bet
// @Tags round
// @Produce json
// @Success 200 {object} AcceptedResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/bets/undo [post]
func (h *RoundHandler) HandleUndoBet(w http.ResponseWriter, r *http.Request) {
	respondAccepted(w, h.engine.UndoLastBet(r.Context()), MsgBetUndone)
}

// HandleSkip ends the betting countdown and spins immediately
// @Summary Skip countdown
// @Tags round
// @Produce json
// @Success 200 {object} AcceptedResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/skip [post]
func (h *RoundHandler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	respondAccepted(w, h.engine.Skip(r.Context()), MsgRoundSkipped)
}

// HandlePause freezes the round state machine
// @Summary Pause
// @Tags round
// @Produce json
// @Success 200 {object} AcceptedResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/pause [post]
func (h *RoundHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	respondAccepted(w, h.engine.SetPaused(r.Context(), true), MsgRoundPaused)
}

// HandleResume resumes a paused state machine
// @Summary Resume
// @Tags round
// @Produce json
// @Success 200 {object} AcceptedResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/resume [post]
func (h *RoundHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	respondAccepted(w, h.engine.SetPaused(r.Context(), false), MsgRoundResumed)
}

// HandleForcedOutcome sets one-shot overrides for the next spin
// @Summary Force the next outcome
// @Description Overrides the wheel segment label and/or the top-slot result of the next spin only. Values not on the wheel or reels fall back to an unforced draw.
// @Tags round
// @Accept json
// @Produce json
// @Param request body ForcedOutcomeRequest true "Overrides"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/forced [post]
func (h *RoundHandler) HandleForcedOutcome(w http.ResponseWriter, r *http.Request) {
	var req ForcedOutcomeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Forced outcome"); err != nil {
		return
	}

	// Values missing from the table are passed through; the resolvers fall
	// back to an unforced draw for them.
	log := logger.FromContext(r.Context())
	var o domain.Overrides
	if req.SegmentLabel != nil {
		label := domain.Label(*req.SegmentLabel)
		if len(h.table.SegmentIndices(label)) == 0 {
			log.Warn(LogMsgForcedValueAbsent, "field", "segment_label", "value", label)
		}
		o.SegmentLabel = &label
	}
	if req.TopSlotLeft != nil {
		label := domain.Label(*req.TopSlotLeft)
		if !slices.Contains(h.table.TopSlotLeftReel(), label) {
			log.Warn(LogMsgForcedValueAbsent, "field", "top_slot_left", "value", label)
		}
		o.TopSlotLeft = &label
	}
	if req.TopSlotRight != nil {
		if !slices.Contains(h.table.TopSlotRightValues(), *req.TopSlotRight) {
			log.Warn(LogMsgForcedValueAbsent, "field", "top_slot_right", "value", *req.TopSlotRight)
		}
		o.TopSlotRight = req.TopSlotRight
	}

	respondAccepted(w, h.engine.SetForcedOutcome(r.Context(), o), MsgForcedOutcome)
}

// HandleBonusChoice submits the player's decision for the running bonus
// @Summary Choose for the running bonus
// @Description Picks the coin side, Cash Hunt cell or Crazy Time flapper. The bonus resolves immediately.
// @Tags round
// @Accept json
// @Produce json
// @Param request body BonusChoiceRequest true "Choice"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} AcceptedResponse
// @Router /round/bonus/choice [post]
func (h *RoundHandler) HandleBonusChoice(w http.ResponseWriter, r *http.Request) {
	var req BonusChoiceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bonus choice"); err != nil {
		return
	}
	respondAccepted(w, h.engine.ChooseBonus(r.Context(), req.choice()), MsgBonusChoiceMade)
}

func (req BonusChoiceRequest) choice() bonus.Choice {
	var c bonus.Choice
	if req.Side != "" {
		side := domain.Side(strings.ToLower(req.Side))
		c.Side = &side
	}
	if req.Flapper != "" {
		flapper := domain.Flapper(strings.ToLower(req.Flapper))
		c.Flapper = &flapper
	}
	c.Cell = req.Cell
	return c
}
