package handler

import (
	"net/http"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/simulator"
)

type SimulateHandler struct {
	sim *simulator.Simulator
}

func NewSimulateHandler(sim *simulator.Simulator) *SimulateHandler {
	return &SimulateHandler{sim: sim}
}

type SimulateRequest struct {
	Rounds int              `json:"rounds" validate:"min=1,max=1000000"`
	Seed   uint64           `json:"seed"`
	Bets   map[string]int64 `json:"bets" validate:"required,min=1,dive,keys,max=32,endkeys,min=0"`
}

// HandleSimulate runs a batch of rounds with fixed bets and returns the report
// @Summary Simulate rounds
// @Description Plays rounds offline with the same bets each round and reports RTP, hit counts and escalation depth. Seed 0 picks a random seed, echoed in the report.
// @Tags simulate
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Simulation parameters"
// @Success 200 {object} simulator.Report
// @Failure 400 {object} ErrorResponse
// @Router /simulate [post]
func (h *SimulateHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
		return
	}

	bets := make(domain.Bets, len(req.Bets))
	for label, stake := range req.Bets {
		bets[domain.Label(label)] = stake
	}

	report, err := h.sim.Run(r.Context(), simulator.Params{
		Rounds: req.Rounds,
		Bets:   bets,
		Seed:   req.Seed,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulateFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
