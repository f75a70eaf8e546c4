// Package simulator plays rounds in bulk through the live resolvers and
// reports return-to-player statistics.
package simulator

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/settlement"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Params configures a simulation run
type Params struct {
	Rounds int
	Bets   domain.Bets
	// Seed zero picks a seed from the clock. The seed used is echoed in the report.
	Seed uint64
	// Sink optionally receives every simulated record
	Sink round.Sink
}

// Stats summarises the per-round net result
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	P50    int64   `json:"p50"`
	P90    int64   `json:"p90"`
	P99    int64   `json:"p99"`
}

// Report is the outcome of a simulation run
type Report struct {
	Rounds        int                  `json:"rounds"`
	Seed          uint64               `json:"seed"`
	StakePerRound int64                `json:"stake_per_round"`
	TotalWagered  int64                `json:"total_wagered"`
	TotalReturned int64                `json:"total_returned"`
	NetResult     int64                `json:"net_result"`
	RTP           decimal.Decimal      `json:"rtp"`
	HouseEdge     decimal.Decimal      `json:"house_edge"`
	Hits          map[domain.Label]int `json:"hits"`
	BonusRounds   map[domain.Label]int `json:"bonus_rounds"`
	WinningRounds int                  `json:"winning_rounds"`
	MaxWin        int64                `json:"max_win"`
	MaxEscalation int                  `json:"max_escalation"`
	Net           Stats                `json:"net"`
	Duration      time.Duration        `json:"duration_ns"`
}

// Simulator runs batches over one outcome table
type Simulator struct {
	table *table.Table
	now   func() time.Time
}

// New creates a simulator for t
func New(t *table.Table) *Simulator {
	return &Simulator{table: t, now: time.Now}
}

// Validate checks the parameters against the table
func (s *Simulator) Validate(p Params) error {
	if p.Rounds < 1 || p.Rounds > MaxRounds {
		return fmt.Errorf(ErrMsgInvalidRounds, MaxRounds)
	}
	for label, stake := range p.Bets {
		if _, ok := s.table.Option(label); !ok {
			return fmt.Errorf("%w: "+ErrMsgUnknownLabel, domain.ErrUnknownBetOption, label)
		}
		if stake < 0 {
			return fmt.Errorf("%w: "+ErrMsgNegativeStake, domain.ErrInvalidAmount, label)
		}
	}
	return nil
}

// Run plays p.Rounds rounds with the same bets each round. Bonus decisions
// are left to the games' fallback draws, as when a live player never chooses.
func (s *Simulator) Run(ctx context.Context, p Params) (Report, error) {
	if err := s.Validate(p); err != nil {
		return Report{}, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = uint64(s.now().UnixNano())
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted, "rounds", p.Rounds, "seed", seed)
	start := s.now()

	bets := domain.NewBets(s.table.Labels())
	for label, stake := range p.Bets {
		bets[label] = stake
	}

	recorder := rng.NewRecorder(rng.NewSeeded(seed))
	resolvers := round.NewResolvers(s.table, recorder)

	rep := Report{
		Rounds:        p.Rounds,
		Seed:          seed,
		StakePerRound: bets.Total(),
		Hits:          make(map[domain.Label]int),
		BonusRounds:   make(map[domain.Label]int),
	}
	nets := make([]int64, 0, p.Rounds)

	for i := 0; i < p.Rounds; i++ {
		if i%ContextCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, fmt.Errorf("%s: %w", ErrContextCancelled, err)
			}
		}

		in := resolvers.Play(bets, nil, bonus.Choice{})
		in.Draws = recorder.Take()
		res := settlement.Settle(in)

		rep.TotalWagered += res.TotalBet
		rep.TotalReturned += res.RoundWinnings
		rep.Hits[in.Segment.Label]++
		if res.NetResult > 0 {
			rep.WinningRounds++
		}
		if res.RoundWinnings > rep.MaxWin {
			rep.MaxWin = res.RoundWinnings
		}
		if res.BonusPlayed {
			rep.BonusRounds[in.Segment.Label]++
			if d := EscalationDepth(in.Bonus.Details); d > rep.MaxEscalation {
				rep.MaxEscalation = d
			}
		}
		nets = append(nets, res.NetResult)

		if p.Sink != nil {
			rec := settlement.BuildRecord(uuid.New(), s.now(), in)
			if err := p.Sink.Accept(ctx, rec, rec.NetResult); err != nil {
				log.Warn(LogMsgSinkFailed, "round_id", rec.RoundID, "error", err)
			}
		}
	}

	rep.NetResult = rep.TotalReturned - rep.TotalWagered
	rep.RTP, rep.HouseEdge = returnToPlayer(rep.TotalReturned, rep.TotalWagered)
	rep.Net = summarise(nets)
	rep.Duration = s.now().Sub(start)

	log.Info(LogMsgSimulationFinished,
		"rounds", rep.Rounds,
		"rtp", rep.RTP.String(),
		"house_edge", rep.HouseEdge.String(),
		"duration", rep.Duration)
	return rep, nil
}

// EscalationDepth counts the boost draws taken before a bonus settled
func EscalationDepth(d domain.BonusDetails) int {
	switch {
	case d.Pachinko != nil && len(d.Pachinko.Drops) > 0:
		return len(d.Pachinko.Drops) - 1
	case d.CrazyTime != nil && len(d.CrazyTime.Spins) > 0:
		return len(d.CrazyTime.Spins) - 1
	}
	return 0
}

func returnToPlayer(returned, wagered int64) (decimal.Decimal, decimal.Decimal) {
	if wagered == 0 {
		return decimal.Zero, decimal.Zero
	}
	rtp := decimal.NewFromInt(returned).DivRound(decimal.NewFromInt(wagered), DefaultReportPlaces)
	return rtp, decimal.NewFromInt(1).Sub(rtp)
}

func summarise(values []int64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}

	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(len(values))),
		P50:    percentile(sorted, 50),
		P90:    percentile(sorted, 90),
		P99:    percentile(sorted, 99),
	}
}

// percentile uses the nearest-rank method on sorted values
func percentile(sorted []int64, p int) int64 {
	rank := int(math.Ceil(float64(p) / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
