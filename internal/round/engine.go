// Package round runs the wagering round state machine:
// BETTING -> SPINNING -> {NUMBER_RESULT | PRE_BONUS -> BONUS_<kind>} -> RESULT -> BETTING.
//
// The Engine is the only owner of bets, the balance and forced overrides. Every
// phase transition is a scheduler callback; all state changes happen under one
// mutex, and events are published after it is released.
package round

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/bonus"
	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/scheduler"
	"github.com/osse101/WheelShow_Go/internal/settlement"
	"github.com/osse101/WheelShow_Go/internal/table"
	"github.com/osse101/WheelShow_Go/internal/wheel"
)

// Config holds the engine's starting balance and phase timings
type Config struct {
	StartingBalance     int64
	BettingSeconds      int
	TickInterval        time.Duration
	SpinDuration        time.Duration
	PreBonusDuration    time.Duration
	BonusDecisionWindow time.Duration
	ResultDuration      time.Duration
}

// DefaultConfig returns the standard show timings
func DefaultConfig() Config {
	return Config{
		StartingBalance:     DefaultStartingBalance,
		BettingSeconds:      DefaultBettingSeconds,
		TickInterval:        DefaultTickInterval,
		SpinDuration:        DefaultSpinDuration,
		PreBonusDuration:    DefaultPreBonusDuration,
		BonusDecisionWindow: DefaultBonusDecisionWindow,
		ResultDuration:      DefaultResultDuration,
	}
}

// Option configures an Engine
type Option func(*Engine)

// WithSinks registers round sinks
func WithSinks(sinks ...Sink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, sinks...) }
}

// WithPublisher sets where phase and countdown events go
func WithPublisher(pub event.Publisher) Option {
	return func(e *Engine) { e.pub = pub }
}

// WithClock overrides the record timestamp source
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides round id generation
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(e *Engine) { e.newID = fn }
}

// step is a pending phase transition
type step int

const (
	stepTick step = iota
	stepAfterSpin
	stepStartBonus
	stepBonusTimeout
	stepNextRound
)

type betEntry struct {
	label  domain.Label
	amount int64
}

// Engine is the round state machine
type Engine struct {
	table     *table.Table
	recorder  *rng.Recorder
	resolvers Resolvers
	sched     scheduler.Scheduler
	pub       event.Publisher
	sinks     []Sink
	cfg       Config
	now       func() time.Time
	newID     func() uuid.UUID

	mu       sync.Mutex
	ctx      context.Context
	started  bool
	closed   bool
	phase    domain.Phase
	paused   bool
	deferred *step
	gen      uint64
	timer    scheduler.Timer

	roundID   uuid.UUID
	countdown int
	balance   int64
	held      int64
	bets      domain.Bets
	history   []betEntry
	overrides domain.Overrides

	applied domain.Overrides
	segment *domain.Segment
	topSlot *domain.TopSlotResult
	session bonus.Session
	prompt  *bonus.Prompt
	last    *domain.RoundRecord

	outbox    []func(ctx context.Context)
	nextBatch uint64

	// flushMu guards serving: the next batch allowed to deliver
	flushMu   sync.Mutex
	flushCond *sync.Cond
	serving   uint64
}

// NewEngine creates an engine over the table. Every draw goes through src,
// which is wrapped in a recorder so each record carries its draw log.
func NewEngine(t *table.Table, src rng.Source, sched scheduler.Scheduler, cfg Config, opts ...Option) *Engine {
	rec := rng.NewRecorder(src)
	e := &Engine{
		table:     t,
		recorder:  rec,
		resolvers: NewResolvers(t, rec),
		sched:     sched,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.New,
		ctx:       context.Background(),
		phase:     domain.PhaseBetting,
		balance:   cfg.StartingBalance,
		bets:      domain.NewBets(t.Labels()),
		countdown: cfg.BettingSeconds,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.roundID = e.newID()
	e.flushCond = sync.NewCond(&e.flushMu)
	return e
}

// Start enters the first BETTING phase and starts the countdown
func (e *Engine) Start(ctx context.Context) {
	e.do(func() bool {
		if e.started || e.closed {
			return false
		}
		e.started = true
		e.ctx = context.WithoutCancel(ctx)
		logger.FromContext(ctx).Info(LogMsgEngineStarted, "round_id", e.roundID, "balance", e.balance)
		e.enterBetting(domain.PhaseBetting)
		return true
	})
}

// Shutdown cancels every pending transition and stops the scheduler
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.gen++
	e.deferred = nil
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgEngineStopped)
	return e.sched.Shutdown(ctx)
}

// PlaceBet holds amount on label. It reports false without error when bets
// are not being accepted (outside BETTING, or paused).
func (e *Engine) PlaceBet(ctx context.Context, label domain.Label, amount int64) (bool, error) {
	var err error
	ok := e.do(func() bool {
		if !e.accepting() {
			return false
		}
		if _, known := e.table.Option(label); !known {
			err = fmt.Errorf("%s: %w", ErrContextPlaceBet, domain.ErrUnknownBetOption)
			return false
		}
		if amount <= 0 {
			err = fmt.Errorf("%s: %w", ErrContextPlaceBet, domain.ErrInvalidAmount)
			return false
		}
		if amount > e.balance-e.held {
			logger.FromContext(ctx).Info(LogMsgBetRejected, "label", label, "amount", amount, "available", e.balance-e.held)
			err = fmt.Errorf("%s: %w", ErrContextPlaceBet, domain.ErrInsufficientFunds)
			return false
		}

		e.bets[label] += amount
		e.held += amount
		e.history = append(e.history, betEntry{label: label, amount: amount})
		logger.FromContext(ctx).Debug(LogMsgBetPlaced, "label", label, "amount", amount, "held", e.held)
		return true
	})
	return ok, err
}

// ClearBets releases every stake of the current round
func (e *Engine) ClearBets(ctx context.Context) bool {
	return e.do(func() bool {
		if !e.accepting() {
			return false
		}
		e.bets = domain.NewBets(e.table.Labels())
		e.history = nil
		e.held = 0
		logger.FromContext(ctx).Debug(LogMsgBetsCleared)
		return true
	})
}

// UndoLastBet releases the most recent stake. It reports false when there
// is nothing to undo.
func (e *Engine) UndoLastBet(ctx context.Context) bool {
	return e.do(func() bool {
		if !e.accepting() || len(e.history) == 0 {
			return false
		}
		last := e.history[len(e.history)-1]
		e.history = e.history[:len(e.history)-1]
		e.bets[last.label] -= last.amount
		e.held -= last.amount
		logger.FromContext(ctx).Debug(LogMsgBetUndone, "label", last.label, "amount", last.amount)
		return true
	})
}

// SetForcedOutcome merges one-shot overrides for the next spin
func (e *Engine) SetForcedOutcome(ctx context.Context, o domain.Overrides) bool {
	return e.do(func() bool {
		if !e.accepting() {
			return false
		}
		e.overrides.Merge(o)
		logger.FromContext(ctx).Info(LogMsgForcedOutcomeSet, "overrides", e.overrides)
		return true
	})
}

// Skip ends the countdown and spins now
func (e *Engine) Skip(ctx context.Context) bool {
	return e.do(func() bool {
		if !e.started || !e.accepting() {
			return false
		}
		e.spin()
		return true
	})
}

// SetPaused freezes or resumes the machine. A transition that came due while
// paused runs on resume.
func (e *Engine) SetPaused(ctx context.Context, paused bool) bool {
	return e.do(func() bool {
		if e.closed || e.paused == paused {
			return false
		}
		e.paused = paused
		logger.FromContext(ctx).Info(LogMsgPauseToggled, "paused", paused, "phase", e.phase)
		e.emitPhaseFrom(e.phase)

		if !paused && e.deferred != nil {
			s := *e.deferred
			e.deferred = nil
			if s == stepTick {
				e.schedule(e.cfg.TickInterval, stepTick)
			} else {
				e.advance(s)
			}
		}
		return true
	})
}

// ChooseBonus submits the player's decision for the running bonus, which
// resolves immediately
func (e *Engine) ChooseBonus(ctx context.Context, choice bonus.Choice) bool {
	return e.do(func() bool {
		if e.paused || e.closed || !e.phase.IsBonus() || e.session == nil {
			return false
		}
		e.resolveBonus(choice)
		return true
	})
}

// Balance returns the settled balance
func (e *Engine) Balance() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

// State returns a copy of everything the presentation layer shows
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		RoundID:    e.roundID.String(),
		Phase:      e.phase,
		Paused:     e.paused,
		Countdown:  e.countdown,
		Balance:    e.balance,
		Held:       e.held,
		Available:  e.balance - e.held,
		Bets:       e.bets.Clone(),
		TotalBet:   e.bets.Total(),
		BetOptions: e.table.BetOptions(),
	}
	if !e.overrides.IsZero() {
		o := domain.Overrides{}
		o.Merge(e.overrides)
		s.Overrides = &o
	}
	if e.segment != nil {
		seg := *e.segment
		s.Segment = &seg
	}
	if e.topSlot != nil {
		top := *e.topSlot
		s.TopSlot = &top
	}
	if e.prompt != nil {
		p := *e.prompt
		s.Prompt = &p
	}
	if e.last != nil {
		rec := *e.last
		s.LastRecord = &rec
	}
	return s
}

// accepting reports whether bet and override mutations are allowed.
// Caller must hold the mutex.
func (e *Engine) accepting() bool {
	return !e.closed && !e.paused && e.phase == domain.PhaseBetting
}

// do runs fn under the mutex and then flushes queued events. Batches are
// delivered in the order their critical sections ran, so sinks and
// subscribers never see a later state change before an earlier one. They must
// not call back into engine mutations synchronously.
func (e *Engine) do(fn func() bool) bool {
	e.mu.Lock()
	ok := fn()
	out := e.outbox
	e.outbox = nil
	ctx := e.ctx
	batch := e.nextBatch
	if len(out) > 0 {
		e.nextBatch++
	}
	e.mu.Unlock()

	if len(out) > 0 {
		e.flush(ctx, batch, out)
	}
	return ok
}

// flush waits for every earlier batch, then sends this one
func (e *Engine) flush(ctx context.Context, batch uint64, out []func(context.Context)) {
	e.flushMu.Lock()
	for e.serving != batch {
		e.flushCond.Wait()
	}
	e.flushMu.Unlock()

	defer func() {
		e.flushMu.Lock()
		e.serving++
		e.flushMu.Unlock()
		e.flushCond.Broadcast()
	}()
	for _, send := range out {
		send(ctx)
	}
}

// schedule arms the single pending transition. Caller must hold the mutex.
func (e *Engine) schedule(d time.Duration, s step) {
	if e.timer != nil {
		e.timer.Stop()
	}
	gen := e.gen
	e.timer = e.sched.After(d, func() { e.fire(gen, s) })
}

// fire is the scheduler callback. Stale generations are ignored.
func (e *Engine) fire(gen uint64, s step) {
	e.do(func() bool {
		if e.closed || gen != e.gen {
			return false
		}
		e.timer = nil
		if e.paused {
			e.deferred = &s
			logger.FromContext(e.ctx).Debug(LogMsgTransitionDeferred, "phase", e.phase)
			return false
		}
		e.advance(s)
		return true
	})
}

// advance performs one transition. Caller must hold the mutex.
func (e *Engine) advance(s step) {
	switch s {
	case stepTick:
		e.tick()
	case stepAfterSpin:
		e.afterSpin()
	case stepStartBonus:
		e.startBonus()
	case stepBonusTimeout:
		e.resolveBonus(bonus.Choice{})
	case stepNextRound:
		e.nextRound()
	}
}

func (e *Engine) enterBetting(previous domain.Phase) {
	e.phase = domain.PhaseBetting
	e.countdown = e.cfg.BettingSeconds
	e.emitPhaseFrom(previous)
	if e.countdown <= 0 {
		e.spin()
		return
	}
	e.schedule(e.cfg.TickInterval, stepTick)
}

func (e *Engine) tick() {
	e.countdown--
	e.emitCountdown()
	if e.countdown <= 0 {
		e.spin()
		return
	}
	e.schedule(e.cfg.TickInterval, stepTick)
}

// spin fixes the stakes and draws the segment and top slot
func (e *Engine) spin() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.countdown = 0
	e.recorder.Take()

	seg, top, res, applied := e.resolvers.Spin(&e.overrides)
	if res == wheel.ResolutionFallback {
		logger.FromContext(e.ctx).Warn(LogMsgForcedFallback, "round_id", e.roundID, "forced", applied.SegmentLabel)
	}
	e.applied = applied
	e.segment = &seg
	e.topSlot = &top

	e.setPhase(domain.PhaseSpinning)
	e.schedule(e.cfg.SpinDuration, stepAfterSpin)
}

func (e *Engine) afterSpin() {
	if !e.segment.IsBonus() {
		e.settle(nil, domain.PhaseNumberResult)
		return
	}
	if settlement.BonusStake(e.bets, *e.segment) == 0 {
		logger.FromContext(e.ctx).Info(LogMsgBonusSkipped, "round_id", e.roundID, "bonus", e.segment.Label)
		e.settle(nil, domain.PhaseResult)
		return
	}
	e.setPhase(domain.PhasePreBonus)
	e.schedule(e.cfg.PreBonusDuration, stepStartBonus)
}

func (e *Engine) startBonus() {
	session, ok := e.resolvers.StartBonus(e.bets, *e.segment, *e.topSlot)
	if !ok {
		logger.FromContext(e.ctx).Error(LogMsgMissingBonusGame, "label", e.segment.Label)
		e.settle(nil, domain.PhaseResult)
		return
	}
	e.session = session
	p := session.Prompt()
	e.prompt = &p

	logger.FromContext(e.ctx).Info(LogMsgBonusStarted, "round_id", e.roundID, "bonus", e.segment.Label, "stake", e.bets[e.segment.Label])
	e.setPhase(domain.BonusPhase(e.segment.Label))
	e.schedule(e.cfg.BonusDecisionWindow, stepBonusTimeout)
}

func (e *Engine) resolveBonus(choice bonus.Choice) {
	outcome := e.session.Resolve(choice)
	e.session = nil
	logger.FromContext(e.ctx).Info(LogMsgBonusResolved, "round_id", e.roundID, "bonus", outcome.Details.Kind, "winnings", outcome.Winnings)
	e.settle(&outcome, domain.PhaseResult)
}

// settle builds the round record, applies the balance delta and hands the
// record to every sink
func (e *Engine) settle(outcome *domain.BonusOutcome, phase domain.Phase) {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	rec := settlement.BuildRecord(e.roundID, e.now(), settlement.Input{
		Bets:      e.bets,
		Segment:   *e.segment,
		TopSlot:   *e.topSlot,
		Bonus:     outcome,
		Overrides: &e.applied,
		Draws:     e.recorder.Take(),
	})

	e.balance += rec.NetResult
	e.held = 0
	e.last = &rec

	logger.FromContext(e.ctx).Info(LogMsgRoundSettled,
		"round_id", rec.RoundID,
		"segment", rec.WinningSegment.Label,
		"total_bet", rec.TotalBet,
		"winnings", rec.RoundWinnings,
		"net", rec.NetResult,
		"balance", e.balance)

	sinks := e.sinks
	e.outbox = append(e.outbox, func(ctx context.Context) {
		for _, s := range sinks {
			if err := s.Accept(ctx, rec, rec.NetResult); err != nil {
				logger.FromContext(ctx).Warn(LogMsgSinkFailed, "round_id", rec.RoundID, "error", err)
			}
		}
	})

	e.setPhase(phase)
	e.schedule(e.cfg.ResultDuration, stepNextRound)
}

// nextRound clears the table and opens betting for a fresh round
func (e *Engine) nextRound() {
	previous := e.phase
	e.gen++
	e.roundID = e.newID()
	e.bets = domain.NewBets(e.table.Labels())
	e.history = nil
	e.held = 0
	e.applied = domain.Overrides{}
	e.segment = nil
	e.topSlot = nil
	e.session = nil
	e.prompt = nil
	e.enterBetting(previous)
}

func (e *Engine) setPhase(p domain.Phase) {
	previous := e.phase
	e.phase = p
	e.emitPhaseFrom(previous)
}

// emitPhaseFrom queues a phase change event. Caller must hold the mutex.
func (e *Engine) emitPhaseFrom(previous domain.Phase) {
	logger.FromContext(e.ctx).Debug(LogMsgPhaseChanged, "round_id", e.roundID, "phase", e.phase, "previous", previous)
	if e.pub == nil {
		return
	}
	payload := event.PhaseChangedPayloadV1{
		RoundID:   e.roundID.String(),
		Phase:     e.phase,
		Previous:  previous,
		Paused:    e.paused,
		Countdown: e.countdown,
		Timestamp: e.now().Unix(),
	}
	if e.segment != nil {
		seg := *e.segment
		payload.Segment = &seg
	}
	if e.topSlot != nil {
		top := *e.topSlot
		payload.TopSlot = &top
	}
	if e.prompt != nil && e.phase.IsBonus() {
		payload.Prompt = *e.prompt
	}
	e.publish(event.NewPhaseChangedEvent(payload))
}

func (e *Engine) emitCountdown() {
	if e.pub == nil {
		return
	}
	e.publish(event.NewCountdownEvent(e.roundID.String(), e.countdown))
}

func (e *Engine) publish(evt event.Event) {
	pub := e.pub
	e.outbox = append(e.outbox, func(ctx context.Context) {
		if err := pub.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	})
}
