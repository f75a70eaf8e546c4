package flavor

import (
	"context"
	"time"

	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/jobs"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/worker"
)

// Notifier generates a message for each completed round off the engine path
// and publishes it as a FlavorTextReady event.
type Notifier struct {
	gen     Generator
	pool    jobs.Enqueuer
	pub     event.Publisher
	timeout time.Duration
}

// NewNotifier creates a notifier. gen may be nil, in which case every round
// gets the fallback message.
func NewNotifier(gen Generator, pool jobs.Enqueuer, pub event.Publisher) *Notifier {
	return &Notifier{gen: gen, pool: pool, pub: pub, timeout: DefaultTimeout}
}

// WithTimeout bounds each generator call
func (n *Notifier) WithTimeout(d time.Duration) *Notifier {
	if d > 0 {
		n.timeout = d
	}
	return n
}

// Subscribe registers the notifier for completed rounds
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RoundCompleted, n.HandleRoundCompleted)
}

// HandleRoundCompleted queues a generation job for the round. If the pool is
// saturated the fallback is published straight away.
func (n *Notifier) HandleRoundCompleted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	roundID := p.Record.RoundID.String()
	req := NewRequest(p.Record)

	job := worker.JobFunc(func(jobCtx context.Context) error {
		return n.Produce(jobCtx, roundID, req)
	})
	if !n.pool.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgFlavorJobDropped, "round_id", roundID)
		return n.publish(ctx, roundID, Fallback(req), true)
	}
	return nil
}

// Produce generates and publishes the message for one round
func (n *Notifier) Produce(ctx context.Context, roundID string, req Request) error {
	log := logger.FromContext(ctx)

	msg, fallback := n.generate(ctx, req)
	if fallback {
		log.Info(LogMsgFlavorRequestFailed, "round_id", roundID)
	} else {
		log.Debug(LogMsgFlavorGenerated, "round_id", roundID)
	}
	return n.publish(ctx, roundID, msg, fallback)
}

func (n *Notifier) generate(ctx context.Context, req Request) (string, bool) {
	if n.gen == nil {
		return Fallback(req), true
	}

	genCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	msg, err := n.gen.Generate(genCtx, req)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgFlavorRequestFailed, "error", err)
		return Fallback(req), true
	}
	return msg, false
}

func (n *Notifier) publish(ctx context.Context, roundID, msg string, fallback bool) error {
	if err := n.pub.Publish(ctx, event.NewFlavorTextEvent(roundID, msg, fallback)); err != nil {
		logger.FromContext(ctx).Error(LogMsgFlavorPublishFailed, "round_id", roundID, "error", err)
		return err
	}
	return nil
}
