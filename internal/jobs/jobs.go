// Package jobs schedules recurring background work (round log retention,
// engine gauges) onto the worker pool.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	cron *cron.Cron
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates a new scheduler that runs jobs in UTC
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		cron: cron.New(cron.WithLocation(time.UTC)),
		quit: make(chan struct{}),
	}
}

// Every registers a job to run at a fixed interval
func (s *Scheduler) Every(name string, interval time.Duration, job worker.Job) {
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Cron registers a job on a standard five-field cron expression
func (s *Scheduler) Cron(name, spec string, job worker.Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.enqueue(name, job) }); err != nil {
		logger.Error(LogMsgInvalidCronExpr, "job", name, "spec", spec, "error", err)
		return fmt.Errorf("%s: %w", ErrContextCronSchedule, err)
	}
	logger.Info(LogMsgJobScheduled, "job", name, "cron", spec)
	return nil
}

// Start starts the cron runner. Interval jobs start as soon as they are registered.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs. Jobs already handed to the pool keep running.
func (s *Scheduler) Stop(ctx context.Context) {
	s.once.Do(func() {
		close(s.quit)
		cronDone := s.cron.Stop()
		s.wg.Wait()
		select {
		case <-cronDone.Done():
		case <-ctx.Done():
		}
		logger.FromContext(ctx).Info(LogMsgJobsStopped)
	})
}

func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.pool.TryEnqueue(job) {
		logger.Warn(LogMsgJobDropped, "job", name)
		return
	}
	logger.Debug(LogMsgJobEnqueued, "job", name)
}
