// Package scheduler runs delayed callbacks for round phase transitions.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelShow_Go/internal/logger"
)

// Timer is a pending callback
type Timer interface {
	// Stop cancels the callback. It reports false if it already ran or was cancelled.
	Stop() bool
}

// Scheduler schedules and cancels delayed callbacks
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
	// Shutdown cancels every pending callback and waits for running ones
	Shutdown(ctx context.Context) error
}

// TimerScheduler runs callbacks on time.AfterFunc timers tracked by id
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

// NewTimerScheduler creates a wall-clock scheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[uuid.UUID]*time.Timer)}
}

type timerHandle struct {
	s  *TimerScheduler
	id uuid.UUID
}

func (h timerHandle) Stop() bool {
	return h.s.stopTimer(h.id)
}

// After schedules fn to run once d has elapsed
func (s *TimerScheduler) After(d time.Duration, fn func()) Timer {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return timerHandle{s: s, id: id}
	}

	s.wg.Add(1)
	s.timers[id] = time.AfterFunc(d, func() {
		if !s.removeTimer(id) {
			return
		}
		defer s.wg.Done()
		fn()
	})
	return timerHandle{s: s, id: id}
}

// removeTimer claims a fired timer. It reports false if the timer was cancelled first.
func (s *TimerScheduler) removeTimer(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

func (s *TimerScheduler) stopTimer(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, id)
	s.wg.Done()
	return true
}

// Pending returns the number of callbacks waiting to fire
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown cancels every pending timer and waits for in-flight callbacks
func (s *TimerScheduler) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.mu.Lock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
		s.wg.Done()
		log.Debug(LogMsgTimerCancelled, "timer_id", id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
