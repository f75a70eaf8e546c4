package server

import (
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientLimiter counts requests and failed logins per client IP in fixed
// windows. Only the most recently seen clients are tracked.
type ClientLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients *lru.Cache[string, *clientWindow]
	now     func() time.Time
}

// NewClientLimiter allows limit requests per IP per window. A limit of zero
// disables blocking; failed logins are still tracked.
func NewClientLimiter(limit int, window time.Duration) *ClientLimiter {
	clients, err := lru.New[string, *clientWindow](MaxTrackedClients)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &ClientLimiter{
		limit:   limit,
		window:  window,
		clients: clients,
		now:     time.Now,
	}
}

// caller holds mu
func (l *ClientLimiter) windowFor(ip string) *clientWindow {
	now := l.now()
	w, ok := l.clients.Get(ip)
	if !ok || now.Sub(w.start) >= l.window {
		w = &clientWindow{start: now}
		l.clients.Add(ip, w)
	}
	return w
}

// Allow records a request from ip and reports whether it is within budget
func (l *ClientLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.windowFor(ip)
	w.requests++
	if l.limit <= 0 || w.requests <= l.limit {
		return true
	}
	if (w.requests-l.limit)%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate,
			"ip", ip,
			"count_in_window", w.requests,
			"window", l.window)
	}
	return false
}

// RecordFailedAuth counts a rejected API key from ip
func (l *ClientLimiter) RecordFailedAuth(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.windowFor(ip)
	w.failedAuth++
	if w.failedAuth >= FailedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", w.failedAuth)
	}
}

// FailedAuth is the failed login count for ip in its current window
func (l *ClientLimiter) FailedAuth(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.clients.Peek(ip); ok && l.now().Sub(w.start) < l.window {
		return w.failedAuth
	}
	return 0
}
