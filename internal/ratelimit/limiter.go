// Package ratelimit throttles outbound calls to the geocoding provider.
//
// A Limiter applies a fixed delay before every call and caps the number of calls admitted in any
// rolling minute. When the provider itself reports that the quota is exhausted, Penalize pauses
// for a longer cooldown and starts a fresh window.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Window is the length of the rolling window the per-minute cap applies to.
const Window = time.Minute

// Config holds the throttling parameters.
type Config struct {
	Delay        time.Duration // Delay is applied before every admitted call.
	MaxPerMinute int           // MaxPerMinute caps admissions per rolling minute. Zero disables the cap.
	Cooldown     time.Duration // Cooldown is the pause after the provider reports quota exhaustion.
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Delay:        time.Second,
		MaxPerMinute: 30,
		Cooldown:     time.Minute,
	}
}

// WaitObserver is notified about every suspension the limiter performs.
type WaitObserver func(reason string, d time.Duration)

// Limiter gates outbound calls. Acquire and Penalize are serialized, so concurrent callers queue
// up behind each other and never lose an admission.
type Limiter struct {
	cfg     Config
	clock   Clock
	log     *slog.Logger
	observe WaitObserver

	gate sync.Mutex // held for the whole of Acquire/Penalize, suspensions included

	mu       sync.Mutex
	admitted []time.Time // admission times inside the window, oldest first
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(l *Limiter) { l.clock = clock }
}

// WithWaitObserver registers a callback invoked for every suspension.
func WithWaitObserver(fn WaitObserver) Option {
	return func(l *Limiter) { l.observe = fn }
}

// New creates a limiter with the given configuration.
func New(cfg Config, log *slog.Logger, opts ...Option) *Limiter {
	lim := &Limiter{
		cfg:   cfg,
		clock: SystemClock{},
		log:   log,
	}
	for _, opt := range opts {
		opt(lim)
	}

	log.Info("Rate limiter initialized",
		"delay", cfg.Delay, "max_per_minute", cfg.MaxPerMinute, "cooldown", cfg.Cooldown)

	return lim
}

// Acquire blocks until the next outbound call may be issued and records it.
// It only fails when ctx is done while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.gate.Lock()
	defer l.gate.Unlock()

	now := l.clock.Now()
	l.prune(now)

	if l.cfg.MaxPerMinute > 0 {
		if wait := l.untilSlotFree(now); wait > 0 {
			l.log.InfoContext(ctx, "Rate limit reached, waiting for the window to move", "wait", wait)
			if err := l.sleep(ctx, "window", wait); err != nil {
				return err
			}
			l.prune(l.clock.Now())
		}
	}

	if err := l.sleep(ctx, "delay", l.cfg.Delay); err != nil {
		return err
	}

	l.mu.Lock()
	l.admitted = append(l.admitted, l.clock.Now())
	count := len(l.admitted)
	l.mu.Unlock()

	l.log.DebugContext(ctx, "API request admitted", "count", count, "max_per_minute", l.cfg.MaxPerMinute)

	return nil
}

// Penalize pauses for the cooldown after the provider rejected a call for quota reasons,
// then clears the window.
func (l *Limiter) Penalize(ctx context.Context) error {
	l.gate.Lock()
	defer l.gate.Unlock()

	l.log.WarnContext(ctx, "Provider quota exceeded, cooling down", "cooldown", l.cfg.Cooldown)
	if err := l.sleep(ctx, "cooldown", l.cfg.Cooldown); err != nil {
		return err
	}

	l.mu.Lock()
	l.admitted = l.admitted[:0]
	l.mu.Unlock()

	return nil
}

// Count returns the number of calls admitted in the current window.
func (l *Limiter) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.clock.Now().Add(-Window)
	count := 0
	for _, at := range l.admitted {
		if at.After(cutoff) {
			count++
		}
	}

	return count
}

func (l *Limiter) String() string {
	return fmt.Sprintf("Limiter{delay=%s, max_per_minute=%d, cooldown=%s}",
		l.cfg.Delay, l.cfg.MaxPerMinute, l.cfg.Cooldown)
}

// prune drops admissions that left the window.
func (l *Limiter) prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-Window)
	idx := 0
	for idx < len(l.admitted) && !l.admitted[idx].After(cutoff) {
		idx++
	}
	l.admitted = append(l.admitted[:0], l.admitted[idx:]...)
}

// untilSlotFree returns how long to wait before one more call fits into the window.
func (l *Limiter) untilSlotFree(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.admitted) < l.cfg.MaxPerMinute {
		return 0
	}

	oldest := l.admitted[len(l.admitted)-l.cfg.MaxPerMinute]
	return oldest.Add(Window).Sub(now)
}

func (l *Limiter) sleep(ctx context.Context, reason string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if l.observe != nil {
		l.observe(reason, d)
	}
	if err := l.clock.Sleep(ctx, d); err != nil {
		return fmt.Errorf("rate limiter %s wait interrupted: %w", reason, err)
	}

	return nil
}
