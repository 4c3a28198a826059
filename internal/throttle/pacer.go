// Package throttle provides pacing between successive calls to the AI
// collaborator so batch scoring stays under upstream rate limits. The pacing
// policy is injected into the batch orchestrator instead of a hard-coded
// sleep.
package throttle

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the default pause between successive AI calls.
const DefaultInterval = 100 * time.Millisecond

// Pacer gates successive calls. Wait blocks until the next call is allowed or
// the context is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// IntervalPacer enforces a fixed minimum delay between consecutive calls.
// The first call passes immediately.
type IntervalPacer struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewIntervalPacer creates a pacer with the given inter-call delay.
// Non-positive intervals fall back to the default.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &IntervalPacer{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous permitted call.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	var sleep time.Duration
	if !p.last.IsZero() {
		if elapsed := now.Sub(p.last); elapsed < p.interval {
			sleep = p.interval - elapsed
		}
	}
	p.last = now.Add(sleep)
	p.mu.Unlock()

	if sleep <= 0 {
		return nil
	}

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// TokenBucketPacer allows bursts up to a capacity while refilling tokens at a
// steady rate. When the bucket is empty, Wait blocks until a token refills.
type TokenBucketPacer struct {
	capacity   int
	refillRate float64 // tokens per second

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewTokenBucketPacer creates a bucket that starts full.
func NewTokenBucketPacer(capacity int, refillRate float64) *TokenBucketPacer {
	if capacity < 1 {
		capacity = 1
	}
	if refillRate <= 0 {
		refillRate = 1
	}
	return &TokenBucketPacer{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Wait consumes a token, blocking until one is available or the context is
// done.
func (p *TokenBucketPacer) Wait(ctx context.Context) error {
	for {
		p.mu.Lock()
		p.refill()
		if p.tokens >= 1.0 {
			p.tokens -= 1.0
			p.mu.Unlock()
			return nil
		}
		needed := 1.0 - p.tokens
		sleep := time.Duration(needed / p.refillRate * float64(time.Second))
		p.mu.Unlock()

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refill credits tokens for the time elapsed since the last refill, capped at
// capacity. Caller must hold the mutex.
func (p *TokenBucketPacer) refill() {
	now := time.Now()
	elapsed := now.Sub(p.lastRefill)
	p.tokens += elapsed.Seconds() * p.refillRate
	if p.tokens > float64(p.capacity) {
		p.tokens = float64(p.capacity)
	}
	p.lastRefill = now
}
