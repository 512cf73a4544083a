package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/jkrebs-tr/appsync-go/appsync"
)

// MaxRPS caps the rate and burst a Limiter accepts.
const MaxRPS = 1_000_000

// Limiter is a token bucket refilled at a fixed rate.
type Limiter struct {
	tokens    chan struct{}
	interval  time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// New returns a Limiter allowing rps calls per second with a burst of rps.
// Values below 1 are treated as 1 and values above MaxRPS as MaxRPS. Call
// Close to stop the refill goroutine.
func New(rps int) *Limiter {
	rps = max(1, min(rps, MaxRPS))
	l := &Limiter{
		tokens:   make(chan struct{}, rps),
		interval: time.Second / time.Duration(rps),
		done:     make(chan struct{}),
	}

	for range rps {
		l.tokens <- struct{}{}
	}

	go l.refill()

	return l
}

func (l *Limiter) refill() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			select {
			case l.tokens <- struct{}{}:
			default:
				// Bucket is full
			}
		}
	}
}

// Wait blocks until a token is available or ctx is done. A ctx that is
// already done never takes a token.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-l.tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

type executor struct {
	next    appsync.Executor
	limiter *Limiter
}

// NewExecutor throttles calls to next through l.
//
// Example usage:
//
//	limiter := ratelimit.New(10)
//	defer limiter.Close()
//	exec := ratelimit.NewExecutor(http.NewExecutor(nil), limiter)
func NewExecutor(next appsync.Executor, l *Limiter) appsync.Executor {
	return &executor{next: next, limiter: l}
}

func (e *executor) Execute(ctx context.Context, d *appsync.Descriptor) (*appsync.RawResponse, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return e.next.Execute(ctx, d)
}
