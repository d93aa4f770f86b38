// Package activity runs the periodic idle-prevention cycle: one bounded
// pointer jiggle per interval, with the sleep-prevention assertion held for
// the lifetime of the run.
package activity

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guinetik/busycrab/internal/config"
	"github.com/guinetik/busycrab/internal/platform"
)

// PollInterval is how often the wait loop re-checks for shutdown. It bounds
// shutdown latency regardless of how long the configured interval is.
const PollInterval = 200 * time.Millisecond

// Runner owns the idle-prevention lifecycle and the jiggle cycle. It shares
// nothing with the animation side except the cancellation it is stopped
// with. A Runner is single-use: once stopped it stays stopped.
type Runner struct {
	adapter  platform.Adapter
	interval time.Duration
	wiggle   int

	mu      sync.Mutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	release sync.Once

	// Counters are atomic so tests and status views can read them while
	// the loop runs.
	jiggles  int64
	failures int64
}

// NewRunner builds a runner from the validated configuration.
func NewRunner(adapter platform.Adapter, cfg config.Config) *Runner {
	return &Runner{
		adapter:  adapter,
		interval: cfg.Interval(),
		wiggle:   cfg.WigglePixels,
	}
}

// IsRunning reports whether the loop is active.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Jiggles returns the number of completed pointer injections.
func (r *Runner) Jiggles() int64 {
	return atomic.LoadInt64(&r.jiggles)
}

// Failures returns the number of failed pointer injections.
func (r *Runner) Failures() int64 {
	return atomic.LoadInt64(&r.failures)
}

// Start acquires the sleep-prevention assertion and launches the jiggle
// loop. A failed assertion is logged and the runner continues in
// jiggle-only mode; pointer movement still resets idle timers on most
// platforms.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return errors.New("activity runner already running")
	}

	if err := r.adapter.PreventSleep(); err != nil {
		log.Printf("activity: sleep prevention unavailable, continuing with jiggle only: %v", err)
	}

	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.done = make(chan struct{})
	r.running = true

	go r.loop(r.ctx, r.done)

	log.Printf("activity: started (interval=%s wiggle=%dpx)", r.interval, r.wiggle)
	return nil
}

// loop waits out each interval in PollInterval steps and jiggles once per
// elapsed interval. Observing cancellation always wins over a due jiggle,
// so no final jiggle happens on the way out.
func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer r.releaseSleep()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	direction := 1
	next := time.Now().Add(r.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if now.Before(next) {
				continue
			}
			next = next.Add(r.interval)
			r.jiggle(direction)
			direction = -direction
		}
	}
}

// jiggle issues one pointer injection. The delta alternates sign between
// cycles so the cursor drifts nowhere over time. A zero wiggle distance
// still makes the call with a zero delta: timing and logging stay uniform
// across configurations.
func (r *Runner) jiggle(direction int) {
	dx := r.wiggle * direction

	if err := r.adapter.MovePointer(dx, 0); err != nil {
		atomic.AddInt64(&r.failures, 1)
		log.Printf("activity: pointer injection failed: %v", err)
		return
	}

	n := atomic.AddInt64(&r.jiggles, 1)
	log.Printf("activity: jiggle #%d (dx=%d)", n, dx)
}

// Stop shuts the loop down with a default timeout.
func (r *Runner) Stop() error {
	return r.StopWithTimeout(5 * time.Second)
}

// StopWithTimeout cancels the loop, waits for it to observe the
// cancellation, and releases the sleep assertion. A loop that fails to
// stop within the timeout indicates a defect and is reported as an error.
func (r *Runner) StopWithTimeout(timeout time.Duration) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(timeout):
		log.Printf("activity: loop did not stop within %s", timeout)
		return errors.New("activity loop did not stop in time")
	}

	// The loop releases on exit; this covers paths where it never ran.
	r.releaseSleep()
	log.Printf("activity: stopped after %d jiggles (%d failures)", r.Jiggles(), r.Failures())
	return nil
}

func (r *Runner) releaseSleep() {
	r.release.Do(func() {
		if err := r.adapter.AllowSleep(); err != nil {
			log.Printf("activity: releasing sleep assertion failed: %v", err)
		}
	})
}
