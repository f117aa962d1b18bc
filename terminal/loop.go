package terminal

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Loop serializes all simulation callbacks onto the single goroutine that
// calls Run, preserving the tick/tap no-reentrancy contract: callbacks
// never execute concurrently with each other or with themselves. Timers
// fire on their own goroutines but only enqueue; execution always happens
// on the Run goroutine in post order.
type Loop struct {
	fns      chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

func NewLoop() *Loop {
	return &Loop{
		fns:      make(chan func(), 64),
		stopChan: make(chan struct{}),
	}
}

// After schedules fn on the loop goroutine once d has elapsed.
// Fire-and-forget one-shot: there is no cancellation beyond stopping the
// loop, at which point pending callbacks are dropped.
func (l *Loop) After(d time.Duration, fn func()) {
	if d <= 0 {
		l.Post(fn)
		return
	}
	time.AfterFunc(d, func() { l.Post(fn) })
}

// Post enqueues fn for execution on the loop goroutine. Posts after Stop
// are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.fns <- fn:
	case <-l.stopChan:
	}
}

// Run executes queued callbacks until Stop. Must be called from exactly
// one goroutine.
func (l *Loop) Run() error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("terminal: loop already running")
	}
	defer l.running.Store(false)
	for {
		select {
		case fn := <-l.fns:
			fn()
		case <-l.stopChan:
			return nil
		}
	}
}

// Stop terminates Run. Safe to call from any goroutine, any number of
// times.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.stopChan:
		return true
	default:
		return false
	}
}
