package game

import (
	"context"
	"sync"
	"sync/atomic"
)

// loop serializes every mutation of engine state. While Run is serving it,
// work is handed to the Run goroutine through the inbox; otherwise work runs
// inline on the caller's goroutine.
type loop struct {
	mu      sync.Mutex
	inbox   chan func()
	running atomic.Bool
	stopped chan struct{}
	once    sync.Once
}

func newLoop() *loop {
	return &loop{
		inbox:   make(chan func(), 64),
		stopped: make(chan struct{}),
	}
}

// start marks the loop as served. A stopped loop is never served again.
func (l *loop) start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	select {
	case <-l.stopped:
		return ErrNotRunning
	default:
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	return nil
}

// stop marks the loop as no longer served and releases pending senders
func (l *loop) stop() {
	l.once.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.running.Store(false)
		close(l.stopped)
	})
}

// exec runs fn holding the state lock
func (l *loop) exec(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// post schedules fn without waiting for it. Work posted after the loop
// stopped is dropped.
func (l *loop) post(fn func()) {
	if !l.running.Load() {
		select {
		case <-l.stopped:
			return
		default:
		}
		l.exec(fn)
		return
	}

	select {
	case l.inbox <- fn:
	case <-l.stopped:
	}
}

// call runs fn and waits for it to finish
func (l *loop) call(ctx context.Context, fn func()) error {
	if !l.running.Load() {
		select {
		case <-l.stopped:
			return ErrNotRunning
		default:
		}
		l.exec(fn)
		return nil
	}

	done := make(chan struct{})
	select {
	case l.inbox <- func() { fn(); close(done) }:
	case <-l.stopped:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-l.stopped:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}
