package signals

import (
	"context"
	"sync"

	"github.com/NicholasBoll/signals/internal"
)

// OnValue drives src to its end, calling cb with every genuine value.
// The head is handled on the calling goroutine, every later node as a task on the runtime queue.
//
// The returned dispose only mutes cb. The drive itself keeps pulling the chain, and on a chain
// that never terminates it keeps doing so for as long as the source produces.
func OnValue[A any](cb func(A), src *Signal[A]) (dispose func()) {
	d := &drive[A]{cb: cb}
	d.step(src)

	return d.dispose
}

// OnValueOp is OnValue with cb applied now and the source later.
func OnValueOp[A any](cb func(A)) func(*Signal[A]) (dispose func()) {
	return func(src *Signal[A]) func() { return OnValue(cb, src) }
}

// Drain drives src like OnValue but blocks until the chain terminates or ctx is done.
// It panics with ErrBlockingInTask when called from a scheduled task.
func Drain[A any](ctx context.Context, src *Signal[A], cb func(A)) error {
	if internal.GetRuntime().InTask() {
		panic(ErrBlockingInTask)
	}

	done := make(chan struct{})
	d := &drive[A]{cb: cb, end: func() { close(done) }}
	d.step(src)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.dispose()
		return ctx.Err()
	}
}

// Collect drains a finite chain into a slice.
// If ctx ends first it returns the values seen so far with ctx's error.
func Collect[A any](ctx context.Context, src *Signal[A]) ([]A, error) {
	var (
		mu  sync.Mutex
		out []A
	)

	err := Drain(ctx, src, func(v A) {
		mu.Lock()
		defer mu.Unlock()

		out = append(out, v)
	})

	mu.Lock()
	defer mu.Unlock()

	return out[:len(out):len(out)], err
}

type drive[A any] struct {
	mu  sync.Mutex
	cb  func(A)
	end func()
}

func (d *drive[A]) step(s *Signal[A]) {
	if s.ended() {
		if d.end != nil {
			d.end()
		}
		return
	}

	if v, ok := s.Value(); ok {
		if cb := d.callback(); cb != nil {
			cb(v)
		}
	}

	s.Next().subscribe(func(n *Signal[A], err error) {
		if err != nil {
			internal.GetRuntime().Report(err)
			return
		}
		d.step(n)
	})
}

func (d *drive[A]) callback() func(A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cb
}

func (d *drive[A]) dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cb = nil
}
