package signals

import (
	"context"
	"errors"
	"sync"

	"github.com/NicholasBoll/signals/internal"
)

var errNilRejection = errors.New("signals: promise rejected with a nil error")

// Future is a one-shot result. It settles at most once, either fulfilled with a value or rejected with an error.
// A rejection is only reported once it reaches the end of a chain (a consumer, a cursor or a merge);
// a rejected future nobody follows is dropped silently.
//
// Continuations never run inline: they are queued on the runtime that created the future,
// behind every task already waiting there. A nil *Future never settles.
type Future[T any] struct {
	rt *internal.Runtime

	mu      sync.Mutex
	settled bool
	value   T
	err     error

	waiters []func(T, error)

	done chan struct{}
}

func newFuture[T any](rt *internal.Runtime) *Future[T] {
	return &Future[T]{
		rt:   rt,
		done: make(chan struct{}),
	}
}

// Promise is the writable side of a Future.
type Promise[T any] struct {
	future *Future[T]
}

// NewPromise creates a pending promise on the calling goroutine's runtime.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{newFuture[T](internal.GetRuntime())}
}

// Resolve fulfils the promise. It reports false if the promise had already settled.
func (p *Promise[T]) Resolve(v T) bool {
	return p.future.settle(v, nil)
}

// Reject rejects the promise. It reports false if the promise had already settled.
func (p *Promise[T]) Reject(err error) bool {
	if err == nil {
		err = errNilRejection
	}

	var zero T
	return p.future.settle(zero, err)
}

func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Resolved returns a future already fulfilled with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T](internal.GetRuntime())
	f.settle(v, nil)
	return f
}

// Rejected returns a future already rejected with err.
func Rejected[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.Reject(err)
	return p.future
}

// Go runs fn on a new goroutine and settles the returned future with its result.
// A panic in fn rejects the future with a *PanicError.
func Go[T any](fn func() (T, error)) *Future[T] {
	p := NewPromise[T]()

	go func() {
		var (
			v   T
			err error
		)
		if perr := internal.Protect(func() { v, err = fn() }); perr != nil {
			p.Reject(perr)
			return
		}
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()

	return p.future
}

// Then derives a future fulfilled with fn applied to f's value.
// A rejection of f, or a panic in fn, rejects the derived future.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	out := newFuture[U](internal.GetRuntime())

	f.subscribe(func(v T, err error) {
		if err != nil {
			out.reject(err)
			return
		}

		var u U
		if perr := internal.Protect(func() { u = fn(v) }); perr != nil {
			out.reject(perr)
			return
		}
		out.resolve(u)
	})

	return out
}

// Chain derives a future that adopts the outcome of the future fn returns for f's value.
// A nil future from fn leaves the derived future pending forever.
func Chain[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	out := newFuture[U](internal.GetRuntime())

	f.subscribe(func(v T, err error) {
		if err != nil {
			out.reject(err)
			return
		}

		var next *Future[U]
		if perr := internal.Protect(func() { next = fn(v) }); perr != nil {
			out.reject(perr)
			return
		}
		out.adopt(next)
	})

	return out
}

// Await blocks until f settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var zero T
	if f == nil {
		<-ctx.Done()
		return zero, ctx.Err()
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Done is closed once f settles.
func (f *Future[T]) Done() <-chan struct{} {
	if f == nil {
		return nil
	}
	return f.done
}

func (f *Future[T]) Settled() bool {
	if f == nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.settled
}

func (f *Future[T]) resolve(v T) bool {
	return f.settle(v, nil)
}

func (f *Future[T]) reject(err error) bool {
	var zero T
	return f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}

	f.settled = true
	f.value = v
	f.err = err

	waiters := f.waiters
	f.waiters = nil
	f.mu.Unlock()

	// queue before waking Await so a Settle after Await sees the continuations
	for _, w := range waiters {
		f.rt.Schedule(func() { w(v, err) })
	}

	close(f.done)

	return true
}

// subscribe queues fn on f's runtime once f settles.
func (f *Future[T]) subscribe(fn func(T, error)) {
	if f == nil {
		return
	}

	f.mu.Lock()
	if !f.settled {
		f.waiters = append(f.waiters, fn)
		f.mu.Unlock()
		return
	}
	v, err := f.value, f.err
	f.mu.Unlock()

	f.rt.Schedule(func() { fn(v, err) })
}

// adopt settles f with src's outcome, immediately when src has already settled.
func (f *Future[T]) adopt(src *Future[T]) {
	if src == nil {
		return
	}

	src.mu.Lock()
	if src.settled {
		v, err := src.value, src.err
		src.mu.Unlock()

		f.settle(v, err)
		return
	}
	src.mu.Unlock()

	src.subscribe(func(v T, err error) { f.settle(v, err) })
}
