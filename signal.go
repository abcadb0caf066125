package signals

import "sync"

// Signal is one node of a lazy chain: the current tick and a deferred computation for the next node.
// A node never changes once built; progression always produces a new node.
// A nil *Signal is an absent signal and behaves like a terminal one.
type Signal[A any] struct {
	tick Tick[A]
	next func() *Future[*Signal[A]]
}

// New builds a node from a tick and its continuation.
func New[A any](tick Tick[A], next func() *Future[*Signal[A]]) *Signal[A] {
	return &Signal[A]{tick: tick, next: next}
}

// Dead returns a terminal node. Its continuation never yields another node.
func Dead[A any]() *Signal[A] {
	return &Signal[A]{tick: Terminal[A](), next: never[*Signal[A]]}
}

// IsSignal reports whether x is a non-nil signal node with a continuation.
func IsSignal(x any) bool {
	s, ok := x.(interface{ isSignal() bool })
	return ok && s.isSignal()
}

// Tick returns the node's tick. An absent node reports Terminal.
func (s *Signal[A]) Tick() Tick[A] {
	if s == nil {
		return Terminal[A]()
	}
	return s.tick
}

// Value returns the node's value and whether it carries a genuine one.
func (s *Signal[A]) Value() (A, bool) {
	return s.Tick().Get()
}

// Next asks for the following node. Terminal and absent nodes return nil, a future that never settles.
func (s *Signal[A]) Next() *Future[*Signal[A]] {
	if s.ended() || s.next == nil {
		return nil
	}
	return s.next()
}

func (s *Signal[A]) ended() bool {
	return s == nil || s.tick.kind == KindTerminal
}

func (s *Signal[A]) isSignal() bool {
	return s != nil && s.next != nil
}

func never[T any]() *Future[T] { return nil }

// memo makes fn run at most once; every later call returns the first future.
func memo[T any](fn func() *Future[T]) func() *Future[T] {
	var (
		once sync.Once
		f    *Future[T]
	)

	return func() *Future[T] {
		once.Do(func() { f = fn() })
		return f
	}
}
