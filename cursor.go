package signals

import (
	"sync"

	"github.com/NicholasBoll/signals/internal"
)

// Cursor walks a chain as fast as it settles and keeps only the furthest node reached.
// Nodes behind the tail are let go, so a consumer attaching late sees the current tail and
// what follows, never the history.
type Cursor[A any] struct {
	mu   sync.RWMutex
	tail *Signal[A]

	front *Signal[A]
}

// Latest starts a cursor on src. The walk begins immediately.
func Latest[A any](src *Signal[A]) *Cursor[A] {
	c := &Cursor[A]{tail: src}
	c.front = New(NewTick[A](), func() *Future[*Signal[A]] {
		return Resolved(c.Tail())
	})

	c.update(src)
	return c
}

// Tail returns the furthest node reached so far. A terminated chain leaves its last live node here.
func (c *Cursor[A]) Tail() *Signal[A] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tail
}

// Value returns the tick of the current tail.
func (c *Cursor[A]) Value() Tick[A] {
	return c.Tail().Tick()
}

// Signal returns the outward node: its tick is always NewTick and each Next
// settles with whatever the tail is at that moment.
func (c *Cursor[A]) Signal() *Signal[A] {
	return c.front
}

// update moves the tail to s and follows s's continuation.
// Continuations of one chain settle in chain order, the lock only guards readers.
func (c *Cursor[A]) update(s *Signal[A]) {
	if s.ended() || s.next == nil {
		return
	}

	c.mu.Lock()
	c.tail = s
	c.mu.Unlock()

	s.Next().subscribe(func(n *Signal[A], err error) {
		if err != nil {
			internal.GetRuntime().Report(err)
			return
		}
		c.update(n)
	})
}
