package signals

import (
	"context"
	"sync"

	"github.com/NicholasBoll/signals/internal"
)

// FromSequence builds a finite chain: NewTick, then each item in order, then Terminal.
// Every continuation is already settled, so draining it never waits on a producer.
func FromSequence[A any](items ...A) *Signal[A] {
	return FromSlice(items)
}

// FromSlice is FromSequence for an existing slice. The slice is not retained.
func FromSlice[A any](items []A) *Signal[A] {
	rt := internal.GetRuntime()

	head := Dead[A]()
	for i := len(items) - 1; i >= 0; i-- {
		head = linkSettled(rt, Value(items[i]), head)
	}

	return linkSettled(rt, NewTick[A](), head)
}

func linkSettled[A any](rt *internal.Runtime, tick Tick[A], next *Signal[A]) *Signal[A] {
	f := newFuture[*Signal[A]](rt)
	f.resolve(next)

	return New(tick, func() *Future[*Signal[A]] { return f })
}

// pushChain keeps the single pending slot of a push-fed chain.
type pushChain[A any] struct {
	rt *internal.Runtime

	mu      sync.Mutex
	pending *Future[*Signal[A]] // nil once the chain is terminated
}

func newPushChain[A any]() (*pushChain[A], *Signal[A]) {
	c := &pushChain[A]{rt: internal.GetRuntime()}
	return c, c.link(NewTick[A]())
}

// link allocates the next pending slot behind a new node. Callers hold mu, except for the head.
func (c *pushChain[A]) link(tick Tick[A]) *Signal[A] {
	f := newFuture[*Signal[A]](c.rt)
	c.pending = f

	return New(tick, func() *Future[*Signal[A]] { return f })
}

func (c *pushChain[A]) push(v A) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := c.pending
	if slot == nil {
		return
	}
	slot.resolve(c.link(Value(v)))
}

func (c *pushChain[A]) terminate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := c.pending
	if slot == nil {
		return
	}
	c.pending = nil
	slot.resolve(Dead[A]())
}

// PushAdapter bridges a callback-style producer into a chain.
// register is called once, synchronously, with the sink to feed; the sink may be called from any goroutine.
//
// Each sink call settles the single pending slot with a new node and opens the next slot.
// There is no queue behind the chain: every value is kept only by the node that carries it,
// so a consumer that falls behind holds on to the whole backlog of nodes,
// and the arrival rate is expected to be governed by whoever drives the chain.
func PushAdapter[A any](register func(sink func(A))) *Signal[A] {
	c, head := newPushChain[A]()
	register(c.push)

	return head
}

// LiveAdapter is PushAdapter behind an eager cursor: the cursor always holds the latest pushed value.
func LiveAdapter[A any](register func(sink func(A))) *Cursor[A] {
	return Latest(PushAdapter(register))
}

// FromFutures feeds every future's value into one push chain, in settlement order.
// A rejected future contributes nothing and is reported as unhandled.
// The chain never terminates.
func FromFutures[A any](futures ...*Future[A]) *Signal[A] {
	var sink func(A)
	src := PushAdapter(func(s func(A)) { sink = s })

	for _, f := range futures {
		f.subscribe(func(v A, err error) {
			if err != nil {
				internal.GetRuntime().Report(err)
				return
			}
			sink(v)
		})
	}

	return src
}

// FromChannel pushes every value received from ch into a chain.
// The chain terminates when ch is closed or ctx is done.
func FromChannel[A any](ctx context.Context, ch <-chan A) *Signal[A] {
	c, head := newPushChain[A]()

	go func() {
		defer c.terminate()

		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return
				}
				c.push(v)
			case <-ctx.Done():
				return
			}
		}
	}()

	return head
}
