package signals

import (
	"cmp"
	"maps"
	"slices"
	"sync"

	"github.com/NicholasBoll/signals/internal"
)

// Merge2 interleaves a and b, advancing on whichever side settles first.
// If either side is absent or terminal the other is returned as is; otherwise the merged head carries a's tick.
//
// Once one side ends the merge forwards the other side's chain unchanged, and the result terminates
// when both have. a stays the left side on every hop: when both continuations have already settled as
// a hop is raced, a wins; otherwise continuations run in settlement order on the runtime queue.
// A rejected side never wins; its rejection is reported as unhandled.
//
// Only a's head tick is kept. A value carried by b's head node is not emitted.
//
// Every hop subscribes again to the side that did not advance, and each subscription holds the
// merged chain built so far. A side that never fires next to a busy one keeps that whole history alive.
func Merge2[A any](a, b *Signal[A]) *Signal[A] {
	if a.ended() {
		return b
	}
	if b.ended() {
		return a
	}

	return New(a.tick, memo(func() *Future[*Signal[A]] {
		return race(a.Next(), b.Next())
	}))
}

// race settles with the first side to produce a live node, wrapped so the next hop races its
// successor against the other side's still-pending future. Both sides keep their positions.
func race[A any](left, right *Future[*Signal[A]]) *Future[*Signal[A]] {
	out := newFuture[*Signal[A]](internal.GetRuntime())

	var (
		mu    sync.Mutex
		won   bool
		ended [2]bool
	)

	sides := [2]*Future[*Signal[A]]{left, right}
	for i, side := range sides {
		if side == nil {
			ended[i] = true
		}
	}
	if ended[0] && ended[1] {
		out.resolve(Dead[A]())
		return out
	}

	for i, side := range sides {
		side.subscribe(func(n *Signal[A], err error) {
			if err != nil {
				internal.GetRuntime().Report(err)
				return
			}

			mu.Lock()
			if won {
				mu.Unlock()
				return
			}

			if n.ended() {
				ended[i] = true
				if !ended[1-i] {
					mu.Unlock()
					return
				}
				won = true
				mu.Unlock()

				out.resolve(Dead[A]())
				return
			}

			won = true
			alone := ended[1-i]
			mu.Unlock()

			if alone {
				out.resolve(n)
				return
			}
			out.resolve(New(n.tick, memo(func() *Future[*Signal[A]] {
				next := sides
				next[i] = n.Next()
				return race(next[0], next[1])
			})))
		})
	}

	return out
}

// Merge folds Merge2 over signals from the left.
func Merge[A any](signals ...*Signal[A]) *Signal[A] {
	if len(signals) == 0 {
		return Dead[A]()
	}

	merged := signals[0]
	for _, s := range signals[1:] {
		merged = Merge2(merged, s)
	}

	return merged
}

// MergeObject merges keyed signals into snapshots of the latest value seen per key.
// Nothing is emitted until some key has fired; after that every snapshot keeps every key seen so far.
// Snapshots are fresh maps and are never mutated afterwards.
// Keys are merged in sorted order. An empty input yields a terminated signal.
func MergeObject[K cmp.Ordered, A any](signals map[K]*Signal[A]) *Signal[map[K]A] {
	keys := slices.Sorted(maps.Keys(signals))
	if len(keys) == 0 {
		return Dead[map[K]A]()
	}

	fragments := make([]*Signal[map[K]A], 0, len(keys))
	for _, k := range keys {
		fragments = append(fragments, Map(func(v A) map[K]A {
			return map[K]A{k: v}
		}, signals[k]))
	}

	snapshots := FoldAsync(func(last, fragment map[K]A) Tick[map[K]A] {
		next := make(map[K]A, len(last)+len(fragment))
		maps.Copy(next, last)
		maps.Copy(next, fragment)
		return Value(next)
	}, map[K]A{}, Merge(fragments...))

	return Filter(func(m map[K]A) bool {
		return len(m) > 0
	}, snapshots)
}

// LatestMergeObject is MergeObject behind an eager cursor.
// Reading the cursor gives the freshest snapshot; snapshots nobody read in time are skipped.
func LatestMergeObject[K cmp.Ordered, A any](signals map[K]*Signal[A]) *Cursor[map[K]A] {
	return Latest(MergeObject(signals))
}
