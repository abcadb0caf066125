/*
Package signals implements lazy, pull-driven values over time.

A Signal is one node of a singly-linked chain: a Tick (a value, or one of the
NewTick, Skip and Terminal control cases) and a continuation that yields the
next node as a Future only when asked. Nothing upstream runs until something
pulls.

	clicks := signals.PushAdapter(func(sink func(int)) {
		button.OnClick(func(x int) { sink(x) })
	})

	// transformations are lazy
	wide := signals.Filter(func(x int) bool { return x > 100 }, clicks)
	labels := signals.Map(strconv.Itoa, wide)

	// consumption drives the chain
	dispose := signals.OnValue(func(s string) { fmt.Println(s) }, labels)
	defer dispose()

Sources are FromSequence, PushAdapter, LiveAdapter, FromFutures and
FromChannel. FoldAsync is the stateful transform Map and Filter are built on;
a step returning Skip suppresses an emission and Terminal ends the derived
chain. Merge2 races two chains, Flatten splices nested chains in, and
MergeObject folds keyed chains into snapshots of the latest value per key.
Latest wraps any chain in a Cursor that keeps only its furthest node.

# Scheduling

Every goroutine gets its own runtime: a FIFO queue of continuations run one
at a time by a worker goroutine. Continuations of futures created while a
worker drains stay on that runtime, so a whole graph built on one goroutine
runs as a single logical thread. Producers on other goroutines only enqueue.
Settle waits until the calling goroutine's runtime is idle, Batch holds
continuations back until a block of pushes is done.

# Failures

There is no error channel. A rejected future or a panicking step stalls the
chain at that point; the rejection is handed to OnUnhandled handlers, or
logged through slog when there are none.
*/
package signals
