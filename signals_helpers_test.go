package signals

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/NicholasBoll/signals/internal"
	"github.com/stretchr/testify/require"
)

// recorder collects values delivered on a runtime worker.
type recorder[A any] struct {
	mu     sync.Mutex
	values []A
}

func (r *recorder[A]) push(v A) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values = append(r.values, v)
}

func (r *recorder[A]) get() []A {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.values)
}

func collect[A any](t *testing.T, src *Signal[A]) []A {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	values, err := Collect(ctx, src)
	require.NoError(t, err)
	return values
}

// chainOf builds a settled chain carrying exactly the given ticks, then Terminal.
func chainOf[A any](ticks ...Tick[A]) *Signal[A] {
	rt := internal.GetRuntime()

	head := Dead[A]()
	for i := len(ticks) - 1; i >= 0; i-- {
		head = linkSettled(rt, ticks[i], head)
	}

	return head
}

// pushSource returns a push-fed chain and its sink.
func pushSource[A any]() (*Signal[A], func(A)) {
	var sink func(A)
	src := PushAdapter(func(s func(A)) { sink = s })

	return src, sink
}

type errorLog struct {
	recorder[error]
}

// catchErrors routes unhandled rejections of the calling goroutine's runtime into the returned log.
func catchErrors() *errorLog {
	l := &errorLog{}
	OnUnhandled(l.push)

	return l
}
