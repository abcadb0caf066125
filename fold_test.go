package signals

import (
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(acc, v int) Tick[int] {
	return Value(acc + v)
}

func TestFoldAsync(t *testing.T) {
	t.Run("head carries the initial state", func(t *testing.T) {
		s := FoldAsync(sum, 0, FromSequence(1, 2, 3))

		assert.Equal(t, Value(0), s.Tick())
		assert.Equal(t, []int{0, 1, 3, 6}, collect(t, s))
	})

	t.Run("terminal from step ends the chain", func(t *testing.T) {
		s := FoldAsync(func(acc, v int) Tick[int] {
			if v == 3 {
				return Terminal[int]()
			}
			return Value(acc + v)
		}, 0, FromSequence(1, 2, 3, 4))

		assert.Equal(t, []int{0, 1, 3}, collect(t, s))
	})

	t.Run("skip from step keeps the state silently", func(t *testing.T) {
		s := FoldAsync(func(acc, v int) Tick[int] {
			if v%2 == 1 {
				return Skip[int]()
			}
			return Value(acc + v)
		}, 100, FromSequence(1, 2, 3, 4))

		assert.Equal(t, []int{100, 102, 106}, collect(t, s))
	})

	t.Run("the source head tick is not folded", func(t *testing.T) {
		s := FoldAsync(sum, 0, chainOf(Value(100), Value(1)))

		assert.Equal(t, []int{0, 1}, collect(t, s))
	})

	t.Run("control ticks upstream never reach step", func(t *testing.T) {
		seen := &recorder[int]{}
		s := FoldAsync(func(acc, v int) Tick[int] {
			seen.push(v)
			return Value(acc + v)
		}, 0, chainOf(NewTick[int](), Skip[int](), Value(1), NewTick[int](), Skip[int](), Value(2)))

		assert.Equal(t, []int{0, 1, 3}, collect(t, s))
		assert.Equal(t, []int{1, 2}, seen.get())
	})

	t.Run("upstream terminal ends the chain", func(t *testing.T) {
		assert.Equal(t, []int{0}, collect(t, FoldAsync(sum, 0, Dead[int]())))
		assert.Equal(t, []int{0}, collect(t, FoldAsync(sum, 0, (*Signal[int])(nil))))
	})

	t.Run("step runs once per node for every reader", func(t *testing.T) {
		var calls atomic.Int32
		s := FoldAsync(func(acc, v int) Tick[int] {
			calls.Add(1)
			return Value(acc + v)
		}, 0, FromSequence(1, 2, 3))

		assert.Equal(t, []int{0, 1, 3, 6}, collect(t, s))
		assert.Equal(t, []int{0, 1, 3, 6}, collect(t, s))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("follows a push source", func(t *testing.T) {
		src, sink := pushSource[int]()
		rec := &recorder[int]{}
		OnValue(rec.push, FoldAsync(sum, 0, src))

		sink(5)
		Settle()
		assert.Equal(t, []int{0, 5}, rec.get())

		sink(5)
		Settle()
		assert.Equal(t, []int{0, 5, 10}, rec.get())
	})

	t.Run("a panicking step is reported and stalls the chain", func(t *testing.T) {
		errs := catchErrors()
		src, sink := pushSource[int]()
		rec := &recorder[int]{}

		OnValue(rec.push, FoldAsync(func(acc, v int) Tick[int] {
			if v == 2 {
				panic("two")
			}
			return Value(acc + v)
		}, 0, src))

		sink(1)
		sink(2)
		sink(3)
		Settle()

		assert.Equal(t, []int{0, 1}, rec.get())
		require.Len(t, errs.get(), 1)

		var perr *PanicError
		require.ErrorAs(t, errs.get()[0], &perr)
		assert.Equal(t, "two", perr.Value)
	})
}

func TestMap(t *testing.T) {
	t.Run("maps every value", func(t *testing.T) {
		s := Map(func(v int) string { return strconv.Itoa(v * 10) }, FromSequence(1, 2, 3))

		assert.Equal(t, KindNewTick, s.Tick().Kind())
		assert.Equal(t, []string{"10", "20", "30"}, collect(t, s))
	})

	t.Run("fn runs once per node", func(t *testing.T) {
		var calls atomic.Int32
		s := Map(func(v int) int {
			calls.Add(1)
			return v
		}, FromSequence(1, 2))

		collect(t, s)
		collect(t, s)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4}, collect(t, Filter(even, FromSequence(1, 2, 3, 4, 5))))
	assert.Empty(t, collect(t, Filter(even, FromSequence(1, 3))))
}

func TestOperators(t *testing.T) {
	inc := MapOp(func(v int) int { return v + 1 })
	even := FilterOp(func(v int) bool { return v%2 == 0 })

	t.Run("pipeline applies in order", func(t *testing.T) {
		s := Pipeline(FromSequence(1, 2, 3, 4), inc, nil, even)
		assert.Equal(t, []int{2, 4}, collect(t, s))

		s = Pipeline(FromSequence(1, 2, 3, 4), even, inc)
		assert.Equal(t, []int{3, 5}, collect(t, s))
	})

	t.Run("pipeline without operators", func(t *testing.T) {
		src := FromSequence(1)
		assert.Same(t, src, Pipeline(src))
	})

	t.Run("compose changes types", func(t *testing.T) {
		itoa := MapOp(strconv.Itoa)
		length := MapOp(func(s string) int { return len(s) })

		s := Compose(Compose(itoa, length), FoldOp(sum, 0))(FromSequence(5, 50, 500))
		assert.Equal(t, []int{0, 1, 3, 6}, collect(t, s))
	})
}
