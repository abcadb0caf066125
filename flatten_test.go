package signals

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	t.Run("plain values pass through", func(t *testing.T) {
		s := Flatten(FromSequence(Plain(1), Plain(2), Plain(3)))

		assert.Equal(t, []int{1, 2, 3}, collect(t, s))
	})

	t.Run("inner signals are spliced in", func(t *testing.T) {
		s := Flatten(FromSequence(
			Plain(1),
			Inner(FromSequence(Plain(2), Plain(3))),
			Plain(4),
		))

		assert.Equal(t, []int{1, 2, 3, 4}, collect(t, s))
	})

	t.Run("nesting of any depth", func(t *testing.T) {
		s := Flatten(FromSequence(
			Inner(FromSequence(
				Inner(FromSequence(Plain(1), Plain(2))),
				Plain(3),
			)),
			Plain(4),
		))

		assert.ElementsMatch(t, []int{1, 2, 3, 4}, collect(t, s))
	})

	t.Run("an absent inner signal is a plain zero value", func(t *testing.T) {
		s := Flatten(FromSequence(Plain(1), Inner[int](nil), Plain(2)))

		assert.Equal(t, []int{1, 0, 2}, collect(t, s))
	})

	t.Run("ends with the outer chain", func(t *testing.T) {
		assert.Empty(t, collect(t, Flatten(Dead[Nested[int]]())))
		assert.Empty(t, collect(t, Flatten[int](nil)))
	})

	t.Run("inner signals fed later", func(t *testing.T) {
		inner, push := pushSource[Nested[string]]()
		rec := &recorder[string]{}

		OnValue(rec.push, Flatten(FromSequence(Plain("outer"), Inner(inner))))
		Settle()
		assert.Equal(t, []string{"outer"}, rec.get())

		push(Plain("late"))
		Settle()
		assert.Equal(t, []string{"outer", "late"}, rec.get())
	})
}

func TestNested(t *testing.T) {
	_, ok := Plain(1).Signal()
	assert.False(t, ok)

	_, ok = Inner[int](nil).Signal()
	assert.False(t, ok)

	inner := FromSequence(Plain(1))
	got, ok := Inner(inner).Signal()
	assert.True(t, ok)
	assert.Same(t, inner, got)
}

func ExampleFlatten() {
	s := Flatten(FromSequence(
		Plain("a"),
		Inner(FromSequence(Plain("b"), Plain("c"))),
	))

	OnValue(func(v string) {
		fmt.Println(v)
	}, s)
	Settle()

	// Output:
	// a
	// b
	// c
}
