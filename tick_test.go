package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTick(t *testing.T) {
	t.Run("zero value is NewTick", func(t *testing.T) {
		var tick Tick[int]

		assert.Equal(t, KindNewTick, tick.Kind())
		assert.Equal(t, NewTick[int](), tick)
	})

	t.Run("only values carry a value", func(t *testing.T) {
		v, ok := Value(0).Get()
		assert.True(t, ok)
		assert.Zero(t, v)

		for _, tick := range []Tick[int]{NewTick[int](), Skip[int](), Terminal[int]()} {
			_, ok := tick.Get()
			assert.False(t, ok, tick.String())
			assert.False(t, tick.IsValue())
		}
	})

	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "Value(7)", Value(7).String())
		assert.Equal(t, "NewTick", NewTick[int]().String())
		assert.Equal(t, "Skip", Skip[int]().String())
		assert.Equal(t, "Terminal", Terminal[int]().String())
		assert.Equal(t, "Kind(9)", Kind(9).String())
	})

	t.Run("absent signal reads as terminal", func(t *testing.T) {
		var s *Signal[string]

		assert.True(t, s.Tick().IsTerminal())
		assert.Nil(t, s.Next())

		_, ok := s.Value()
		assert.False(t, ok)
	})
}
