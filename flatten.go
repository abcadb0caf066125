package signals

// Nested is a value of a chain that may carry a whole signal of the same shape instead of a plain value.
type Nested[A any] struct {
	inner *Signal[Nested[A]]
	value A
}

// Plain wraps an ordinary value.
func Plain[A any](v A) Nested[A] {
	return Nested[A]{value: v}
}

// Inner wraps a signal to be spliced into the flattened chain.
func Inner[A any](s *Signal[Nested[A]]) Nested[A] {
	return Nested[A]{inner: s}
}

// Signal returns the carried signal, if n carries one.
func (n Nested[A]) Signal() (*Signal[Nested[A]], bool) {
	return n.inner, n.inner.isSignal()
}

// Flatten removes the nesting: each inner signal is merged with the rest of the outer chain,
// and the result is flattened again. Plain values pass through node for node.
// The result ends once the walk reaches an absent or terminal node.
func Flatten[A any](src *Signal[Nested[A]]) *Signal[A] {
	return flatten(splice(src))
}

func flatten[A any](s *Signal[Nested[A]]) *Signal[A] {
	if s.ended() {
		return Dead[A]()
	}

	return New(unwrap(s.tick), memo(func() *Future[*Signal[A]] {
		return Then(s.Next(), func(n *Signal[Nested[A]]) *Signal[A] {
			return flatten(splice(n))
		})
	}))
}

// splice replaces a node carrying a signal with the merge of that signal and the rest of the
// outer chain, until the head is plain.
func splice[A any](s *Signal[Nested[A]]) *Signal[Nested[A]] {
	for {
		v, ok := s.Value()
		if !ok {
			return s
		}

		inner, ok := v.Signal()
		if !ok {
			return s
		}

		s = Merge2(inner, New(NewTick[Nested[A]](), s.next))
	}
}

func unwrap[A any](t Tick[Nested[A]]) Tick[A] {
	if v, ok := t.Get(); ok {
		return Value(v.value)
	}
	return retag[Nested[A], A](t)
}
