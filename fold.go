package signals

// FoldAsync derives a chain of accumulated states. The first node carries initial.
//
// For each upstream value step returns the next state, Skip to keep the current one and emit nothing,
// or Terminal to end the derived chain whatever upstream does next.
// NewTick and Skip upstream never reach step; an upstream Terminal ends the derived chain.
// The upstream head's own tick is never folded.
//
// step runs once per upstream node no matter how many readers pull the derived chain.
func FoldAsync[A, S any](step func(S, A) Tick[S], initial S, src *Signal[A]) *Signal[S] {
	return fold(step, Value(initial), src)
}

func fold[A, S any](step func(S, A) Tick[S], acc Tick[S], src *Signal[A]) *Signal[S] {
	return New(acc, memo(func() *Future[*Signal[S]] {
		return advance(step, acc, src)
	}))
}

// advance walks upstream past src until step emits or ends.
func advance[A, S any](step func(S, A) Tick[S], acc Tick[S], src *Signal[A]) *Future[*Signal[S]] {
	state, _ := acc.Get()

	var until func(n *Signal[A]) *Future[*Signal[S]]
	until = func(n *Signal[A]) *Future[*Signal[S]] {
		v, ok := n.Value()
		if !ok {
			if n.ended() {
				return Resolved(Dead[S]())
			}
			return Chain(n.Next(), until)
		}

		next := step(state, v)
		switch next.Kind() {
		case KindSkip:
			return Chain(n.Next(), until)
		case KindTerminal:
			return Resolved(Dead[S]())
		}

		return Resolved(fold(step, next, n))
	}

	if src.ended() {
		return Resolved(Dead[S]())
	}
	return Chain(src.Next(), until)
}

// Map applies fn to every upstream value.
func Map[A, B any](fn func(A) B, src *Signal[A]) *Signal[B] {
	return fold(func(_ B, v A) Tick[B] {
		return Value(fn(v))
	}, NewTick[B](), src)
}

// Filter keeps the upstream values pred accepts.
func Filter[A any](pred func(A) bool, src *Signal[A]) *Signal[A] {
	return fold(func(_ A, v A) Tick[A] {
		if !pred(v) {
			return Skip[A]()
		}
		return Value(v)
	}, NewTick[A](), src)
}

// Operator is a combinator waiting for its source.
type Operator[A, B any] func(*Signal[A]) *Signal[B]

// MapOp is Map with fn applied now and the source later.
func MapOp[A, B any](fn func(A) B) Operator[A, B] {
	return func(src *Signal[A]) *Signal[B] { return Map(fn, src) }
}

// FilterOp is Filter with pred applied now and the source later.
func FilterOp[A any](pred func(A) bool) Operator[A, A] {
	return func(src *Signal[A]) *Signal[A] { return Filter(pred, src) }
}

// FoldOp is FoldAsync with step and initial applied now and the source later.
func FoldOp[A, S any](step func(S, A) Tick[S], initial S) Operator[A, S] {
	return func(src *Signal[A]) *Signal[S] { return FoldAsync(step, initial, src) }
}

// Compose runs f then g.
func Compose[A, B, C any](f Operator[A, B], g Operator[B, C]) Operator[A, C] {
	return func(src *Signal[A]) *Signal[C] { return g(f(src)) }
}

// Pipeline applies ops to src in order. Nil operators are skipped.
func Pipeline[A any](src *Signal[A], ops ...Operator[A, A]) *Signal[A] {
	for _, op := range ops {
		if op == nil {
			continue
		}
		src = op(src)
	}

	return src
}
