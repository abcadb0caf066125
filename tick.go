package signals

import "fmt"

// Kind discriminates the cases of a Tick.
type Kind uint8

const (
	// KindNewTick marks a chain position with no value yet. It is the zero Kind.
	KindNewTick Kind = iota
	// KindValue carries a genuine value.
	KindValue
	// KindSkip marks a tick that produced nothing observable.
	KindSkip
	// KindTerminal marks the end of a chain.
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindNewTick:
		return "NewTick"
	case KindValue:
		return "Value"
	case KindSkip:
		return "Skip"
	case KindTerminal:
		return "Terminal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Tick is what a signal node carries: either a value or one of the control cases.
// Control cases are never delivered to consumers.
type Tick[A any] struct {
	kind  Kind
	value A
}

// Value wraps v as a genuine value.
func Value[A any](v A) Tick[A] {
	return Tick[A]{kind: KindValue, value: v}
}

// NewTick is the "nothing yet" tick that heads every chain.
func NewTick[A any]() Tick[A] {
	return Tick[A]{kind: KindNewTick}
}

// Skip returned from a fold step keeps the current state and emits nothing.
func Skip[A any]() Tick[A] {
	return Tick[A]{kind: KindSkip}
}

// Terminal ends a chain. Returned from a fold step it ends the derived chain.
func Terminal[A any]() Tick[A] {
	return Tick[A]{kind: KindTerminal}
}

func (t Tick[A]) Kind() Kind { return t.kind }

// Get returns the carried value and whether t is a genuine value.
func (t Tick[A]) Get() (A, bool) {
	return t.value, t.kind == KindValue
}

func (t Tick[A]) IsValue() bool { return t.kind == KindValue }

func (t Tick[A]) IsTerminal() bool { return t.kind == KindTerminal }

func (t Tick[A]) String() string {
	if t.kind == KindValue {
		return fmt.Sprintf("Value(%v)", t.value)
	}
	return t.kind.String()
}

// retag carries a control tick across element types. Values become zero values; callers convert those themselves.
func retag[A, B any](t Tick[A]) Tick[B] {
	return Tick[B]{kind: t.kind}
}
