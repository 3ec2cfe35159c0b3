package geniter

// State is the outcome of resuming a computation: either a suspension
// carrying a yielded value, or completion carrying the terminal result.
//
// The type parameter Y is the type of values the computation yields, and the
// type parameter R is the type of its terminal result.
type State[Y, R any] struct {
	value  Y
	result R
	done   bool
}

// Yielded returns a suspended state carrying the yielded value v.
func Yielded[Y, R any](v Y) State[Y, R] {
	return State[Y, R]{value: v}
}

// Completed returns a terminal state carrying the result r.
func Completed[Y, R any](r R) State[Y, R] {
	return State[Y, R]{result: r, done: true}
}

// Suspended returns true if the computation paused at a yield point and can
// be resumed again.
func (s State[Y, R]) Suspended() bool { return !s.done }

// Done returns true if the computation ran to completion.
func (s State[Y, R]) Done() bool { return s.done }

// Value returns the yielded value. The boolean is false for a terminal
// state, in which case the value is the zero value.
func (s State[Y, R]) Value() (Y, bool) {
	if s.done {
		var zero Y
		return zero, false
	}
	return s.value, true
}

// Result returns the terminal result. The boolean is false for a suspended
// state, in which case the result is the zero value.
func (s State[Y, R]) Result() (R, bool) {
	if !s.done {
		var zero R
		return zero, false
	}
	return s.result, true
}
