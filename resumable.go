package geniter

// Resumable is the contract between a computation and the iterators that
// drive it. Resume advances the computation from its initial state or its
// last yield point and reports how it stopped: at another yield point, with
// a value, or at completion, with the terminal result.
//
// Once Resume has returned a terminal state the computation must not be
// resumed again; implementations are entitled to panic if it is. The
// iterators in this package never resume past completion, so code that
// drives a computation through them cannot trip this condition.
//
// Implementations are not safe for concurrent use; a computation has a
// single driver.
type Resumable[Y, R any] interface {
	Resume() State[Y, R]
}

// ResumeFunc adapts a function into a Resumable. Computations written this
// way are ordinary Go values with no hidden location dependency: the closure
// state lives on the heap and the function value can be copied freely before
// it is handed to an iterator.
type ResumeFunc[Y, R any] func() State[Y, R]

// Resume calls f.
func (f ResumeFunc[Y, R]) Resume() State[Y, R] { return f() }

// Stopper is implemented by computations that hold resources which outlive a
// single Resume call, such as the goroutine behind a Coroutine. Stop
// requests interruption; the next Resume then runs the computation's
// unwinding instead of returning to its yield point, and reports a terminal
// state with a zero result. Stop alone must not block.
type Stopper interface {
	Stop()
}
