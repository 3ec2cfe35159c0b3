package geniter

import (
	"github.com/viruscamp/gen-iter/internal/gls"
)

// Coroutine is a computation running on its own goroutine, parked until it
// is resumed and parked again at each yield point.
//
// The type parameter Y is the type of values the coroutine yields, and the
// type parameter R is the type of the result its function returns. A
// Coroutine value is a handle: copies of it drive the same underlying
// goroutine.
type Coroutine[Y, R any] struct{ ctx *context[Y, R] }

// New creates a new coroutine which executes f as entry point. The goroutine
// backing it starts parked; no code runs until the first call to Resume.
//
// Inside f, Yield suspends the coroutine and hands a value to the Resume
// call that woke it. The value f returns becomes the coroutine's terminal
// result.
func New[Y, R any](f func() R) Coroutine[Y, R] {
	c := &context[Y, R]{
		next: make(chan struct{}),
	}

	go func() {
		g := gls.Context()
		g.Store(c)

		defer func() {
			c.done = true
			close(c.next)
			g.Clear()
		}()

		<-c.next

		if !c.stop {
			c.result = f()
		}
	}()

	return Coroutine[Y, R]{ctx: c}
}

// Resume executes the coroutine until its next yield point, returning a
// suspended state carrying the yielded value, or until completion, returning
// a terminal state carrying the result.
//
// Resuming a coroutine that already completed is a misuse and panics. The
// iterators in this package maintain their own exhaustion latch and never
// resume past completion.
func (c Coroutine[Y, R]) Resume() State[Y, R] {
	if c.ctx.done {
		panic("geniter: coroutine resumed after completion")
	}
	c.ctx.next <- struct{}{}
	if _, ok := <-c.ctx.next; !ok {
		return Completed[Y, R](c.ctx.result)
	}
	return Yielded[Y, R](c.ctx.recv)
}

// Stop interrupts the coroutine. On the next call to Resume, the coroutine
// will not return from its yield point; instead, it unwinds its call stack,
// calling each defer statement in the inverse order that they were declared,
// and Resume reports completion with a zero result.
//
// Stop is idempotent, calling it multiple times or after completion of the
// coroutine has no effect.
func (c Coroutine[Y, R]) Stop() { c.ctx.stop = true }

// Done returns true if the coroutine completed, either because it was
// stopped or because its function returned.
func (c Coroutine[Y, R]) Done() bool { return c.ctx.done }

// Yield suspends the calling coroutine and hands v to the Resume call that
// woke it. It returns when the coroutine is resumed again.
//
// The function panics when called on a stack where no active coroutine
// exists, or if the type parameters do not match those of the coroutine.
func Yield[Y, R any](v Y) {
	loadContext[Y, R]().yield(v)
}

func loadContext[Y, R any]() *context[Y, R] {
	switch c := gls.Context().Load().(type) {
	case *context[Y, R]:
		return c
	case nil:
		panic("geniter.Yield: not called from a coroutine stack")
	default:
		panic("geniter.Yield: coroutine type mismatch")
	}
}
