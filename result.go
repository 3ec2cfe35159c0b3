package geniter

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// ResultIterator adapts a computation into a pull-based sequence of the
// values it yields and keeps the terminal result for retrieval once the
// sequence is exhausted.
//
// The result lives in an explicit optional slot, never as a sentinel value,
// so a legitimate zero result is distinguishable from no result at all.
//
// A ResultIterator must not be copied after first use; go vet reports
// copies.
type ResultIterator[Y, R any] struct {
	noCopy noCopy

	c         Resumable[Y, R]
	result    g.Option[R]
	done      bool
	completed bool
}

// NewResultIterator returns an iterator over the values yielded by c,
// assuming ownership of it: c must not be resumed by anyone else afterwards.
func NewResultIterator[Y, R any](c Resumable[Y, R]) *ResultIterator[Y, R] {
	return &ResultIterator[Y, R]{c: c}
}

// Next resumes the computation once and returns the value it yielded. Once
// the computation completes, its result is stored, Next returns the zero
// value and false, and every later call returns the same without resuming
// the computation again.
func (it *ResultIterator[Y, R]) Next() (Y, bool) {
	var zero Y
	if it.done {
		return zero, false
	}
	st := it.c.Resume()
	if v, ok := st.Value(); ok {
		return v, true
	}
	r, _ := st.Result()
	it.result = g.Option[R]{Value: r, Ok: true}
	it.done = true
	it.completed = true
	return zero, false
}

// TakeResult moves the terminal result out of the iterator. It succeeds at
// most once: the boolean is false before the sequence is exhausted, false
// again on every call after the result has been taken, and false if the
// iterator was stopped before the computation completed.
func (it *ResultIterator[Y, R]) TakeResult() (R, bool) {
	if !it.result.Ok {
		var zero R
		return zero, false
	}
	r := it.result.Value
	it.result = g.Option[R]{}
	return r, true
}

// Done returns true once the computation ran to completion and produced a
// result. It remains true after TakeResult, and remains false if the
// iterator was stopped early.
func (it *ResultIterator[Y, R]) Done() bool { return it.completed }

// Stop interrupts the computation: if it implements Stopper, it is stopped
// and resumed one last time so it unwinds. After Stop, Next returns false
// and no result becomes available.
//
// Stop is idempotent, and is not needed once Next has returned false.
func (it *ResultIterator[Y, R]) Stop() {
	if it.done {
		return
	}
	it.done = true
	if s, ok := it.c.(Stopper); ok {
		s.Stop()
		it.c.Resume()
	}
}

// Seq returns a range-over-func view of the iterator. Breaking out of the
// range leaves the computation suspended: iteration can be resumed with Next
// or another range, or released with Stop. The terminal result is available
// through TakeResult once the range completes normally.
func (it *ResultIterator[Y, R]) Seq() iter.Seq[Y] {
	return seq(it.Next)
}
