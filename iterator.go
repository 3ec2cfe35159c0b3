package geniter

import "iter"

// Iterator adapts a computation into a pull-based sequence of the values it
// yields, discarding the terminal result. The result type is erased when the
// iterator is constructed, so an Iterator never stores a result it would
// only throw away.
//
// An Iterator must not be copied after first use; go vet reports copies.
type Iterator[Y any] struct {
	noCopy noCopy

	next func() (Y, bool)
	stop func()
	done bool
}

// NewIterator returns an iterator over the values yielded by c, assuming
// ownership of it: c must not be resumed by anyone else afterwards.
func NewIterator[Y, R any](c Resumable[Y, R]) *Iterator[Y] {
	it := &Iterator[Y]{
		next: func() (Y, bool) {
			return c.Resume().Value()
		},
	}
	if s, ok := c.(Stopper); ok {
		it.stop = func() {
			s.Stop()
			c.Resume()
		}
	}
	return it
}

// Next resumes the computation once and returns the value it yielded. Once
// the computation completes, Next returns the zero value and false, and
// every later call returns the same without resuming the computation again.
func (it *Iterator[Y]) Next() (Y, bool) {
	if it.done {
		var zero Y
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
	}
	return v, ok
}

// Stop interrupts the computation: if it implements Stopper, it is stopped
// and resumed one last time so it unwinds. After Stop, Next returns false.
//
// Stop is idempotent, and is not needed once Next has returned false. A
// goroutine-backed computation that is abandoned while suspended, without
// being exhausted or stopped, keeps its goroutine parked forever.
func (it *Iterator[Y]) Stop() {
	if it.done {
		return
	}
	it.done = true
	if it.stop != nil {
		it.stop()
	}
}

// Seq returns a range-over-func view of the iterator. Breaking out of the
// range leaves the computation suspended: iteration can be resumed with Next
// or another range, or released with Stop.
func (it *Iterator[Y]) Seq() iter.Seq[Y] {
	return seq(it.Next)
}

func seq[Y any](next func() (Y, bool)) iter.Seq[Y] {
	return func(yield func(Y) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// noCopy is carried as a field by the iterator types so that go vet reports
// values copied after first use. It must be a named field rather than an
// embedded one, so the Lock and Unlock methods stay out of the method sets.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
