package geniter

import (
	"runtime"
)

// context is the state shared between a Coroutine handle and the goroutine
// running its function. It is allocated once in New and referenced through
// pointers only, so the state of a started coroutine has a fixed address for
// its whole lifetime and cannot be copied out from behind the handle.
type context[Y, R any] struct {
	recv   Y
	result R
	next   chan struct{}
	stop   bool
	done   bool
}

func (c *context[Y, R]) yield(v Y) {
	if c.stop {
		panic("cannot yield from a coroutine that has been stopped")
	}
	c.recv = v
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
}
