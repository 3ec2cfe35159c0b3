package gls

import "sync"

// goroutine local storage; the table contains one entry for each goroutine
// that is started to power a coroutine.
//
// The table is sharded into 64 buckets so that goroutines starting and
// finishing in parallel do not serialize on a single lock. Each bucket is a
// plain map guarded by a sync.Mutex, cheaper than a RWMutex for the
// write-heavy store/clear traffic; the bucket is selected by hashing the g
// pointer, which is stable for the lifetime of the goroutine.
//
// An alternative to using a table at all could be to analyze the memory
// layout of the runtime.g type and determine if there is spare room after
// the struct to store the context pointer: the Go memory allocator uses size
// classes to park objects in buckets, and there is often spare space after
// large values like the runtime.g type since they will be assigned to the
// size class greater or equal to their type size. We only need 4 or 8 bytes
// of spare space on 32 or 64 bit architectures. That would turn the lookups
// into simple memory loads, but it ties the package to the layout of
// runtime internals.
const nbuckets = 64

type bucket struct {
	mu sync.Mutex
	m  map[G]any
}

var gtable [nbuckets]bucket

// G is a reference to a goroutine, and provides a way
// to load, store and clear a goroutine local context.
type G uintptr

// Context retrieves the goroutine local storage for contexts.
func Context() G {
	return G(getg())
}

func (g G) bucket() *bucket {
	// Fibonacci hashing on the top bits; g values are aligned pointers, the
	// low bits carry almost no entropy.
	return &gtable[(uint64(g)*0x9E3779B97F4A7C15)>>58]
}

// Load loads the goroutine local context.
func (g G) Load() any {
	b := g.bucket()
	b.mu.Lock()
	v := b.m[g]
	b.mu.Unlock()
	return v
}

// Store stores the goroutine local context.
func (g G) Store(c any) {
	b := g.bucket()
	b.mu.Lock()
	if b.m == nil {
		b.m = make(map[G]any)
	}
	b.m[g] = c
	b.mu.Unlock()
}

// Clear clears the goroutine local context.
func (g G) Clear() {
	b := g.bucket()
	b.mu.Lock()
	delete(b.m, g)
	b.mu.Unlock()
}
