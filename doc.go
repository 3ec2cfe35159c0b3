// Package geniter turns resumable computations into lazy pull-based
// sequences.
//
// A computation yields intermediate values and finishes with a terminal
// result. An Iterator pulls the values and discards the result; a
// ResultIterator pulls the values and keeps the result for retrieval after
// the sequence is exhausted. Computations are typically coroutines created
// with New, whose function runs on its own goroutine and suspends through
// Yield, but any implementation of Resumable can be driven.
//
// Values are produced strictly on demand, one per pull, in the order the
// computation yields them. Nothing runs ahead of the consumer.
//
// Iterators have a single driver: they are not safe for concurrent use and
// must not be copied after first use.
package geniter
