/*
Package chunks holds the contract every chunking algorithm implements, and the adapters that turn
those algorithms into sequences of chunks.

Since every algorithm package depends on it, keeping this separate from any algorithm breaks
a number of possible circular dependencies.

There are two views of an algorithm:

Search is the resumable view. It examines a caller owned slice without copying it and reports how
many leading bytes the caller may drop before the next call. The caller keeps the data.

Incremental is the push view. It owns all of its state, copies a look-back window internally when
the algorithm needs one, and may be fed buffers of any size, even a byte at a time.

For any byte sequence both views, and any split of the input into calls, produce the same edges.
*/
package chunks

import (
	"errors"
)

var (
	// ErrInvalidConfig is wrapped by every constructor that rejects its parameters
	ErrInvalidConfig = errors.New("invalid chunker configuration")

	// ErrInvalidBufferSize is returned by adapters given a read buffer smaller than one byte
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)

// Search is the per-stream state of a resumable search over caller supplied slices.
//
// Pass data[base:] and, on return, advance base by discard. When found is true the chunk ends at
// base+edge (exclusive, measured before advancing). When found is false every byte passed has been
// examined, and the next call should pass the same data extended with whatever arrived since.
// discard is never larger than edge.
//
// A Search must not be reused for an unrelated stream.
type Search interface {
	FindChunkEdge(data []byte) (edge, discard int, found bool)
}

// Incremental is the per-stream state of a push based chunker.
//
// Each call consumes data up to and including the byte that completes a chunk. When found is
// true, edge is the index in data immediately after that byte; the bytes from edge onwards
// have not been consumed and must be pushed again. When found is false all of data was consumed.
type Incremental interface {
	Push(data []byte) (edge int, found bool)
}

// Chunker is the immutable configuration of an algorithm.
// It may be shared between goroutines; the states it creates may not.
type Chunker interface {
	NewSearch() Search
	NewIncremental() Incremental
}

// Mode decides what happens to bytes after the last edge found in a source
type Mode int

const (
	// Partial yields the trailing remainder as a final, shorter chunk
	Partial Mode = iota
	// Strict drops the trailing remainder, only chunks terminated by an edge are yielded
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "partial"
}
